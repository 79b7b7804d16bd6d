package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "recruiting-review/docs" // Swagger docs
	"recruiting-review/internal/api"
	"recruiting-review/internal/config"
	"recruiting-review/internal/ingest"
	"recruiting-review/internal/storage"
)

// @title Recruiting Review API
// @version 0.1.0
// @description API for reviewing job candidates

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	applicantsFlag := flag.String("applicants", "", "path to directory containing applicant folders")
	flag.Parse()

	cfg := config.LoadConfig()
	if *applicantsFlag != "" {
		cfg.ApplicantsDir = *applicantsFlag
	}

	store, err := storage.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatal("store open:", err)
	}
	defer store.Close()

	// One ingest pass before serving traffic.
	log.Printf("Scanning applicants from %s", cfg.ApplicantsDir)
	scanner := ingest.NewScanner(store)
	if _, err := scanner.LoadFromDisk(context.Background(), cfg.ApplicantsDir); err != nil {
		log.Fatal("ingest:", err)
	}

	apiSrv := api.NewAPI(store, cfg.ApplicantsDir)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
