// Command ingest runs one disk-scan pass against the store without starting
// the API server. Safe to re-run: folders already in the store are skipped.
package main

import (
	"context"
	"flag"
	"log"

	"recruiting-review/internal/config"
	"recruiting-review/internal/ingest"
	"recruiting-review/internal/storage"
)

func main() {
	applicantsFlag := flag.String("applicants", "", "path to directory containing applicant folders")
	dbFlag := flag.String("db", "", "path to the sqlite database file")
	flag.Parse()

	cfg := config.LoadConfig()
	if *applicantsFlag != "" {
		cfg.ApplicantsDir = *applicantsFlag
	}
	if *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}

	store, err := storage.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	scanner := ingest.NewScanner(store)
	res, err := scanner.LoadFromDisk(context.Background(), cfg.ApplicantsDir)
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}

	log.Printf("Ingest complete: %d loaded, %d skipped", res.Loaded, res.Skipped)
}
