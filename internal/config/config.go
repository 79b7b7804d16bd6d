package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DefaultApplicantsDir is the fallback applicants root when none is configured.
const DefaultApplicantsDir = "./applicants"

type Config struct {
	ApplicantsDir string // root directory holding one folder per applicant
	DBPath        string // sqlite database file
	Port          string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	applicantsDir := os.Getenv("APPLICANTS_PATH")
	if applicantsDir == "" {
		applicantsDir = DefaultApplicantsDir
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "recruiting.db"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		ApplicantsDir: applicantsDir,
		DBPath:        dbPath,
		Port:          port,
	}
}
