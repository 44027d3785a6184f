package main

import (
	"context"
	"net/http"
	"time"

	"go-doctor-directory/cmd/bootstrap"
	"go-doctor-directory/config"
	"go-doctor-directory/internal/scraper"

	"github.com/sirupsen/logrus"
)

func main() {
	bootstrap.SetupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Scrape.BaseURL == "" {
		logrus.Fatal("SCRAPE_BASE_URL is not configured")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	s := scraper.New(client, logrus.StandardLogger())

	doctors, err := s.Run(context.Background(), cfg.Scrape.BaseURL, cfg.Scrape.Pages)
	if err != nil {
		logrus.Fatalf("Scrape failed: %v", err)
	}

	if err := scraper.WriteBatch(cfg.Scrape.Output, doctors); err != nil {
		logrus.Fatalf("Failed to write batch artifact: %v", err)
	}

	logrus.Infof("Scraped %d doctors into %s", len(doctors), cfg.Scrape.Output)
}
