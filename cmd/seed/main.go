package main

import (
	"context"

	"go-doctor-directory/cmd/bootstrap"
	"go-doctor-directory/config"
	"go-doctor-directory/internal/infrastructure/database"
	"go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/scraper"
	"go-doctor-directory/internal/usecase"

	"github.com/sirupsen/logrus"
)

// Imports the batch artifact produced by cmd/scraper. The import is
// fail-fast: the first record that cannot be created aborts the run with a
// non-zero exit.
func main() {
	bootstrap.SetupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := database.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	records, err := scraper.ReadBatch(cfg.Scrape.Output)
	if err != nil {
		logrus.Fatalf("Failed to read batch artifact: %v", err)
	}
	logrus.Infof("Importing %d doctors from %s", len(records), cfg.Scrape.Output)

	doctorUsecase := usecase.NewDoctorUsecase(db, logrus.StandardLogger(), repository.NewDoctorRepository())

	ctx := context.Background()
	for i, record := range records {
		doctor, err := doctorUsecase.CreateDoctor(ctx, &record)
		if err != nil {
			logrus.Fatalf("Failed to import doctor %q (%d/%d): %v", record.Name, i+1, len(records), err)
		}
		logrus.Infof("Imported doctor %s (%d/%d)", doctor.Name, i+1, len(records))
	}

	logrus.Infof("Import complete: %d doctors", len(records))
}
