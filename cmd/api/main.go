package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/classifier"
	"github.com/MrJamesThe3rd/aerooffers/internal/config"
	"github.com/MrJamesThe3rd/aerooffers/internal/database"
	"github.com/MrJamesThe3rd/aerooffers/internal/export"
	aeroHttp "github.com/MrJamesThe3rd/aerooffers/internal/http"
	classifyHandler "github.com/MrJamesThe3rd/aerooffers/internal/http/classify"
	exportHandler "github.com/MrJamesThe3rd/aerooffers/internal/http/export"
	"github.com/MrJamesThe3rd/aerooffers/internal/http/importcsv"
	offerHandler "github.com/MrJamesThe3rd/aerooffers/internal/http/offer"
	"github.com/MrJamesThe3rd/aerooffers/internal/importer"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
	offerStore "github.com/MrJamesThe3rd/aerooffers/internal/offer/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(cfg.App.LogLevel)

	cat, err := catalog.LoadFile(cfg.Classifier.CatalogPath)
	if err != nil {
		slog.Error("failed to load catalog", "path", cfg.Classifier.CatalogPath, "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	var (
		ruleBased     = classifier.New(cat, classifier.WithWorkers(cfg.Classifier.Workers))
		offerService  = offer.NewService(offerStore.New(db), ruleBased, cfg.Classifier.BatchSize)
		importService = importer.NewService()
		exportService = export.NewService(offerService)
	)

	var (
		classifyH = classifyHandler.NewHandler(ruleBased, cat)
		offerH    = offerHandler.NewHandler(offerService)
		importH   = importcsv.NewHandler(importService, offerService)
		exportH   = exportHandler.NewHandler(exportService)
	)

	router := aeroHttp.New(classifyH, offerH, importH, exportH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "port", server.Addr, "manufacturers", cat.Len())

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
