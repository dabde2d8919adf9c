package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/nhasan-dev/finarch/internal/advice"
	"github.com/nhasan-dev/finarch/internal/category"
	catStore "github.com/nhasan-dev/finarch/internal/category/store"
	"github.com/nhasan-dev/finarch/internal/config"
	finarchHttp "github.com/nhasan-dev/finarch/internal/http"
	adviceHandler "github.com/nhasan-dev/finarch/internal/http/advice"
	catHandler "github.com/nhasan-dev/finarch/internal/http/category"
	reportHandler "github.com/nhasan-dev/finarch/internal/http/report"
	txHandler "github.com/nhasan-dev/finarch/internal/http/transaction"
	"github.com/nhasan-dev/finarch/internal/ledger"
	ledgerStore "github.com/nhasan-dev/finarch/internal/ledger/store"
	"github.com/nhasan-dev/finarch/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		slog.Error("failed to resolve database path", "error", err)
		os.Exit(1)
	}

	db, err := storage.OpenSQLite(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		ledgerService = ledger.NewService(ledgerStore.New(db))
		registry      = category.NewRegistry(catStore.New(db))
		adviceService = advice.NewService(advice.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL), cfg.AI.Model)
	)

	var (
		transactionH = txHandler.NewHandler(ledgerService, registry)
		categoryH    = catHandler.NewHandler(registry)
		reportH      = reportHandler.NewHandler(ledgerService)
		adviceH      = adviceHandler.NewHandler(adviceService, ledgerService)
	)

	router := finarchHttp.New(transactionH, categoryH, reportH, adviceH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
