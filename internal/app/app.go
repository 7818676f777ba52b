// Package app wires configuration, the database pool, repositories and
// services for the binaries under cmd/.
package app

import (
	"database/sql"
	"fmt"
	"pmsdesk/internal/config"
	db "pmsdesk/internal/db/query"
	"pmsdesk/internal/repository"
	"pmsdesk/internal/resolver"
	"pmsdesk/internal/service"

	"github.com/sirupsen/logrus"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
	Db     *sql.DB

	IngestionService service.IngestionService
	SyncService      service.SyncService
	HistoryService   service.HistoryService
}

func New(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := config.NewLogger(cfg.LogLevel)

	dbConn, err := db.New(cfg.Database.URL, db.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime(),
	})
	if err != nil {
		return nil, err
	}

	txRunner := db.NewTxRunner(dbConn)
	accountRepository := repository.NewAccountRepository()
	masterSheetRepository := repository.NewMasterSheetRepository()
	equityHoldingRepository := repository.NewEquityHoldingRepository()
	mutualFundHoldingRepository := repository.NewMutualFundHoldingRepository()
	syncLogRepository := repository.NewSyncLogRepository()

	ingestionService := service.NewIngestionService(
		txRunner,
		accountRepository,
		masterSheetRepository,
		equityHoldingRepository,
		mutualFundHoldingRepository,
		service.IngestionConfig{
			BatchSize:            cfg.Ingest.BatchSize,
			FailedRowReportLimit: cfg.Ingest.FailedRowReportLimit,
		},
		logger.WithField("service", "ingestion"),
	)
	syncService := service.NewSyncService(
		txRunner,
		accountRepository,
		masterSheetRepository,
		equityHoldingRepository,
		mutualFundHoldingRepository,
		syncLogRepository,
		logger.WithField("service", "sync"),
	)
	historyService := service.NewHistoryService(
		txRunner,
		accountRepository,
		masterSheetRepository,
		equityHoldingRepository,
		mutualFundHoldingRepository,
		syncLogRepository,
		cfg.Ingest.HistoryLimit,
		logger.WithField("service", "history"),
	)

	return &App{
		Config:           cfg,
		Logger:           logger,
		Db:               dbConn,
		IngestionService: ingestionService,
		SyncService:      syncService,
		HistoryService:   historyService,
	}, nil
}

func (a *App) Resolver() resolver.Resolver {
	return resolver.NewResolver(
		a.IngestionService,
		a.SyncService,
		a.HistoryService,
		a.Logger.WithField("component", "resolver"),
	)
}

func (a *App) Close() error {
	return a.Db.Close()
}
