package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/receivables-recon-api/infrastructure/database/postgres"
	"github.com/vfg2006/receivables-recon-api/infrastructure/exporter"
	"github.com/vfg2006/receivables-recon-api/infrastructure/extract"
	"github.com/vfg2006/receivables-recon-api/infrastructure/repository"
	"github.com/vfg2006/receivables-recon-api/internal/api"
	"github.com/vfg2006/receivables-recon-api/internal/api/handler"
	"github.com/vfg2006/receivables-recon-api/internal/config"
	"github.com/vfg2006/receivables-recon-api/internal/scheduler"
	"github.com/vfg2006/receivables-recon-api/internal/usecases/reconciling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O banco guarda apenas o histórico de execuções; sem ele a API segue
	// funcionando, só não registra as execuções
	var runRepo repository.ReconciliationRunRepository
	if pgConn := pgconn(ctx, cfg.Database); pgConn != nil {
		defer pgConn.Close()
		runRepo = repository.NewReconciliationRunRepository(pgConn)
	}

	loader := extract.NewLoader(cfg.Extract)
	reconciler := reconciling.NewService(cfg, loader)
	reportExporter := exporter.NewExcelExporter(cfg.Report)

	syncService := scheduler.NewReconciliationSyncService(reconciler, reportExporter, runRepo, cfg)

	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação")
	} else {
		logrus.Info("Agendador de reconciliação iniciado com sucesso")
	}

	server, err := api.New(cfg, handler.ReconciliationServices{
		Reconciler:  reconciler,
		SyncService: syncService,
		RunRepo:     runRepo,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados, degradando para nil quando
// ele não está disponível
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Warn("PostgreSQL indisponível, histórico de execuções desativado")
		return nil
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
