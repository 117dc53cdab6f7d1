package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance/financeclient"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading/tradingclient"
	"github.com/vfg2006/ebay-reconciler/internal/api"
	"github.com/vfg2006/ebay-reconciler/internal/config"
	"github.com/vfg2006/ebay-reconciler/internal/export"
	"github.com/vfg2006/ebay-reconciler/internal/scheduler"
	"github.com/vfg2006/ebay-reconciler/internal/usecases/reconciling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("Credencial obrigatória ausente na configuração")
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

	tradingClient := tradingclient.NewClient(cfg)
	tradingIntegrator := trading.New(cfg, tradingClient)

	financeClient := financeclient.NewClient(cfg)
	financeIntegrator := finance.New(cfg, financeClient)

	reconcileService, err := reconciling.NewService(cfg, tradingIntegrator, financeIntegrator)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o serviço de reconciliação")
	}

	exporter := export.NewCSVExporter()

	// Inicializa o agendador de reconciliação mensal
	monthlyReconcileSyncService := scheduler.NewMonthlyReconcileSyncService(
		reconcileService,
		exporter,
		cfg,
	)

	// Inicia o agendador em background
	if err := monthlyReconcileSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação mensal")
	} else {
		logrus.Info("Agendador de reconciliação mensal iniciado com sucesso")
	}

	server, err := api.New(cfg, reconcileService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
