package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ebay-reconciler/internal/config"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
	"github.com/vfg2006/ebay-reconciler/internal/export"
	"github.com/vfg2006/ebay-reconciler/internal/usecases/reconciling"
	"github.com/vfg2006/ebay-reconciler/pkg/utils"
)

// MonthlyReconcileSyncConfig representa a configuração do agendador de reconciliação mensal
type MonthlyReconcileSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Allocation   string
	FeeMode      string
}

// MonthlyReconcileSyncService agenda a reconciliação do mês anterior e
// exporta o artefato no diretório configurado
type MonthlyReconcileSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyReconcileSyncConfig
	appConfig           *config.Config
	reconciler          reconciling.Reconciler
	exporter            export.Exporter
	location            *time.Location
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewMonthlyReconcileSyncService(
	reconciler reconciling.Reconciler,
	exporter export.Exporter,
	appConfig *config.Config,
) *MonthlyReconcileSyncService {
	syncConfig := MonthlyReconcileSyncConfig{
		CronSchedule: appConfig.MonthlyReconcileSync.CronSchedule,
		SyncEnabled:  appConfig.MonthlyReconcileSync.Enabled,
		Allocation:   appConfig.MonthlyReconcileSync.Allocation,
		FeeMode:      appConfig.MonthlyReconcileSync.FeeMode,
	}

	location, err := time.LoadLocation(appConfig.Reconciliation.SellerTimezone)
	if err != nil {
		logrus.WithError(err).Warn("Fuso do vendedor inválido para o agendador, usando UTC")
		location = time.UTC
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"allocation":    syncConfig.Allocation,
		"fee_mode":      syncConfig.FeeMode,
	}).Info("Configuração do agendador de reconciliação mensal carregada")

	return &MonthlyReconcileSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		appConfig:  appConfig,
		reconciler: reconciler,
		exporter:   exporter,
		location:   location,
	}
}

// Start inicia o agendador
func (s *MonthlyReconcileSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconciliação mensal agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconciliação mensal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runMonthlyReconcile()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação mensal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação mensal")
		s.scheduler.Stop()
	}()

	return nil
}

// runMonthlyReconcile reconcilia o mês anterior completo e exporta o CSV
func (s *MonthlyReconcileSyncService) runMonthlyReconcile() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação mensal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	period := s.previousMonth()

	logger := logrus.WithField("period", period.String())
	logger.Info("Iniciando reconciliação mensal agendada")

	allocation, err := reconciling.ParseAllocationMode(s.config.Allocation)
	if err != nil {
		logger.WithError(err).Error("Modo de alocação configurado é inválido")
		return
	}

	feeMode, err := reconciling.ParseFeeMode(s.config.FeeMode)
	if err != nil {
		logger.WithError(err).Error("Modo de tarifa configurado é inválido")
		return
	}

	report, err := s.reconciler.Reconcile(period, reconciling.Options{
		Allocation: allocation,
		FeeMode:    feeMode,
	})
	if err != nil {
		logger.WithError(err).Error("Erro na reconciliação mensal agendada")
		return
	}

	runID, err := utils.GenerateRunID()
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar o ID da execução")
		return
	}

	path := filepath.Join(
		s.appConfig.Reconciliation.OutputDir,
		fmt.Sprintf("reconciliation_%s_%s.csv", period.String(), runID),
	)

	if err := s.exporter.ExportReport(path, report); err != nil {
		logger.WithError(err).Error("Erro ao exportar o relatório mensal")
		return
	}

	logger.WithFields(logrus.Fields{
		"path": path,
		"rows": len(report.Rows),
	}).Info("Reconciliação mensal agendada concluída")
}

// previousMonth resolve o mês anterior completo no fuso do vendedor
func (s *MonthlyReconcileSyncService) previousMonth() domain.ReportingPeriod {
	now := time.Now().In(s.location)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location)
	previous := firstOfMonth.AddDate(0, 0, -1)

	return domain.ReportingPeriod{
		Year:  previous.Year(),
		Month: int(previous.Month()),
	}
}
