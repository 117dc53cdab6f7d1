package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ebay-reconciler/internal/config"
)

func schedulerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.MonthlyReconcileSync.CronSchedule = "0 5 1 * *"
	cfg.MonthlyReconcileSync.Enabled = false
	cfg.MonthlyReconcileSync.Allocation = "unit"
	cfg.MonthlyReconcileSync.FeeMode = "estimated"
	cfg.Reconciliation.SellerTimezone = "America/Los_Angeles"
	cfg.Reconciliation.OutputDir = "."
	return cfg
}

func TestNewMonthlyReconcileSyncService(t *testing.T) {
	service := NewMonthlyReconcileSyncService(nil, nil, schedulerConfig())

	assert.Equal(t, "0 5 1 * *", service.config.CronSchedule)
	assert.False(t, service.config.SyncEnabled)
	assert.Equal(t, "unit", service.config.Allocation)
	assert.Equal(t, "estimated", service.config.FeeMode)
	assert.Equal(t, "America/Los_Angeles", service.location.String())
}

func TestNewMonthlyReconcileSyncService_InvalidTimezoneFallsBackToUTC(t *testing.T) {
	cfg := schedulerConfig()
	cfg.Reconciliation.SellerTimezone = "Marte/Cratera"

	service := NewMonthlyReconcileSyncService(nil, nil, cfg)
	assert.Equal(t, time.UTC, service.location)
}

func TestMonthlyReconcileSyncService_StartDisabled(t *testing.T) {
	service := NewMonthlyReconcileSyncService(nil, nil, schedulerConfig())

	err := service.Start(context.Background())
	assert.NoError(t, err)
}

func TestMonthlyReconcileSyncService_PreviousMonth(t *testing.T) {
	service := NewMonthlyReconcileSyncService(nil, nil, schedulerConfig())

	period := service.previousMonth()

	// O mês anterior relativo ao relógio corrente, no fuso do vendedor
	now := time.Now().In(service.location)
	expected := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, service.location).AddDate(0, 0, -1)

	assert.Equal(t, expected.Year(), period.Year)
	assert.Equal(t, int(expected.Month()), period.Month)
}
