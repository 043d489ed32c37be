// Package scheduler contém os serviços de agendamento executados em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fieldops/forst-api/infrastructure/repository"
	"github.com/fieldops/forst-api/internal/config"
	"github.com/fieldops/forst-api/internal/domain"
	"github.com/fieldops/forst-api/internal/usecases/forst"
	"github.com/fieldops/forst-api/pkg/utils"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// ForstSnapshotConfig representa a configuração do agendador de snapshots FORST
type ForstSnapshotConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ForstSnapshotService gera periodicamente o relatório completo do ano corrente e o persiste
type ForstSnapshotService struct {
	scheduler           *gocron.Scheduler
	config              ForstSnapshotConfig
	reporter            forst.Reporter
	snapshotRepo        repository.ReportSnapshotRepository
	now                 func() time.Time
	newID               func() (string, error)
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastError           string
}

func NewForstSnapshotService(
	reporter forst.Reporter,
	snapshotRepo repository.ReportSnapshotRepository,
	cfg *config.Config,
) *ForstSnapshotService {
	snapshotConfig := ForstSnapshotConfig{
		CronSchedule: cfg.ForstSnapshot.CronSchedule,
		SyncEnabled:  cfg.ForstSnapshot.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"sync_enabled":  snapshotConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots FORST carregada")

	return &ForstSnapshotService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       snapshotConfig,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
		newID:        utils.GenerateID,
	}
}

// Start inicia o agendador
func (s *ForstSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshots FORST desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots FORST")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSnapshot(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots FORST: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots FORST")
		s.scheduler.Stop()
	}()

	return nil
}

// runSnapshot executa uma geração por vez; chamadas concorrentes são ignoradas
func (s *ForstSnapshotService) runSnapshot(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot FORST já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	snapshot, err := s.TakeSnapshot(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao gerar snapshot FORST")
		return
	}

	s.lastError = ""
	s.lastSnapshotID = snapshot.ID
	s.lastSyncCompletedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"year":        snapshot.Year,
		"duration":    time.Since(startTime).String(),
	}).Info("Snapshot FORST concluído")
}

// TakeSnapshot monta o relatório completo do ano corrente e o salva
func (s *ForstSnapshotService) TakeSnapshot(ctx context.Context) (*domain.ReportSnapshot, error) {
	year := s.now().Year()

	report, err := s.reporter.CompleteReport(ctx, forst.Params{Year: year})
	if err != nil {
		return nil, fmt.Errorf("erro ao montar relatório completo: %w", err)
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	snapshot := &domain.ReportSnapshot{
		ID:          id,
		Year:        year,
		Report:      report,
		GeneratedAt: report.GeneratedAt,
	}

	if err := s.snapshotRepo.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	return snapshot, nil
}

// TriggerManualSync dispara um snapshot fora do agendamento
func (s *ForstSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot FORST já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual FORST")
	go s.runSnapshot(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ForstSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_error":             s.lastError,
	}
}
