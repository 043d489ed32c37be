package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fieldops/forst-api/infrastructure/repository/mocks"
	"github.com/fieldops/forst-api/internal/config"
	"github.com/fieldops/forst-api/internal/domain"
	"github.com/fieldops/forst-api/internal/usecases/forst"
	forstmocks "github.com/fieldops/forst-api/internal/usecases/forst/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSnapshotService(t *testing.T) (*ForstSnapshotService, *forstmocks.MockReporter, *mocks.MockReportSnapshotRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reporter := forstmocks.NewMockReporter(ctrl)
	snapshotRepo := mocks.NewMockReportSnapshotRepository(ctrl)

	svc := NewForstSnapshotService(reporter, snapshotRepo, &config.Config{
		ForstSnapshot: config.ForstSnapshot{CronSchedule: "30 2 * * *", Enabled: true},
	})
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 2, 30, 0, 0, time.UTC) }
	svc.newID = func() (string, error) { return "abc123", nil }

	return svc, reporter, snapshotRepo
}

func TestForstSnapshotService_TakeSnapshot(t *testing.T) {
	generatedAt := time.Date(2024, 5, 1, 2, 30, 5, 0, time.UTC)
	report := &domain.CompleteReport{Year: 2024, GeneratedAt: generatedAt}

	tests := []struct {
		name     string
		setup    func(reporter *forstmocks.MockReporter, repo *mocks.MockReportSnapshotRepository)
		validate func(t *testing.T, snapshot *domain.ReportSnapshot, err error)
	}{
		{
			name: "Gera o relatório do ano corrente e salva",
			setup: func(reporter *forstmocks.MockReporter, repo *mocks.MockReportSnapshotRepository) {
				reporter.EXPECT().
					CompleteReport(gomock.Any(), forst.Params{Year: 2024}).
					Return(report, nil)

				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, snapshot *domain.ReportSnapshot) error {
						assert.Equal(t, "abc123", snapshot.ID)
						assert.Equal(t, 2024, snapshot.Year)
						assert.Same(t, report, snapshot.Report)
						return nil
					})
			},
			validate: func(t *testing.T, snapshot *domain.ReportSnapshot, err error) {
				require.NoError(t, err)
				assert.Equal(t, generatedAt, snapshot.GeneratedAt)
			},
		},
		{
			name: "Erro no relatório não salva nada",
			setup: func(reporter *forstmocks.MockReporter, repo *mocks.MockReportSnapshotRepository) {
				reporter.EXPECT().
					CompleteReport(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			validate: func(t *testing.T, snapshot *domain.ReportSnapshot, err error) {
				require.Error(t, err)
				assert.Nil(t, snapshot)
				assert.Contains(t, err.Error(), "db down")
			},
		},
		{
			name: "Erro ao salvar é propagado",
			setup: func(reporter *forstmocks.MockReporter, repo *mocks.MockReportSnapshotRepository) {
				reporter.EXPECT().CompleteReport(gomock.Any(), gomock.Any()).Return(report, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("duplicate"))
			},
			validate: func(t *testing.T, snapshot *domain.ReportSnapshot, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao salvar snapshot")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reporter, repo := newTestSnapshotService(t)
			tt.setup(reporter, repo)

			snapshot, err := svc.TakeSnapshot(context.Background())

			tt.validate(t, snapshot, err)
		})
	}
}

func TestForstSnapshotService_RunSnapshotUpdatesStatus(t *testing.T) {
	svc, reporter, repo := newTestSnapshotService(t)

	reporter.EXPECT().CompleteReport(gomock.Any(), gomock.Any()).Return(&domain.CompleteReport{Year: 2024}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	svc.runSnapshot(context.Background())

	status := svc.GetStatus()
	assert.Equal(t, "abc123", status["last_snapshot_id"])
	assert.Equal(t, "", status["last_error"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "30 2 * * *", status["sync_cron"])
}

func TestForstSnapshotService_RunSnapshotRecordsError(t *testing.T) {
	svc, reporter, _ := newTestSnapshotService(t)

	reporter.EXPECT().CompleteReport(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	svc.runSnapshot(context.Background())

	status := svc.GetStatus()
	assert.Contains(t, status["last_error"], "db down")
	assert.Equal(t, "", status["last_snapshot_id"])
}

func TestForstSnapshotService_SkipsWhenRunning(t *testing.T) {
	svc, _, _ := newTestSnapshotService(t)
	svc.syncRunning = true

	svc.runSnapshot(context.Background())
	svc.TriggerManualSync()

	assert.Equal(t, true, svc.GetStatus()["sync_running"])
}

func TestForstSnapshotService_StartDisabled(t *testing.T) {
	svc, _, _ := newTestSnapshotService(t)
	svc.config.SyncEnabled = false

	assert.NoError(t, svc.Start(context.Background()))
}
