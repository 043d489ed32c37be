package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/fieldops/forst-api/infrastructure/database/postgres"
	"github.com/fieldops/forst-api/infrastructure/repository"
	"github.com/fieldops/forst-api/internal/api"
	"github.com/fieldops/forst-api/internal/config"
	"github.com/fieldops/forst-api/internal/scheduler"
	"github.com/fieldops/forst-api/internal/usecases/forst"
	"github.com/fieldops/forst-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.WithError(err).Warn("Usando nível de log 'info'")
		_ = log.Setup("info")
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	offerRepo := repository.NewOfferRepository(pgConn)
	zoneTargetRepo := repository.NewZoneTargetRepository(pgConn)
	serviceZoneRepo := repository.NewServiceZoneRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewReportSnapshotRepository(pgConn)

	reporter := forst.NewService(
		offerRepo,
		zoneTargetRepo,
		serviceZoneRepo,
		userRepo,
		snapshotRepo,
		cfg.Forst,
	)

	snapshotService := scheduler.NewForstSnapshotService(reporter, snapshotRepo, cfg)
	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots FORST")
	}

	server, err := api.New(cfg, reporter, snapshotService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite achar o .env ao rodar com go run a partir de outro diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
