package main

import (
	"database/sql"
	"time"

	"github.com/fieldops/forst-api/internal/config"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// step é uma alteração idempotente de schema. exists verifica no information_schema se a
// alteração já foi aplicada.
type step struct {
	name   string
	exists string
	apply  []string
}

var steps = []step{
	{
		name: "tabela forst_report_snapshots",
		exists: `SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_name = 'forst_report_snapshots'
		)`,
		apply: []string{
			`CREATE TABLE forst_report_snapshots (
				id           VARCHAR(21) PRIMARY KEY,
				year         INTEGER     NOT NULL,
				payload      JSONB       NOT NULL,
				generated_at TIMESTAMPTZ NOT NULL,
				created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE INDEX forst_report_snapshots_year_idx ON forst_report_snapshots (year, generated_at DESC)`,
		},
	},
	{
		name: "índices de mês em offers",
		exists: `SELECT EXISTS (
			SELECT 1 FROM pg_indexes
			WHERE tablename = 'offers' AND indexname = 'offers_po_received_month_idx'
		)`,
		apply: []string{
			`CREATE INDEX offers_expected_month_idx ON offers (expected_month text_pattern_ops)`,
			`CREATE INDEX offers_offer_month_idx ON offers (offer_month text_pattern_ops)`,
			`CREATE INDEX offers_po_received_month_idx ON offers (po_received_month text_pattern_ops)`,
		},
	},
	{
		name: "índice de período em zone_targets",
		exists: `SELECT EXISTS (
			SELECT 1 FROM pg_indexes
			WHERE tablename = 'zone_targets' AND indexname = 'zone_targets_period_idx'
		)`,
		apply: []string{
			`CREATE INDEX zone_targets_period_idx ON zone_targets (period_type, target_period text_pattern_ops)`,
		},
	},
}

func run(db *sql.DB, s step) error {
	var applied bool
	if err := db.QueryRow(s.exists).Scan(&applied); err != nil {
		return err
	}

	if applied {
		logrus.WithField("step", s.name).Info("Já aplicado")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	for _, statement := range s.apply {
		if _, err := tx.Exec(statement); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func main() {
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("ERRO ao verificar conexão com o banco")
	}

	startTime := time.Now()
	for _, s := range steps {
		if err := run(db, s); err != nil {
			logrus.WithError(err).WithField("step", s.name).Fatal("ERRO ao aplicar migração")
		}
		logrus.WithField("step", s.name).Info("Migração aplicada")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
