package postgres

import (
	"context"
	"database/sql"

	"github.com/fieldops/forst-api/internal/config"
	_ "github.com/lib/pq"
)

// Connection embeds *sql.DB so repositories can use QueryContext/ExecContext directly.
type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

// Wrap builds a Connection around an already opened handle (used by tests with sqlmock).
func Wrap(db *sql.DB) *Connection {
	return &Connection{DB: db}
}
