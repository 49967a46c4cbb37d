package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/ihl-standings/internal/domain/team"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const driverName = "postgres"

// ErrMissingDatabaseURL is returned by Open when the DSN source is empty.
var ErrMissingDatabaseURL = errors.New("database url is not configured")

// Opener dials a dedicated connection for every Open call. Nothing is
// shared between sessions.
type Opener struct {
	dsn                   func() string
	disablePreparedBinary bool
}

func NewOpener(dsn func() string, disablePreparedBinary bool) *Opener {
	return &Opener{dsn: dsn, disablePreparedBinary: disablePreparedBinary}
}

func (o *Opener) Open(ctx context.Context) (team.Session, error) {
	raw := ""
	if o.dsn != nil {
		raw = strings.TrimSpace(o.dsn())
	}
	if raw == "" {
		return nil, ErrMissingDatabaseURL
	}

	db, err := otelsqlx.ConnectContext(ctx, driverName, NormalizeDBURL(raw, o.disablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(raw)),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &teamSession{TeamRepository: NewTeamRepository(db), db: db}, nil
}

type teamSession struct {
	*TeamRepository
	db *sqlx.DB
}

func (s *teamSession) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close postgres connection: %w", err)
	}
	return nil
}
