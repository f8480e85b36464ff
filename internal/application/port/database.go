package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the state database. The permission store and
// the doctor probe share one provider so the file is opened at most once.
type DatabaseProvider interface {
	// DB opens the database on first use. A failed open is retried on the
	// next call.
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
}
