package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/logging"
)

// ErrDatabaseClosed is returned by LazyDB.DB after Close.
var ErrDatabaseClosed = errors.New("database closed")

// LazyDB opens the state database on first access, so commands that never
// read a permission outcome skip the WASM compile and migrations.
type LazyDB struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the shared connection, opening it if needed. Opening holds the
// lock, so concurrent callers wait for the same connection.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.closed:
		return nil, ErrDatabaseClosed
	case l.db != nil:
		return l.db, nil
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("path", l.path).Msg("opening state database")

	db, err := NewConnection(ctx, l.path)
	if err != nil {
		log.Error().Err(err).Str("path", l.path).Msg("state database unavailable")
		return nil, fmt.Errorf("open state database: %w", err)
	}
	l.db = db
	return db, nil
}

// Close releases the connection. Later DB calls fail with ErrDatabaseClosed.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database file location.
func (l *LazyDB) Path() string {
	return l.path
}
