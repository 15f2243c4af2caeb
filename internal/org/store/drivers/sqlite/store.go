// Package sqlite implements store.Store on top of modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/quorumhq/quorum/internal/org/store"
	_ "modernc.org/sqlite"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so repos can run against
// either.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	// Pragmas ride on the DSN so every pooled connection gets them, not
	// just the one that happened to run an exec. busy_timeout makes
	// contending transactions wait for the lock instead of failing with
	// SQLITE_BUSY, and _txlock=immediate takes the write lock at BEGIN so
	// a transaction never hits the read-to-write upgrade deadlock that
	// busy_timeout cannot resolve.
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:  db,
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users                   { return &usersRepo{db: s.db} }
func (s *Store) Organizations() store.Organizations   { return &organizationsRepo{db: s.db} }
func (s *Store) Memberships() store.Memberships       { return &membershipsRepo{db: s.db} }
func (s *Store) Tokens() store.Tokens                 { return &tokensRepo{db: s.db} }
func (s *Store) AccessRequests() store.AccessRequests { return &accessRequestsRepo{db: s.db} }

// mapConflict folds SQLite constraint violations into the portable
// store.ErrAlreadyExists. modernc does not export stable error values, so
// the message is the contract.
func mapConflict(err error) error {
	if err != nil && strings.Contains(err.Error(), "constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

// requireAffected turns a zero-row write into store.ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

// orderClause builds a safe ORDER BY fragment. Sort keys are resolved
// through a per-repo whitelist so user input never reaches the SQL text.
func orderClause(p store.ListParams, columns map[string]string, fallback string) string {
	col, ok := columns[p.Sort]
	if !ok {
		col = fallback
	}
	dir := "ASC"
	if p.Descending() {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir
}

// pageClause applies LIMIT/OFFSET. A non-positive limit means no paging.
func pageClause(p store.ListParams, args []any) (string, []any) {
	if p.Limit <= 0 {
		return "", args
	}
	return " LIMIT ? OFFSET ?", append(args, p.Limit, p.Offset)
}
