package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func stubOpen(t *testing.T, db *sql.DB, err error) {
	t.Helper()
	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		if driver != "pgx" {
			return nil, errors.New("unexpected driver " + driver)
		}
		return db, err
	}
	t.Cleanup(func() { sqlOpen = orig })
}

func TestOpen_EmptyDSNUsesMemory(t *testing.T) {
	m, err := Open(context.Background(), "")
	require.NoError(t, err)

	_, ok := m.(*InMemoryRepositoryManager)
	assert.True(t, ok)
	assert.NoError(t, m.RunMigrations(context.Background()))
	assert.IsType(t, &users.MemoryRepository{}, m.Users())
	assert.NoError(t, m.Close())
}

func TestInMemoryManager_SharesOneStore(t *testing.T) {
	m := NewInMemoryRepositoryManager()
	ctx := context.Background()

	_, err := m.Users().Insert(ctx, "bob", "h", "s")
	require.NoError(t, err)

	_, err = m.Users().SelectByLogin(ctx, "bob")
	assert.NoError(t, err)
}

func TestNewPostgresRepositoryManager_ReturnsInterface(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	var m RepositoryManager = NewPostgresRepositoryManager(db)
	if u := m.Users(); u == nil {
		t.Fatal("Users() nil")
	}
	var _ users.Repository = m.Users()
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	})

	m := NewPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	})

	m := NewPostgresRepositoryManager(db)
	if err := m.RunMigrations(context.Background()); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestOpenPostgres_Success(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectPing()
	mock.ExpectClose()

	stubOpen(t, db, nil)
	stubGoose(t, func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error { return nil })

	m, err := Open(context.Background(), "postgres://example/userdir")
	require.NoError(t, err)
	require.IsType(t, &PostgresRepositoryManager{}, m)
	require.NoError(t, m.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_PingError(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()

	stubOpen(t, db, nil)

	_, err := OpenPostgres(context.Background(), "postgres://example/userdir")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db ping error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_MigrationErrorClosesPool(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectPing()
	mock.ExpectClose()

	stubOpen(t, db, nil)
	stubGoose(t, func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error { return errors.New("boom") })

	_, err := OpenPostgres(context.Background(), "postgres://example/userdir")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_OpenError(t *testing.T) {
	stubOpen(t, nil, errors.New("bad dsn"))

	_, err := OpenPostgres(context.Background(), "::")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db open error")
}
