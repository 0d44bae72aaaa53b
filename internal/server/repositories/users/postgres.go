package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/dbx"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE for a UNIQUE constraint failure.
const uniqueViolation = "23505"

// PostgresRepository stores users in the users table. Uniqueness and id
// allocation come from the UNIQUE constraint and the BIGSERIAL column, so
// Insert is a single statement and needs no application-side lock.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.User, error) {
	query :=
		`SELECT id, login, hash, salt FROM users
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]*models.User, 0)
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Login, &u.Hash, &u.Salt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *PostgresRepository) SelectByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT id, login, hash, salt FROM users
		 WHERE id = $1
		 `

	return r.selectOne(ctx, query, id)
}

func (r *PostgresRepository) SelectByLogin(ctx context.Context, login string) (*models.User, error) {
	query :=
		`SELECT id, login, hash, salt FROM users
		 WHERE login = $1
		 `

	return r.selectOne(ctx, query, login)
}

func (r *PostgresRepository) selectOne(ctx context.Context, query string, arg any) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Login, &u.Hash, &u.Salt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, login, hash, salt string) (int64, error) {
	query :=
		`INSERT INTO users (login, hash, salt)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query, login, hash, salt).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, common.ErrorLoginAlreadyUsed
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}
