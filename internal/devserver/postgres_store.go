package devserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"userdeck/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    title         TEXT NOT NULL DEFAULT '',
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    picture       TEXT NOT NULL DEFAULT '',
    gender        TEXT NOT NULL DEFAULT '',
    email         TEXT NOT NULL,
    date_of_birth TEXT NOT NULL DEFAULT '',
    phone         TEXT NOT NULL DEFAULT '',
    street        TEXT,
    city          TEXT,
    state         TEXT,
    country       TEXT,
    timezone      TEXT,
    register_date TIMESTAMPTZ NOT NULL,
    updated_date  TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (lower(email));
CREATE INDEX IF NOT EXISTS users_register_date_idx ON users (register_date DESC, id);
`

const userColumns = `id, title, first_name, last_name, picture, gender, email, date_of_birth, phone,
    street, city, state, country, timezone, register_date, updated_date`

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// PostgresStore keeps records in a PostgreSQL table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect opens a pool for dsn, checks it and applies the schema.
func Connect(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return pool, nil
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) List(ctx context.Context, offset, limit int) ([]User, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := s.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY register_date DESC, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (User, error) { return scanUser(row) })
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (s *PostgresStore) Create(ctx context.Context, u User) (User, error) {
	street, city, state, country, tz := locationColumns(u.Location)
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		u.ID, u.Title, u.FirstName, u.LastName, u.Picture, u.Gender, u.Email, u.DateOfBirth, u.Phone,
		street, city, state, country, tz, u.RegisterDate, u.UpdatedDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}

func (s *PostgresStore) Update(ctx context.Context, u User) (User, error) {
	street, city, state, country, tz := locationColumns(u.Location)
	cmd, err := s.pool.Exec(ctx,
		`UPDATE users
         SET title = $2, first_name = $3, last_name = $4, picture = $5, gender = $6,
             date_of_birth = $7, phone = $8, street = $9, city = $10, state = $11,
             country = $12, timezone = $13, updated_date = $14
         WHERE id = $1`,
		u.ID, u.Title, u.FirstName, u.LastName, u.Picture, u.Gender, u.DateOfBirth, u.Phone,
		street, city, state, country, tz, u.UpdatedDate)
	if err != nil {
		return User{}, err
	}
	if cmd.RowsAffected() == 0 {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (User, error) {
	var (
		u                                   User
		street, city, state, country, tzone *string
	)
	err := row.Scan(&u.ID, &u.Title, &u.FirstName, &u.LastName, &u.Picture, &u.Gender, &u.Email,
		&u.DateOfBirth, &u.Phone, &street, &city, &state, &country, &tzone, &u.RegisterDate, &u.UpdatedDate)
	if err != nil {
		return User{}, err
	}
	if street != nil || city != nil || state != nil || country != nil || tzone != nil {
		u.Location = &domain.LocationDTO{
			Street:   deref(street),
			City:     deref(city),
			State:    deref(state),
			Country:  deref(country),
			Timezone: deref(tzone),
		}
	}
	u.RegisterDate = u.RegisterDate.UTC()
	u.UpdatedDate = u.UpdatedDate.UTC()
	return u, nil
}

func locationColumns(l *domain.LocationDTO) (street, city, state, country, tz *string) {
	if l == nil {
		return nil, nil, nil, nil, nil
	}
	return &l.Street, &l.City, &l.State, &l.Country, &l.Timezone
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Compile-time assertion that PostgresStore implements Store.
var _ Store = (*PostgresStore)(nil)
