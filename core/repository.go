package core

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRecord is the full persistence projection, including the password hash.
type UserRecord struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRow is the projection returned by GET /users. The password field
// carries the stored hash, never a plaintext.
type UserRow struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (int64, error)
	FindByEmail(ctx context.Context, email string) (*UserRecord, error)
	List(ctx context.Context) ([]UserRow, error)
}

// PgUserRepository implements UserRepository using pgxpool.
type PgUserRepository struct {
	db *pgxpool.Pool
}

func NewPgUserRepository(db *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{db: db}
}

func (r *PgUserRepository) Create(ctx context.Context, name, email, passwordHash string) (int64, error) {
	const q = `INSERT INTO users (name, email, password_hash) VALUES ($1,$2,$3) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, q, strings.TrimSpace(name), strings.TrimSpace(email), passwordHash).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// FindByEmail returns (nil, nil) when no user has the given email, so callers
// can fold the not-found case into their own error handling.
func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*UserRecord, error) {
	const q = `SELECT id, name, email, password_hash, created_at FROM users WHERE email=$1`
	var u UserRecord
	err := r.db.QueryRow(ctx, q, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *PgUserRepository) List(ctx context.Context) ([]UserRow, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, password_hash FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]UserRow, 0)
	for rows.Next() {
		var u UserRow
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}
