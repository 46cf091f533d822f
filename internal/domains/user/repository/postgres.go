package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shop-admin-backend/internal/domains/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresRepository implements user.Repository on the users collection
// table, one JSONB document per row.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new user repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	doc, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user document: %w", err)
	}

	query := `INSERT INTO users (id, doc) VALUES ($1, $2)`
	if _, err := r.pool.Exec(ctx, query, u.ID, doc); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	query := `SELECT doc FROM users WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) FindAny(ctx context.Context) (*user.User, error) {
	query := `SELECT doc FROM users LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query))
}

func (r *postgresRepository) scanOne(row pgx.Row) (*user.User, error) {
	var doc []byte
	err := row.Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var u user.User
	if err := json.Unmarshal(doc, &u); err != nil {
		return nil, fmt.Errorf("failed to decode user document: %w", err)
	}
	return &u, nil
}
