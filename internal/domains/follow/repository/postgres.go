package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/follow/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// GetOrCreate dựa vào UNIQUE(user_id, author_id), an toàn khi hai request chạy song song
func (r *postgresRepository) GetOrCreate(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO follows (user_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, author_id) DO NOTHING
	`, userID, authorID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return false, model.ErrSelfFollow
		}
		return false, fmt.Errorf("failed to create follow: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) Delete(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM follows WHERE user_id = $1 AND author_id = $2`, userID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)`,
		userID, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) count(ctx context.Context, column string, id uuid.UUID) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM follows WHERE `+column+` = $1`, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count follows: %w", err)
	}
	return n, nil
}

func (r *postgresRepository) CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error) {
	return r.count(ctx, "author_id", authorID)
}

func (r *postgresRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.count(ctx, "user_id", userID)
}
