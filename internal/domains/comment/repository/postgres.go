package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/comment/model"
	postModel "blog-backend/internal/domains/post/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *model.Comment) error {
	query := `
		INSERT INTO comments (post_id, author_id, text, created)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created
	`

	err := r.pool.QueryRow(ctx, query, c.PostID, c.AuthorID, c.Text).Scan(&c.ID, &c.Created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// post bị xóa giữa lúc load trang và submit
			return postModel.ErrPostNotFound
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, u.username, u.first_name, u.last_name, c.text, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created ASC, c.id ASC
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		c := &model.Comment{}
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.AuthorID,
			&c.Author.Username, &c.Author.FirstName, &c.Author.LastName,
			&c.Text, &c.Created,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.Author.ID = c.AuthorID
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
