package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/post/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const selectPost = `
	SELECT
		p.id, p.text, p.pub_date,
		p.author_id, u.username, u.first_name, u.last_name,
		p.group_id, g.title, g.slug,
		p.image, p.image_thumb,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id
`

func scanPost(row pgx.Row) (*model.Post, error) {
	p := &model.Post{}
	var groupTitle, groupSlug *string

	err := row.Scan(
		&p.ID, &p.Text, &p.PubDate,
		&p.AuthorID, &p.Author.Username, &p.Author.FirstName, &p.Author.LastName,
		&p.GroupID, &groupTitle, &groupSlug,
		&p.Image, &p.ImageThumb,
		&p.CommentCount,
	)
	if err != nil {
		return nil, err
	}

	p.Author.ID = p.AuthorID
	if p.GroupID != nil && groupTitle != nil && groupSlug != nil {
		p.Group = &model.GroupRef{ID: *p.GroupID, Title: *groupTitle, Slug: *groupSlug}
	}
	return p, nil
}

// buildWhere dựng WHERE clause theo filter, args đánh số từ $1
func buildWhere(f model.Filter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if f.GroupID != nil {
		args = append(args, *f.GroupID)
		conds = append(conds, fmt.Sprintf("p.group_id = $%d", len(args)))
	}
	if f.AuthorID != nil {
		args = append(args, *f.AuthorID)
		conds = append(conds, fmt.Sprintf("p.author_id = $%d", len(args)))
	}
	if f.FollowerID != nil {
		args = append(args, *f.FollowerID)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM follows fl WHERE fl.author_id = p.author_id AND fl.user_id = $%d)", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// =====================================================
// CREATE / UPDATE
// =====================================================

func (r *postgresRepository) Create(ctx context.Context, p *model.Post) error {
	query := `
		INSERT INTO posts (text, author_id, group_id, image, image_thumb, pub_date)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, pub_date
	`

	err := r.pool.QueryRow(ctx, query,
		p.Text,
		p.AuthorID,
		p.GroupID,
		p.Image,
		p.ImageThumb,
	).Scan(&p.ID, &p.PubDate)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Post) error {
	query := `
		UPDATE posts
		SET text = $2, group_id = $3, image = $4, image_thumb = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, p.ID, p.Text, p.GroupID, p.Image, p.ImageThumb)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

// =====================================================
// READ
// =====================================================

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	p, err := scanPost(r.pool.QueryRow(ctx, selectPost+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Count(ctx context.Context, f model.Filter) (int, error) {
	where, args := buildWhere(f)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts p`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) List(ctx context.Context, f model.Filter, limit, offset int) ([]*model.Post, error) {
	where, args := buildWhere(f)
	args = append(args, limit, offset)
	query := selectPost + where + fmt.Sprintf(
		" ORDER BY p.pub_date DESC, p.id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return r.queryPosts(ctx, query, args...)
}

func (r *postgresRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*model.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// =====================================================
// THUMBNAILS
// =====================================================

func (r *postgresRepository) SetThumbnail(ctx context.Context, id int64, imageKey, thumbKey string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE posts SET image_thumb = $3 WHERE id = $1 AND image = $2`,
		id, imageKey, thumbKey)
	if err != nil {
		return false, fmt.Errorf("failed to set thumbnail: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) ListMissingThumbnails(ctx context.Context, limit int) ([]*model.Post, error) {
	query := selectPost + `
		WHERE p.image IS NOT NULL AND p.image <> '' AND p.image_thumb IS NULL
		ORDER BY p.id
		LIMIT $1
	`
	return r.queryPosts(ctx, query, limit)
}
