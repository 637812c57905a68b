package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rtaweb/backend/internal/model"
)

const blogColumns = `id, slug, title, content, COALESCE(excerpt, ''), author, status, COALESCE(category, ''),
	tags, views, COALESCE(featured_image_url, ''), published_at, created_at, updated_at`

// PgBlogPostRepository は BlogPostRepository の PostgreSQL 実装
type PgBlogPostRepository struct {
	db DBTX
}

// NewPgBlogPostRepository は PgBlogPostRepository を生成する
func NewPgBlogPostRepository(db DBTX) *PgBlogPostRepository {
	return &PgBlogPostRepository{db: db}
}

var _ BlogPostRepository = (*PgBlogPostRepository)(nil)

func scanBlogPost(row pgx.Row) (*model.BlogPost, error) {
	var p model.BlogPost
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.Excerpt, &p.Author, &p.Status, &p.Category,
		&p.Tags, &p.Views, &p.FeaturedImageURL, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

// List は公開日（未公開は作成日）の新しい順に記事を返す
func (r *PgBlogPostRepository) List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
	var conditions []string
	var args []any

	if opts.PublishedOnly {
		args = append(args, model.BlogStatusPublished)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if c := strings.TrimSpace(opts.Category); c != "" {
		args = append(args, c)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}
	if t := strings.TrimSpace(opts.Tag); t != "" {
		args = append(args, t)
		conditions = append(conditions, "$"+strconv.Itoa(len(args))+" = ANY(tags)")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+blogColumns+` FROM blog_posts`+where+` ORDER BY COALESCE(published_at, created_at) DESC, id DESC`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetByID は ID で記事を取得する
func (r *PgBlogPostRepository) GetByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	p, err := scanBlogPost(r.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

// GetBySlug は slug で記事を取得する
func (r *PgBlogPostRepository) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	p, err := scanBlogPost(r.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1`, slug))
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

// Create inserts a post. published_at is stamped when the post is created as published.
// A slug collision surfaces as ErrDuplicate.
func (r *PgBlogPostRepository) Create(ctx context.Context, p *model.BlogPost) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO blog_posts (slug, title, content, excerpt, author, status, category, tags, featured_image_url, published_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, NULLIF($7, ''), $8, NULLIF($9, ''),
		         CASE WHEN $6 = 'published' THEN NOW() END)
		 RETURNING id, published_at, created_at, updated_at`,
		p.Slug, p.Title, p.Content, p.Excerpt, p.Author, p.Status, p.Category, p.Tags, p.FeaturedImageURL,
	).Scan(&p.ID, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	return mapError(err)
}

// Update writes back every mutable column. published_at keeps its first value while
// the post stays published and is cleared when it goes back to draft.
func (r *PgBlogPostRepository) Update(ctx context.Context, p *model.BlogPost) error {
	err := r.db.QueryRow(ctx,
		`UPDATE blog_posts
		 SET slug=$1, title=$2, content=$3, excerpt=NULLIF($4, ''), author=$5, status=$6,
		     category=NULLIF($7, ''), tags=$8, featured_image_url=NULLIF($9, ''),
		     published_at = CASE WHEN $6 = 'published' THEN COALESCE(published_at, NOW()) END,
		     updated_at=NOW()
		 WHERE id=$10
		 RETURNING published_at, updated_at`,
		p.Slug, p.Title, p.Content, p.Excerpt, p.Author, p.Status, p.Category, p.Tags, p.FeaturedImageURL, p.ID,
	).Scan(&p.PublishedAt, &p.UpdatedAt)
	return mapError(err)
}

// Delete は記事を削除する
func (r *PgBlogPostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter atomically and returns the new value.
func (r *PgBlogPostRepository) IncrementViews(ctx context.Context, id int64) (int64, error) {
	var views int64
	err := r.db.QueryRow(ctx,
		`UPDATE blog_posts SET views = views + 1 WHERE id=$1 RETURNING views`, id,
	).Scan(&views)
	if err != nil {
		return 0, mapError(err)
	}
	return views, nil
}
