package repository

import (
	"context"

	"github.com/rtaweb/backend/internal/model"
)

// BlogPostRepository はブログ記事永続化のインターフェース
type BlogPostRepository interface {
	List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*model.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	Create(ctx context.Context, post *model.BlogPost) error
	Update(ctx context.Context, post *model.BlogPost) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) (int64, error)
}
