package repository

import (
	"context"

	"github.com/rtaweb/backend/internal/model"
)

// FAQRepository は FAQ 永続化のインターフェース
type FAQRepository interface {
	List(ctx context.Context, opts model.FAQListOptions) ([]*model.FAQ, error)
	GetByID(ctx context.Context, id int64) (*model.FAQ, error)
	Create(ctx context.Context, faq *model.FAQ) error
	Update(ctx context.Context, faq *model.FAQ) error
	Delete(ctx context.Context, id int64) error
}
