package repository

import (
	"context"

	"github.com/rtaweb/backend/internal/model"
)

// ClientRepository はクライアント永続化のインターフェース
type ClientRepository interface {
	List(ctx context.Context) ([]*model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, id int64) error
}
