package service

import (
	"context"
	"strings"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/repository"
)

// ClientService はクライアント台帳のビジネスロジック
type ClientService interface {
	List(ctx context.Context) ([]*model.Client, error)
	Create(ctx context.Context, c *model.Client) error
	Update(ctx context.Context, id int64, patch model.ClientPatch) (*model.Client, error)
	Delete(ctx context.Context, id int64) error
}

// ClientServiceImpl は ClientService の実装
type ClientServiceImpl struct {
	repo repository.ClientRepository
}

// NewClientService は ClientServiceImpl を生成する
func NewClientService(repo repository.ClientRepository) ClientService {
	return &ClientServiceImpl{repo: repo}
}

func (s *ClientServiceImpl) List(ctx context.Context) ([]*model.Client, error) {
	return s.repo.List(ctx)
}

// Create は入力を検証してクライアントを登録する。ID は DB が採番する
func (s *ClientServiceImpl) Create(ctx context.Context, c *model.Client) error {
	c.CompanyName = strings.TrimSpace(c.CompanyName)
	if err := validateStruct(c); err != nil {
		return err
	}
	return s.repo.Create(ctx, c)
}

// Update は既存レコードに patch をマージして保存する
func (s *ClientServiceImpl) Update(ctx context.Context, id int64, patch model.ClientPatch) (*model.Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.SerialNumber != nil {
		c.SerialNumber = *patch.SerialNumber
	}
	if patch.CompanyName != nil {
		c.CompanyName = strings.TrimSpace(*patch.CompanyName)
	}
	if patch.SecurityType != nil {
		c.SecurityType = *patch.SecurityType
	}
	if patch.ISINCode != nil {
		c.ISINCode = *patch.ISINCode
	}
	if patch.Active != nil {
		c.Active = *patch.Active
	}
	if err := validateStruct(c); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
