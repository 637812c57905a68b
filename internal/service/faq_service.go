package service

import (
	"context"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/repository"
)

// FAQService は FAQ のビジネスロジック
type FAQService interface {
	List(ctx context.Context, opts model.FAQListOptions) ([]*model.FAQ, error)
	Create(ctx context.Context, faq *model.FAQ) error
	Update(ctx context.Context, id int64, patch model.FAQPatch) (*model.FAQ, error)
	Delete(ctx context.Context, id int64) error
}

// FAQServiceImpl は FAQService の実装
type FAQServiceImpl struct {
	repo repository.FAQRepository
}

// NewFAQService は FAQServiceImpl を生成する
func NewFAQService(repo repository.FAQRepository) FAQService {
	return &FAQServiceImpl{repo: repo}
}

func (s *FAQServiceImpl) List(ctx context.Context, opts model.FAQListOptions) ([]*model.FAQ, error) {
	return s.repo.List(ctx, opts)
}

func (s *FAQServiceImpl) Create(ctx context.Context, faq *model.FAQ) error {
	if err := validateStruct(faq); err != nil {
		return err
	}
	return s.repo.Create(ctx, faq)
}

// Update は既存の FAQ に patch をマージする。削除済みの ID は repository.ErrNotFound
func (s *FAQServiceImpl) Update(ctx context.Context, id int64, patch model.FAQPatch) (*model.FAQ, error) {
	faq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Question != nil {
		faq.Question = *patch.Question
	}
	if patch.Answer != nil {
		faq.Answer = *patch.Answer
	}
	if patch.Category != nil {
		faq.Category = *patch.Category
	}
	if patch.DisplayOrder != nil {
		faq.DisplayOrder = *patch.DisplayOrder
	}
	if patch.Active != nil {
		faq.Active = *patch.Active
	}
	if err := validateStruct(faq); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *FAQServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
