package service

import (
	"context"
	"strings"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/repository"
	"github.com/rtaweb/backend/internal/storage"
)

// UploadResult is the public handle of a stored object.
type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// LogoService はクライアントロゴのアップロードとレコード管理
type LogoService interface {
	List(ctx context.Context, opts model.LogoListOptions) ([]*model.ClientLogo, error)
	// Upload stores the file only; the record is created separately with Create.
	Upload(ctx context.Context, f FileUpload) (*UploadResult, error)
	Create(ctx context.Context, logo *model.ClientLogo) error
	Update(ctx context.Context, id int64, patch model.ClientLogoPatch) (*model.ClientLogo, error)
	Delete(ctx context.Context, id int64) error
}

type logoServiceImpl struct {
	repo   repository.LogoRepository
	store  storage.Storage
	prefix string
}

// NewLogoService creates a LogoService. store may be nil.
func NewLogoService(repo repository.LogoRepository, store storage.Storage, prefix string) LogoService {
	return &logoServiceImpl{repo: repo, store: store, prefix: prefix}
}

func (s *logoServiceImpl) List(ctx context.Context, opts model.LogoListOptions) ([]*model.ClientLogo, error) {
	return s.repo.List(ctx, opts)
}

func (s *logoServiceImpl) Upload(ctx context.Context, f FileUpload) (*UploadResult, error) {
	if s.store == nil {
		return nil, storage.ErrNotConfigured
	}
	ext, err := checkImage(f)
	if err != nil {
		return nil, err
	}
	key := storage.NewObjectKey(s.prefix, ext)
	url, err := s.store.Save(ctx, key, f.Data, f.ContentType)
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: url, Path: key}, nil
}

func (s *logoServiceImpl) Create(ctx context.Context, logo *model.ClientLogo) error {
	logo.Name = strings.TrimSpace(logo.Name)
	if err := validateStruct(logo); err != nil {
		return err
	}
	return s.repo.Create(ctx, logo)
}

func (s *logoServiceImpl) Update(ctx context.Context, id int64, patch model.ClientLogoPatch) (*model.ClientLogo, error) {
	logo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldPath := logo.Path
	if patch.Name != nil {
		logo.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.URL != nil {
		logo.URL = *patch.URL
	}
	if patch.Path != nil {
		logo.Path = *patch.Path
	}
	if patch.AltText != nil {
		logo.AltText = *patch.AltText
	}
	if patch.DisplayOrder != nil {
		logo.DisplayOrder = *patch.DisplayOrder
	}
	if patch.Active != nil {
		logo.Active = *patch.Active
	}
	if err := validateStruct(logo); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, logo); err != nil {
		return nil, err
	}
	// ロゴ差し替え時は古いオブジェクトを消す
	if oldPath != logo.Path {
		removeObject(ctx, s.store, oldPath)
	}
	return logo, nil
}

func (s *logoServiceImpl) Delete(ctx context.Context, id int64) error {
	logo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	removeObject(ctx, s.store, logo.Path)
	return nil
}
