package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/repository"
	"github.com/rtaweb/backend/internal/storage"
)

// ImageUpload is a new blog image with its metadata.
type ImageUpload struct {
	File         FileUpload
	Name         string
	Subtitle     string
	DisplayOrder int
}

// ImageService manages blog images stored with the blog image provider.
type ImageService interface {
	List(ctx context.Context) ([]*model.ImageFile, error)
	// Upload returns storage.ErrNotConfigured when no provider is set up.
	Upload(ctx context.Context, in ImageUpload) (*model.ImageFile, error)
	Update(ctx context.Context, id int64, patch model.ImageFilePatch) (*model.ImageFile, error)
	// Delete removes the record and then the remote object.
	Delete(ctx context.Context, id int64) error
}

type imageServiceImpl struct {
	repo   repository.ImageRepository
	store  storage.Storage
	prefix string
}

// NewImageService creates an ImageService. store may be nil.
func NewImageService(repo repository.ImageRepository, store storage.Storage, prefix string) ImageService {
	return &imageServiceImpl{repo: repo, store: store, prefix: prefix}
}

func (s *imageServiceImpl) List(ctx context.Context) ([]*model.ImageFile, error) {
	return s.repo.List(ctx)
}

func (s *imageServiceImpl) Upload(ctx context.Context, in ImageUpload) (*model.ImageFile, error) {
	if s.store == nil {
		return nil, storage.ErrNotConfigured
	}
	ext, err := checkImage(in.File)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = in.File.Filename
	}
	if name == "" {
		return nil, invalid("name is required")
	}

	key := storage.NewObjectKey(s.prefix, ext)
	url, err := s.store.Save(ctx, key, in.File.Data, in.File.ContentType)
	if err != nil {
		return nil, err
	}

	img := &model.ImageFile{
		Name:         name,
		URL:          url,
		Path:         key,
		Subtitle:     in.Subtitle,
		DisplayOrder: in.DisplayOrder,
		Active:       true,
	}
	if err := s.repo.Create(ctx, img); err != nil {
		// レコードが作れなかったオブジェクトは残さない
		if derr := s.store.Delete(ctx, key); derr != nil {
			slog.WarnContext(ctx, "orphaned image object", "path", key, "error", derr)
		}
		return nil, err
	}
	return img, nil
}

func (s *imageServiceImpl) Update(ctx context.Context, id int64, patch model.ImageFilePatch) (*model.ImageFile, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		img.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Subtitle != nil {
		img.Subtitle = *patch.Subtitle
	}
	if patch.DisplayOrder != nil {
		img.DisplayOrder = *patch.DisplayOrder
	}
	if patch.Active != nil {
		img.Active = *patch.Active
	}
	if err := validateStruct(img); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *imageServiceImpl) Delete(ctx context.Context, id int64) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	removeObject(ctx, s.store, img.Path)
	return nil
}

// removeObject deletes a remote object after its record is gone. Failures
// leave an orphan object and are only logged.
func removeObject(ctx context.Context, store storage.Storage, path string) {
	if store == nil || path == "" {
		return
	}
	if err := store.Delete(ctx, path); err != nil {
		slog.WarnContext(ctx, "failed to delete remote object", "path", path, "error", err)
	}
}
