package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/storage"
)

func TestLogoService_Upload(t *testing.T) {
	store := newMockStorage()
	svc := NewLogoService(&mockLogoRepository{}, store, "logos")

	res, err := svc.Upload(context.Background(), FileUpload{Filename: "acme.webp", ContentType: "image/webp", Size: 3, Data: strings.NewReader("abc")})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasPrefix(res.Path, "logos/") || res.URL == "" {
		t.Errorf("unexpected result %+v", res)
	}
	if store.saved[res.Path] != "abc" {
		t.Error("object content not stored")
	}
}

func TestLogoService_Upload_NotConfigured(t *testing.T) {
	svc := NewLogoService(&mockLogoRepository{}, nil, "logos")
	_, err := svc.Upload(context.Background(), FileUpload{Filename: "a.png", ContentType: "image/png", Size: 1, Data: strings.NewReader("x")})
	if !errors.Is(err, storage.ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestLogoService_Update_ReplacingPathDeletesOldObject(t *testing.T) {
	store := newMockStorage()
	svc := NewLogoService(&mockLogoRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*model.ClientLogo, error) {
			return &model.ClientLogo{ID: id, Name: "Acme", URL: "https://x/old.png", Path: "logos/old.png"}, nil
		},
	}, store, "logos")

	url, path := "https://x/new.png", "logos/new.png"
	got, err := svc.Update(context.Background(), 1, model.ClientLogoPatch{URL: &url, Path: &path})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Path != path {
		t.Errorf("expected path %q, got %q", path, got.Path)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "logos/old.png" {
		t.Errorf("expected old object deleted, got %v", store.deleted)
	}
}

func TestLogoService_Delete_RemovesRemoteObject(t *testing.T) {
	store := newMockStorage()
	svc := NewLogoService(&mockLogoRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*model.ClientLogo, error) {
			return &model.ClientLogo{ID: id, Name: "Acme", URL: "u", Path: "logos/acme.png"}, nil
		},
	}, store, "logos")

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "logos/acme.png" {
		t.Errorf("expected remote delete, got %v", store.deleted)
	}
}

func TestLogoService_Create_RequiresURL(t *testing.T) {
	svc := NewLogoService(&mockLogoRepository{}, nil, "logos")
	if err := svc.Create(context.Background(), &model.ClientLogo{Name: "Acme"}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
