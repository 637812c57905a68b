package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/repository"
)

func TestNewsletterService_Subscribe_NormalizesAndDefaultsSource(t *testing.T) {
	var saved *model.NewsletterSubscriber
	svc := NewNewsletterService(&mockNewsletterRepository{
		createFunc: func(ctx context.Context, sub *model.NewsletterSubscriber) error {
			sub.ID = 1
			saved = sub
			return nil
		},
	})

	sub, err := svc.Subscribe(context.Background(), "  Investor@Example.COM ", "")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if saved == nil || sub != saved {
		t.Fatal("expected the stored subscriber to be returned")
	}
	if sub.Email != "investor@example.com" {
		t.Errorf("expected normalized email, got %q", sub.Email)
	}
	if sub.Source != model.DefaultNewsletterSource {
		t.Errorf("expected source %q, got %q", model.DefaultNewsletterSource, sub.Source)
	}
}

func TestNewsletterService_Subscribe_Validation(t *testing.T) {
	svc := NewNewsletterService(&mockNewsletterRepository{})

	tests := []struct {
		email string
		want  string
	}{
		{"", "Email is required"},
		{"   ", "Email is required"},
		{"not-an-email", "Invalid email address"},
		{"a@b", "Invalid email address"},
		{"a b@example.com", "Invalid email address"},
	}
	for _, tt := range tests {
		_, err := svc.Subscribe(context.Background(), tt.email, "")
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%q: expected ErrValidation, got %v", tt.email, err)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.email, tt.want, err.Error())
		}
	}
}

func TestNewsletterService_Subscribe_DuplicateIsAlreadySubscribed(t *testing.T) {
	seen := map[string]bool{}
	svc := NewNewsletterService(&mockNewsletterRepository{
		createFunc: func(ctx context.Context, sub *model.NewsletterSubscriber) error {
			if seen[sub.Email] {
				return repository.ErrDuplicate
			}
			seen[sub.Email] = true
			return nil
		},
	})
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, "dup@example.com", "footer"); err != nil {
		t.Fatalf("first Subscribe: %v", err)
	}
	if _, err := svc.Subscribe(ctx, "DUP@example.com", "footer"); !errors.Is(err, ErrAlreadySubscribed) {
		t.Errorf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestNewsletterService_Subscribe_OtherErrorsPropagate(t *testing.T) {
	dbErr := errors.New("connection reset")
	svc := NewNewsletterService(&mockNewsletterRepository{
		createFunc: func(ctx context.Context, sub *model.NewsletterSubscriber) error {
			return dbErr
		},
	})

	_, err := svc.Subscribe(context.Background(), "ok@example.com", "")
	if !errors.Is(err, dbErr) {
		t.Errorf("expected db error, got %v", err)
	}
	if errors.Is(err, ErrAlreadySubscribed) {
		t.Error("non-duplicate error must not be reported as already subscribed")
	}
}
