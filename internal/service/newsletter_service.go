package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/rtaweb/backend/internal/metrics"
	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NewsletterService handles newsletter subscriptions.
type NewsletterService interface {
	// Subscribe returns ErrAlreadySubscribed when the email is already on the list.
	Subscribe(ctx context.Context, email, source string) (*model.NewsletterSubscriber, error)
	List(ctx context.Context) ([]*model.NewsletterSubscriber, error)
}

type newsletterServiceImpl struct {
	repo repository.NewsletterRepository
}

// NewNewsletterService creates a NewsletterService backed by repo.
func NewNewsletterService(repo repository.NewsletterRepository) NewsletterService {
	return &newsletterServiceImpl{repo: repo}
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email, source string) (*model.NewsletterSubscriber, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, invalid("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, invalid("Invalid email address")
	}
	if source = strings.TrimSpace(source); source == "" {
		source = model.DefaultNewsletterSource
	}

	sub := &model.NewsletterSubscriber{Email: email, Source: source}
	err := s.repo.Create(ctx, sub)
	switch {
	case err == nil:
		metrics.ObserveNewsletter("created")
		return sub, nil
	case errors.Is(err, repository.ErrDuplicate):
		// 一意制約違反だけを購読済みとして扱う
		metrics.ObserveNewsletter("duplicate")
		return nil, ErrAlreadySubscribed
	default:
		metrics.ObserveNewsletter("error")
		return nil, err
	}
}

func (s *newsletterServiceImpl) List(ctx context.Context) ([]*model.NewsletterSubscriber, error) {
	return s.repo.List(ctx)
}
