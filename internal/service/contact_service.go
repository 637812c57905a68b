package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/repository"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new submission with status "new". A newsletter opt-in
	// also subscribes the email; an existing subscription is not an error.
	Submit(ctx context.Context, sub *model.ContactSubmission) error

	// List returns submissions according to the given options, newest first.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)

	// Update merges patch into the stored submission. Any status transition is allowed.
	Update(ctx context.Context, id int64, patch model.ContactSubmissionPatch) (*model.ContactSubmission, error)

	Delete(ctx context.Context, id int64) error
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo       repository.ContactRepository
	newsletter NewsletterService
}

// NewContactService creates a ContactService backed by the given repository.
// newsletter may be nil, in which case opt-ins are only recorded on the submission.
func NewContactService(repo repository.ContactRepository, newsletter NewsletterService) ContactService {
	return &contactServiceImpl{repo: repo, newsletter: newsletter}
}

func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = NormalizeEmail(sub.Email)
	sub.Status = model.ContactStatusNew
	if strings.TrimSpace(sub.Source) == "" {
		sub.Source = model.DefaultContactSource
	}
	if err := validateStruct(sub); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, sub); err != nil {
		return err
	}

	if sub.Newsletter && s.newsletter != nil {
		if _, err := s.newsletter.Subscribe(ctx, sub.Email, sub.Source); err != nil && !errors.Is(err, ErrAlreadySubscribed) {
			// 問い合わせ自体は保存済みなので失敗にはしない
			slog.WarnContext(ctx, "newsletter opt-in failed", "contact_id", sub.ID, "error", err)
		}
	}
	return nil
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	if opts.Status != "" && opts.Status != "all" && !model.ValidContactStatus(opts.Status) {
		return nil, invalid("status must be one of: new read responded")
	}
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) Update(ctx context.Context, id int64, patch model.ContactSubmissionPatch) (*model.ContactSubmission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		sub.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		sub.Email = NormalizeEmail(*patch.Email)
	}
	if patch.Phone != nil {
		sub.Phone = *patch.Phone
	}
	if patch.Company != nil {
		sub.Company = *patch.Company
	}
	if patch.Service != nil {
		sub.Service = *patch.Service
	}
	if patch.Message != nil {
		sub.Message = *patch.Message
	}
	if patch.Status != nil {
		sub.Status = *patch.Status
	}
	if err := validateStruct(sub); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
