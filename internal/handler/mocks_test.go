package handler

import (
	"context"
	"errors"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/repository"
	"github.com/rtaweb/backend/internal/service"
)

var errUpstream = errors.New("upstream exploded")

// ---------------------------------------------------------------------------
// Mock ClientService
// ---------------------------------------------------------------------------

type mockClientService struct {
	listFunc   func(ctx context.Context) ([]*model.Client, error)
	createFunc func(ctx context.Context, c *model.Client) error
	updateFunc func(ctx context.Context, id int64, patch model.ClientPatch) (*model.Client, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockClientService) List(ctx context.Context) ([]*model.Client, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}
func (m *mockClientService) Create(ctx context.Context, c *model.Client) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	return nil
}
func (m *mockClientService) Update(ctx context.Context, id int64, patch model.ClientPatch) (*model.Client, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return &model.Client{ID: id}, nil
}
func (m *mockClientService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// memFAQService: stateful FAQService for round-trip tests
// ---------------------------------------------------------------------------

type memFAQService struct {
	nextID int64
	faqs   map[int64]*model.FAQ
	err    error
}

func newMemFAQService() *memFAQService {
	return &memFAQService{nextID: 1, faqs: make(map[int64]*model.FAQ)}
}

func (s *memFAQService) List(ctx context.Context, opts model.FAQListOptions) ([]*model.FAQ, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*model.FAQ
	for _, f := range s.faqs {
		if opts.ActiveOnly && !f.Active {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}
func (s *memFAQService) Create(ctx context.Context, faq *model.FAQ) error {
	faq.ID = s.nextID
	s.nextID++
	s.faqs[faq.ID] = faq
	return nil
}
func (s *memFAQService) Update(ctx context.Context, id int64, patch model.FAQPatch) (*model.FAQ, error) {
	f, ok := s.faqs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Question != nil {
		f.Question = *patch.Question
	}
	return f, nil
}
func (s *memFAQService) Delete(ctx context.Context, id int64) error {
	if _, ok := s.faqs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.faqs, id)
	return nil
}

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc   func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
	updateFunc func(ctx context.Context, id int64, patch model.ContactSubmissionPatch) (*model.ContactSubmission, error)
}

func (m *mockContactService) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, sub)
	}
	return nil
}
func (m *mockContactService) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}
func (m *mockContactService) Update(ctx context.Context, id int64, patch model.ContactSubmissionPatch) (*model.ContactSubmission, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return &model.ContactSubmission{ID: id}, nil
}
func (m *mockContactService) Delete(ctx context.Context, id int64) error {
	return nil
}

// ---------------------------------------------------------------------------
// memNewsletterService: the real service over a map with a unique index
// ---------------------------------------------------------------------------

type memNewsletterService struct {
	real service.NewsletterService
	subs map[string]bool
	err  error
}

type memNewsletterRepo struct{ s *memNewsletterService }

func (r memNewsletterRepo) Create(ctx context.Context, sub *model.NewsletterSubscriber) error {
	if r.s.err != nil {
		return r.s.err
	}
	if r.s.subs[sub.Email] {
		return repository.ErrDuplicate
	}
	r.s.subs[sub.Email] = true
	sub.ID = int64(len(r.s.subs))
	return nil
}

func (r memNewsletterRepo) List(ctx context.Context) ([]*model.NewsletterSubscriber, error) {
	return nil, nil
}

func newMemNewsletterService() *memNewsletterService {
	s := &memNewsletterService{subs: make(map[string]bool)}
	s.real = service.NewNewsletterService(memNewsletterRepo{s: s})
	return s
}

func (s *memNewsletterService) Subscribe(ctx context.Context, email, source string) (*model.NewsletterSubscriber, error) {
	return s.real.Subscribe(ctx, email, source)
}
func (s *memNewsletterService) List(ctx context.Context) ([]*model.NewsletterSubscriber, error) {
	return s.real.List(ctx)
}

// ---------------------------------------------------------------------------
// Mock ImageService / LogoService / BlogPostService / AuthService
// ---------------------------------------------------------------------------

type mockImageService struct {
	uploadFunc func(ctx context.Context, in service.ImageUpload) (*model.ImageFile, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockImageService) List(ctx context.Context) ([]*model.ImageFile, error) { return nil, nil }
func (m *mockImageService) Upload(ctx context.Context, in service.ImageUpload) (*model.ImageFile, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, in)
	}
	return &model.ImageFile{ID: 1}, nil
}
func (m *mockImageService) Update(ctx context.Context, id int64, patch model.ImageFilePatch) (*model.ImageFile, error) {
	return &model.ImageFile{ID: id}, nil
}
func (m *mockImageService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockLogoService struct {
	uploadFunc func(ctx context.Context, f service.FileUpload) (*service.UploadResult, error)
	listFunc   func(ctx context.Context, opts model.LogoListOptions) ([]*model.ClientLogo, error)
}

func (m *mockLogoService) List(ctx context.Context, opts model.LogoListOptions) ([]*model.ClientLogo, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}
func (m *mockLogoService) Upload(ctx context.Context, f service.FileUpload) (*service.UploadResult, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, f)
	}
	return &service.UploadResult{}, nil
}
func (m *mockLogoService) Create(ctx context.Context, logo *model.ClientLogo) error { return nil }
func (m *mockLogoService) Update(ctx context.Context, id int64, patch model.ClientLogoPatch) (*model.ClientLogo, error) {
	return &model.ClientLogo{ID: id}, nil
}
func (m *mockLogoService) Delete(ctx context.Context, id int64) error { return nil }

type mockBlogService struct {
	listPublishedFunc func(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error)
	viewFunc          func(ctx context.Context, slug string) (*model.BlogPost, error)
	createFunc        func(ctx context.Context, post *model.BlogPost) error
}

func (m *mockBlogService) ListPublished(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
	if m.listPublishedFunc != nil {
		return m.listPublishedFunc(ctx, opts)
	}
	return nil, nil
}
func (m *mockBlogService) ViewPublished(ctx context.Context, slug string) (*model.BlogPost, error) {
	if m.viewFunc != nil {
		return m.viewFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}
func (m *mockBlogService) List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
	return nil, nil
}
func (m *mockBlogService) GetByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	return nil, repository.ErrNotFound
}
func (m *mockBlogService) Create(ctx context.Context, post *model.BlogPost) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, post)
	}
	return nil
}
func (m *mockBlogService) Update(ctx context.Context, id int64, patch model.BlogPostPatch) (*model.BlogPost, error) {
	return &model.BlogPost{ID: id}, nil
}
func (m *mockBlogService) Delete(ctx context.Context, id int64) error { return nil }

type mockAuthService struct {
	users map[string]string // username → password
}

func (m *mockAuthService) Authenticate(ctx context.Context, username, password string) (*model.AdminUser, error) {
	if pw, ok := m.users[username]; ok && pw == password {
		return &model.AdminUser{ID: 1, Username: username}, nil
	}
	return nil, service.ErrInvalidCredentials
}
func (m *mockAuthService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	return false, nil
}
