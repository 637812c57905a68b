package service

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// memClientRepository: in-memory ClientRepository with identity-style ids
// ---------------------------------------------------------------------------

type memClientRepository struct {
	mu      sync.Mutex
	nextID  int64
	clients map[int64]*model.Client
}

func newMemClientRepository() *memClientRepository {
	return &memClientRepository{nextID: 1, clients: make(map[int64]*model.Client)}
}

func (r *memClientRepository) List(ctx context.Context) ([]*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memClientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memClientRepository) Create(ctx context.Context, c *model.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *memClientRepository) Update(ctx context.Context, c *model.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[c.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *memClientRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

// ---------------------------------------------------------------------------
// mockFAQRepository
// ---------------------------------------------------------------------------

type mockFAQRepository struct {
	listFunc    func(ctx context.Context, opts model.FAQListOptions) ([]*model.FAQ, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.FAQ, error)
	createFunc  func(ctx context.Context, faq *model.FAQ) error
	updateFunc  func(ctx context.Context, faq *model.FAQ) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockFAQRepository) List(ctx context.Context, opts model.FAQListOptions) ([]*model.FAQ, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}
func (m *mockFAQRepository) GetByID(ctx context.Context, id int64) (*model.FAQ, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockFAQRepository) Create(ctx context.Context, faq *model.FAQ) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, faq)
	}
	return nil
}
func (m *mockFAQRepository) Update(ctx context.Context, faq *model.FAQ) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, faq)
	}
	return nil
}
func (m *mockFAQRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// mockContactRepository
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	saveFunc    func(ctx context.Context, sub *model.ContactSubmission) error
	listFunc    func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.ContactSubmission, error)
	updateFunc  func(ctx context.Context, sub *model.ContactSubmission) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sub)
	}
	return nil
}
func (m *mockContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}
func (m *mockContactRepository) GetByID(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockContactRepository) Update(ctx context.Context, sub *model.ContactSubmission) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, sub)
	}
	return nil
}
func (m *mockContactRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// mockNewsletterRepository
// ---------------------------------------------------------------------------

type mockNewsletterRepository struct {
	createFunc func(ctx context.Context, sub *model.NewsletterSubscriber) error
	listFunc   func(ctx context.Context) ([]*model.NewsletterSubscriber, error)
}

func (m *mockNewsletterRepository) Create(ctx context.Context, sub *model.NewsletterSubscriber) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, sub)
	}
	return nil
}
func (m *mockNewsletterRepository) List(ctx context.Context) ([]*model.NewsletterSubscriber, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// mockImageRepository / mockLogoRepository
// ---------------------------------------------------------------------------

type mockImageRepository struct {
	listFunc    func(ctx context.Context) ([]*model.ImageFile, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.ImageFile, error)
	createFunc  func(ctx context.Context, img *model.ImageFile) error
	updateFunc  func(ctx context.Context, img *model.ImageFile) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockImageRepository) List(ctx context.Context) ([]*model.ImageFile, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}
func (m *mockImageRepository) GetByID(ctx context.Context, id int64) (*model.ImageFile, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockImageRepository) Create(ctx context.Context, img *model.ImageFile) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, img)
	}
	return nil
}
func (m *mockImageRepository) Update(ctx context.Context, img *model.ImageFile) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, img)
	}
	return nil
}
func (m *mockImageRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockLogoRepository struct {
	getByIDFunc func(ctx context.Context, id int64) (*model.ClientLogo, error)
	createFunc  func(ctx context.Context, logo *model.ClientLogo) error
	updateFunc  func(ctx context.Context, logo *model.ClientLogo) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockLogoRepository) List(ctx context.Context, opts model.LogoListOptions) ([]*model.ClientLogo, error) {
	return nil, nil
}
func (m *mockLogoRepository) GetByID(ctx context.Context, id int64) (*model.ClientLogo, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockLogoRepository) Create(ctx context.Context, logo *model.ClientLogo) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, logo)
	}
	return nil
}
func (m *mockLogoRepository) Update(ctx context.Context, logo *model.ClientLogo) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, logo)
	}
	return nil
}
func (m *mockLogoRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// mockBlogPostRepository
// ---------------------------------------------------------------------------

type mockBlogPostRepository struct {
	listFunc           func(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error)
	getByIDFunc        func(ctx context.Context, id int64) (*model.BlogPost, error)
	getBySlugFunc      func(ctx context.Context, slug string) (*model.BlogPost, error)
	createFunc         func(ctx context.Context, post *model.BlogPost) error
	updateFunc         func(ctx context.Context, post *model.BlogPost) error
	incrementViewsFunc func(ctx context.Context, id int64) (int64, error)
}

func (m *mockBlogPostRepository) List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}
func (m *mockBlogPostRepository) GetByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockBlogPostRepository) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}
func (m *mockBlogPostRepository) Create(ctx context.Context, post *model.BlogPost) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, post)
	}
	return nil
}
func (m *mockBlogPostRepository) Update(ctx context.Context, post *model.BlogPost) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, post)
	}
	return nil
}
func (m *mockBlogPostRepository) Delete(ctx context.Context, id int64) error {
	return nil
}
func (m *mockBlogPostRepository) IncrementViews(ctx context.Context, id int64) (int64, error) {
	if m.incrementViewsFunc != nil {
		return m.incrementViewsFunc(ctx, id)
	}
	return 0, nil
}

// ---------------------------------------------------------------------------
// mockAdminUserRepository
// ---------------------------------------------------------------------------

type mockAdminUserRepository struct {
	users   map[string]*model.AdminUser
	created []*model.AdminUser
}

func (m *mockAdminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}
func (m *mockAdminUserRepository) FindByID(ctx context.Context, id int64) (*model.AdminUser, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}
func (m *mockAdminUserRepository) Create(ctx context.Context, user *model.AdminUser) error {
	m.created = append(m.created, user)
	return nil
}
func (m *mockAdminUserRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users) + len(m.created)), nil
}

// ---------------------------------------------------------------------------
// mockStorage
// ---------------------------------------------------------------------------

type mockStorage struct {
	saved   map[string]string
	deleted []string
	saveErr error
}

func newMockStorage() *mockStorage {
	return &mockStorage{saved: make(map[string]string)}
}

func (m *mockStorage) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	b, _ := io.ReadAll(data)
	m.saved[key] = string(b)
	return "https://cdn.example.com/" + key, nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}
