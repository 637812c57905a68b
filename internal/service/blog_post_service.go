package service

import (
	"context"
	"strings"

	"github.com/gosimple/slug"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/repository"
)

// BlogPostService はブログ記事のビジネスロジック
type BlogPostService interface {
	// ListPublished は公開済み記事を新しい順に返す
	ListPublished(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error)
	// ViewPublished は公開済み記事を slug で取得し、閲覧数を 1 増やす
	ViewPublished(ctx context.Context, slug string) (*model.BlogPost, error)

	List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*model.BlogPost, error)
	Create(ctx context.Context, post *model.BlogPost) error
	Update(ctx context.Context, id int64, patch model.BlogPostPatch) (*model.BlogPost, error)
	Delete(ctx context.Context, id int64) error
}

// BlogPostServiceImpl は BlogPostService の実装
type BlogPostServiceImpl struct {
	repo repository.BlogPostRepository
}

// NewBlogPostService は BlogPostServiceImpl を生成する
func NewBlogPostService(repo repository.BlogPostRepository) BlogPostService {
	return &BlogPostServiceImpl{repo: repo}
}

func (s *BlogPostServiceImpl) ListPublished(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
	opts.PublishedOnly = true
	return s.repo.List(ctx, opts)
}

func (s *BlogPostServiceImpl) ViewPublished(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	// 下書きは公開側からは存在しないものとして扱う
	if post.Status != model.BlogStatusPublished {
		return nil, repository.ErrNotFound
	}
	views, err := s.repo.IncrementViews(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	post.Views = views
	return post, nil
}

func (s *BlogPostServiceImpl) List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
	return s.repo.List(ctx, opts)
}

func (s *BlogPostServiceImpl) GetByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

// Create は slug 未指定ならタイトルから生成して記事を作成する。
// slug が既存と重複する場合は repository.ErrDuplicate
func (s *BlogPostServiceImpl) Create(ctx context.Context, post *model.BlogPost) error {
	post.Title = strings.TrimSpace(post.Title)
	if post.Slug == "" {
		post.Slug = slug.Make(post.Title)
	} else {
		post.Slug = slug.Make(post.Slug)
	}
	if post.Status == "" {
		post.Status = model.BlogStatusDraft
	}
	post.Tags = normalizeTags(post.Tags)
	if err := validateStruct(post); err != nil {
		return err
	}
	return s.repo.Create(ctx, post)
}

func (s *BlogPostServiceImpl) Update(ctx context.Context, id int64, patch model.BlogPostPatch) (*model.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		post.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Slug != nil {
		post.Slug = slug.Make(*patch.Slug)
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		post.Excerpt = *patch.Excerpt
	}
	if patch.Author != nil {
		post.Author = *patch.Author
	}
	if patch.Status != nil {
		post.Status = *patch.Status
	}
	if patch.Category != nil {
		post.Category = *patch.Category
	}
	if patch.Tags != nil {
		post.Tags = normalizeTags(*patch.Tags)
	}
	if patch.FeaturedImageURL != nil {
		post.FeaturedImageURL = *patch.FeaturedImageURL
	}
	if err := validateStruct(post); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogPostServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// normalizeTags trims tags, drops empties and duplicates, and never returns nil.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
