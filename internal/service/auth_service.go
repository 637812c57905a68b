package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/repository"
)

// AuthService は管理者の認証を扱う。資格情報は admin_users テーブルで管理する
type AuthService interface {
	// Authenticate は資格情報を検証する。不一致は ErrInvalidCredentials
	Authenticate(ctx context.Context, username, password string) (*model.AdminUser, error)
	// EnsureAdmin は管理者が一人もいない場合に初期管理者を作成する
	EnsureAdmin(ctx context.Context, username, password string) (created bool, err error)
}

// AuthServiceImpl は AuthService の実装
type AuthServiceImpl struct {
	repo repository.AdminUserRepository
	cost int
}

// NewAuthService は AuthServiceImpl を生成する
func NewAuthService(repo repository.AdminUserRepository) AuthService {
	return &AuthServiceImpl{repo: repo, cost: bcrypt.DefaultCost}
}

// ユーザーが存在しない場合も同じだけ時間をかけるための比較用ハッシュ
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("rtaweb-dummy-password"), bcrypt.MinCost)

func (s *AuthServiceImpl) Authenticate(ctx context.Context, username, password string) (*model.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, invalid("username and password are required")
	}
	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		slog.WarnContext(ctx, "no admin users and no bootstrap credentials configured; admin console is unusable")
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return false, err
	}
	if err := s.repo.Create(ctx, &model.AdminUser{Username: username, PasswordHash: string(hash)}); err != nil {
		return false, err
	}
	slog.InfoContext(ctx, "bootstrap admin created", "username", username)
	return true, nil
}
