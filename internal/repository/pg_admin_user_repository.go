package repository

import (
	"context"

	"github.com/rtaweb/backend/internal/model"
)

// AdminUserRepository は管理者アカウント（認証情報ストア）のインターフェース
type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	FindByID(ctx context.Context, id int64) (*model.AdminUser, error)
	Create(ctx context.Context, user *model.AdminUser) error
	Count(ctx context.Context) (int64, error)
}

// PgAdminUserRepository は AdminUserRepository の PostgreSQL 実装
type PgAdminUserRepository struct {
	db DBTX
}

// NewPgAdminUserRepository は PgAdminUserRepository を生成する
func NewPgAdminUserRepository(db DBTX) *PgAdminUserRepository {
	return &PgAdminUserRepository{db: db}
}

var _ AdminUserRepository = (*PgAdminUserRepository)(nil)

func (r *PgAdminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM admin_users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *PgAdminUserRepository) FindByID(ctx context.Context, id int64) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM admin_users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *PgAdminUserRepository) Create(ctx context.Context, u *model.AdminUser) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO admin_users (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`,
		u.Username, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	return mapError(err)
}

func (r *PgAdminUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&n)
	return n, err
}
