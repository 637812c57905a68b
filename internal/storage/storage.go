package storage

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/google/uuid"
)

// Storage は画像ファイルの保存・削除を抽象化するインターフェース。
// ブログ画像は S3、クライアントロゴは Supabase Storage、開発時はローカルに保存する。
type Storage interface {
	// Save はファイルを保存し、公開 URL を返す。
	// key はストレージ内の一意パス (例: "logos/<uuid>.png")。
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete は key に対応するファイルを削除する。
	Delete(ctx context.Context, key string) error
}

// ErrNotConfigured is returned by handlers when a feature's storage driver is not set up.
var ErrNotConfigured = errors.New("storage not configured")

// NewObjectKey returns a collision-free key under prefix with the given extension.
func NewObjectKey(prefix, ext string) string {
	return path.Join(prefix, uuid.NewString()+ext)
}
