package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rtaweb/backend/internal/model"
)

// ImageRepository persists blog image references. The files themselves live
// with the blog image storage provider.
type ImageRepository interface {
	List(ctx context.Context) ([]*model.ImageFile, error)
	GetByID(ctx context.Context, id int64) (*model.ImageFile, error)
	Create(ctx context.Context, img *model.ImageFile) error
	Update(ctx context.Context, img *model.ImageFile) error
	Delete(ctx context.Context, id int64) error
}

// PgImageRepository is the PostgreSQL implementation of ImageRepository.
type PgImageRepository struct {
	db DBTX
}

// NewPgImageRepository creates a PgImageRepository.
func NewPgImageRepository(db DBTX) *PgImageRepository {
	return &PgImageRepository{db: db}
}

var _ ImageRepository = (*PgImageRepository)(nil)

const imageColumns = `id, name, url, path, COALESCE(subtitle, ''), display_order, active, created_at, updated_at`

func scanImage(row pgx.Row) (*model.ImageFile, error) {
	var i model.ImageFile
	if err := row.Scan(&i.ID, &i.Name, &i.URL, &i.Path, &i.Subtitle, &i.DisplayOrder, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *PgImageRepository) List(ctx context.Context) ([]*model.ImageFile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+imageColumns+` FROM image_files ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []*model.ImageFile
	for rows.Next() {
		i, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, i)
	}
	return images, rows.Err()
}

func (r *PgImageRepository) GetByID(ctx context.Context, id int64) (*model.ImageFile, error) {
	i, err := scanImage(r.db.QueryRow(ctx, `SELECT `+imageColumns+` FROM image_files WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return i, nil
}

func (r *PgImageRepository) Create(ctx context.Context, i *model.ImageFile) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO image_files (name, url, path, subtitle, display_order, active)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		 RETURNING id, created_at, updated_at`,
		i.Name, i.URL, i.Path, i.Subtitle, i.DisplayOrder, i.Active,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
	return mapError(err)
}

func (r *PgImageRepository) Update(ctx context.Context, i *model.ImageFile) error {
	err := r.db.QueryRow(ctx,
		`UPDATE image_files
		 SET name=$1, subtitle=NULLIF($2, ''), display_order=$3, active=$4, updated_at=NOW()
		 WHERE id=$5
		 RETURNING updated_at`,
		i.Name, i.Subtitle, i.DisplayOrder, i.Active, i.ID,
	).Scan(&i.UpdatedAt)
	return mapError(err)
}

func (r *PgImageRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM image_files WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
