package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rtaweb/backend/internal/model"
)

// LogoRepository persists client logo references.
type LogoRepository interface {
	List(ctx context.Context, opts model.LogoListOptions) ([]*model.ClientLogo, error)
	GetByID(ctx context.Context, id int64) (*model.ClientLogo, error)
	Create(ctx context.Context, logo *model.ClientLogo) error
	Update(ctx context.Context, logo *model.ClientLogo) error
	Delete(ctx context.Context, id int64) error
}

// PgLogoRepository is the PostgreSQL implementation of LogoRepository.
type PgLogoRepository struct {
	db DBTX
}

// NewPgLogoRepository creates a PgLogoRepository.
func NewPgLogoRepository(db DBTX) *PgLogoRepository {
	return &PgLogoRepository{db: db}
}

var _ LogoRepository = (*PgLogoRepository)(nil)

const logoColumns = `id, name, url, path, COALESCE(alt_text, ''), display_order, active, created_at, updated_at`

func scanLogo(row pgx.Row) (*model.ClientLogo, error) {
	var l model.ClientLogo
	if err := row.Scan(&l.ID, &l.Name, &l.URL, &l.Path, &l.AltText, &l.DisplayOrder, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PgLogoRepository) List(ctx context.Context, opts model.LogoListOptions) ([]*model.ClientLogo, error) {
	query := `SELECT ` + logoColumns + ` FROM client_logos`
	if opts.ActiveOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY display_order, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logos []*model.ClientLogo
	for rows.Next() {
		l, err := scanLogo(rows)
		if err != nil {
			return nil, err
		}
		logos = append(logos, l)
	}
	return logos, rows.Err()
}

func (r *PgLogoRepository) GetByID(ctx context.Context, id int64) (*model.ClientLogo, error) {
	l, err := scanLogo(r.db.QueryRow(ctx, `SELECT `+logoColumns+` FROM client_logos WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return l, nil
}

func (r *PgLogoRepository) Create(ctx context.Context, l *model.ClientLogo) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO client_logos (name, url, path, alt_text, display_order, active)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		 RETURNING id, created_at, updated_at`,
		l.Name, l.URL, l.Path, l.AltText, l.DisplayOrder, l.Active,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	return mapError(err)
}

func (r *PgLogoRepository) Update(ctx context.Context, l *model.ClientLogo) error {
	err := r.db.QueryRow(ctx,
		`UPDATE client_logos
		 SET name=$1, url=$2, path=$3, alt_text=NULLIF($4, ''), display_order=$5, active=$6, updated_at=NOW()
		 WHERE id=$7
		 RETURNING updated_at`,
		l.Name, l.URL, l.Path, l.AltText, l.DisplayOrder, l.Active, l.ID,
	).Scan(&l.UpdatedAt)
	return mapError(err)
}

func (r *PgLogoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM client_logos WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
