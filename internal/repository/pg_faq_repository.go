package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rtaweb/backend/internal/model"
)

const faqColumns = `id, question, answer, category, display_order, active, created_at, updated_at`

// PgFAQRepository は FAQRepository の PostgreSQL 実装
type PgFAQRepository struct {
	db DBTX
}

// NewPgFAQRepository は PgFAQRepository を生成する
func NewPgFAQRepository(db DBTX) *PgFAQRepository {
	return &PgFAQRepository{db: db}
}

var _ FAQRepository = (*PgFAQRepository)(nil)

func scanFAQ(row pgx.Row) (*model.FAQ, error) {
	var f model.FAQ
	if err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.DisplayOrder, &f.Active, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// List は display_order 昇順で FAQ を返す
func (r *PgFAQRepository) List(ctx context.Context, opts model.FAQListOptions) ([]*model.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs`
	if opts.ActiveOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY display_order, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []*model.FAQ
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

// GetByID は ID で FAQ を取得する
func (r *PgFAQRepository) GetByID(ctx context.Context, id int64) (*model.FAQ, error) {
	f, err := scanFAQ(r.db.QueryRow(ctx, `SELECT `+faqColumns+` FROM faqs WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return f, nil
}

// Create は FAQ を作成する
func (r *PgFAQRepository) Create(ctx context.Context, f *model.FAQ) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO faqs (question, answer, category, display_order, active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		f.Question, f.Answer, f.Category, f.DisplayOrder, f.Active,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	return mapError(err)
}

// Update は FAQ を更新する
func (r *PgFAQRepository) Update(ctx context.Context, f *model.FAQ) error {
	err := r.db.QueryRow(ctx,
		`UPDATE faqs
		 SET question=$1, answer=$2, category=$3, display_order=$4, active=$5, updated_at=NOW()
		 WHERE id=$6
		 RETURNING updated_at`,
		f.Question, f.Answer, f.Category, f.DisplayOrder, f.Active, f.ID,
	).Scan(&f.UpdatedAt)
	return mapError(err)
}

// Delete は FAQ を削除する
func (r *PgFAQRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM faqs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
