package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rtaweb/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact submissions.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, sub *model.ContactSubmission) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
	GetByID(ctx context.Context, id int64) (*model.ContactSubmission, error)
	Update(ctx context.Context, sub *model.ContactSubmission) error
	Delete(ctx context.Context, id int64) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	db DBTX
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(db DBTX) *PgContactRepository {
	return &PgContactRepository{db: db}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, name, email, COALESCE(phone, ''), COALESCE(company, ''), COALESCE(service, ''),
	message, newsletter, status, source, created_at, updated_at`

func scanContact(row pgx.Row) (*model.ContactSubmission, error) {
	var m model.ContactSubmission
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Company, &m.Service,
		&m.Message, &m.Newsletter, &m.Status, &m.Source, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Save inserts a new contact_submissions row and populates sub.ID and timestamps
// from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, phone, company, service, message, newsletter, status, source)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		sub.Name, sub.Email, sub.Phone, sub.Company, sub.Service, sub.Message, sub.Newsletter, sub.Status, sub.Source,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	return mapError(err)
}

// List returns submissions filtered by status, newest first.
// Status "" or "all" returns all submissions.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	var args []any
	where := ""
	status := strings.TrimSpace(opts.Status)
	if status != "" && status != "all" {
		args = append(args, status)
		where = "WHERE status = $1 "
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+contactColumns+` FROM contact_submissions `+where+`ORDER BY created_at DESC, id DESC`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, m)
	}
	return subs, rows.Err()
}

// GetByID returns a single submission or ErrNotFound.
func (r *PgContactRepository) GetByID(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	m, err := scanContact(r.db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contact_submissions WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return m, nil
}

// Update writes back every mutable column and refreshes updated_at.
func (r *PgContactRepository) Update(ctx context.Context, sub *model.ContactSubmission) error {
	err := r.db.QueryRow(ctx,
		`UPDATE contact_submissions
		 SET name=$1, email=$2, phone=NULLIF($3, ''), company=NULLIF($4, ''), service=NULLIF($5, ''),
		     message=$6, status=$7, updated_at=NOW()
		 WHERE id=$8
		 RETURNING updated_at`,
		sub.Name, sub.Email, sub.Phone, sub.Company, sub.Service, sub.Message, sub.Status, sub.ID,
	).Scan(&sub.UpdatedAt)
	return mapError(err)
}

// Delete removes a submission permanently.
func (r *PgContactRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_submissions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
