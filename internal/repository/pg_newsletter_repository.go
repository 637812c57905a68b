package repository

import (
	"context"

	"github.com/rtaweb/backend/internal/model"
)

// NewsletterRepository persists newsletter subscriptions.
type NewsletterRepository interface {
	// Create returns ErrDuplicate when the email is already subscribed.
	Create(ctx context.Context, sub *model.NewsletterSubscriber) error
	List(ctx context.Context) ([]*model.NewsletterSubscriber, error)
}

// PgNewsletterRepository is the PostgreSQL implementation of NewsletterRepository.
// Uniqueness of email is enforced by the table's UNIQUE constraint.
type PgNewsletterRepository struct {
	db DBTX
}

// NewPgNewsletterRepository creates a PgNewsletterRepository.
func NewPgNewsletterRepository(db DBTX) *PgNewsletterRepository {
	return &PgNewsletterRepository{db: db}
}

var _ NewsletterRepository = (*PgNewsletterRepository)(nil)

func (r *PgNewsletterRepository) Create(ctx context.Context, sub *model.NewsletterSubscriber) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO newsletter_subscribers (email, source)
		 VALUES ($1, $2)
		 RETURNING id, subscribed_at`,
		sub.Email, sub.Source,
	).Scan(&sub.ID, &sub.SubscribedAt)
	return mapError(err)
}

func (r *PgNewsletterRepository) List(ctx context.Context) ([]*model.NewsletterSubscriber, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, email, source, subscribed_at FROM newsletter_subscribers ORDER BY subscribed_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.NewsletterSubscriber
	for rows.Next() {
		var s model.NewsletterSubscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Source, &s.SubscribedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
