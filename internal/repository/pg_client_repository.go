package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rtaweb/backend/internal/model"
)

const clientColumns = `id, serial_number, company_name, security_type, isin_code, active, created_at, updated_at`

// PgClientRepository は ClientRepository の PostgreSQL 実装
type PgClientRepository struct {
	db DBTX
}

// NewPgClientRepository は PgClientRepository を生成する
func NewPgClientRepository(db DBTX) *PgClientRepository {
	return &PgClientRepository{db: db}
}

var _ ClientRepository = (*PgClientRepository)(nil)

func scanClient(row pgx.Row) (*model.Client, error) {
	var c model.Client
	if err := row.Scan(&c.ID, &c.SerialNumber, &c.CompanyName, &c.SecurityType, &c.ISINCode, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all clients, newest id first.
func (r *PgClientRepository) List(ctx context.Context) ([]*model.Client, error) {
	rows, err := r.db.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*model.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// GetByID は ID でクライアントを取得する
func (r *PgClientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	c, err := scanClient(r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

// Create inserts a client. The id comes from the identity column, so concurrent
// creates never collide.
func (r *PgClientRepository) Create(ctx context.Context, c *model.Client) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO clients (serial_number, company_name, security_type, isin_code, active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.SerialNumber, c.CompanyName, c.SecurityType, c.ISINCode, c.Active,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return mapError(err)
}

// Update はクライアントの全フィールドを書き戻し updated_at を更新する
func (r *PgClientRepository) Update(ctx context.Context, c *model.Client) error {
	err := r.db.QueryRow(ctx,
		`UPDATE clients
		 SET serial_number=$1, company_name=$2, security_type=$3, isin_code=$4, active=$5, updated_at=NOW()
		 WHERE id=$6
		 RETURNING updated_at`,
		c.SerialNumber, c.CompanyName, c.SecurityType, c.ISINCode, c.Active, c.ID,
	).Scan(&c.UpdatedAt)
	return mapError(err)
}

// Delete はクライアントを削除する
func (r *PgClientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
