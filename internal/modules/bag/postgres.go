package bag

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL surprise bag repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const bagColumns = `id, business_id, title, description, contents,
	original_price, discount_price, quantity_available, quantity_sold,
	pickup_start, pickup_end, image_urls, is_active, created_at`

func (r *postgresRepo) Create(ctx context.Context, b *SurpriseBag) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO surprise_bags
		  (id, business_id, title, description, contents, original_price, discount_price,
		   quantity_available, quantity_sold, pickup_start, pickup_end, image_urls, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		b.ID, b.BusinessID, b.Title, b.Description, nullableJSON(b.Contents),
		b.OriginalPrice, b.DiscountPrice, b.QuantityAvailable, b.QuantitySold,
		b.PickupStart, b.PickupEnd, nullableJSON(b.ImageURLs), b.IsActive)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*SurpriseBag, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.scanBag(r.db.QueryRowContext(ctx,
		`SELECT `+bagColumns+` FROM surprise_bags WHERE id = $1`, uid))
}

func (r *postgresRepo) GetByIDForBusiness(ctx context.Context, id string, businessID uuid.UUID) (*SurpriseBag, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.scanBag(r.db.QueryRowContext(ctx,
		`SELECT `+bagColumns+` FROM surprise_bags WHERE id = $1 AND business_id = $2`,
		uid, businessID))
}

func (r *postgresRepo) List(ctx context.Context, skip, limit int) ([]*SurpriseBag, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+bagColumns+`
		FROM surprise_bags
		WHERE is_active = TRUE
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bags []*SurpriseBag
	for rows.Next() {
		b, err := scanBagRow(rows)
		if err != nil {
			return nil, err
		}
		bags = append(bags, b)
	}
	return bags, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, b *SurpriseBag) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE surprise_bags
		SET title=$1, description=$2, contents=$3, original_price=$4, discount_price=$5,
		    quantity_available=$6, pickup_start=$7, pickup_end=$8, image_urls=$9
		WHERE id=$10`,
		b.Title, b.Description, nullableJSON(b.Contents), b.OriginalPrice, b.DiscountPrice,
		b.QuantityAvailable, b.PickupStart, b.PickupEnd, nullableJSON(b.ImageURLs), b.ID)
	return err
}

// Deactivate runs the guard and the flag write in one transaction. The bag
// row is locked FOR UPDATE, which serializes against order placement (the
// reservation transaction locks the same row), so no order can slip in
// between the active-order count and the soft delete.
func (r *postgresRepo) Deactivate(ctx context.Context, id string, businessID uuid.UUID) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var isActive bool
	err = tx.QueryRowContext(ctx, `
		SELECT is_active FROM surprise_bags
		WHERE id = $1 AND business_id = $2
		FOR UPDATE`, uid, businessID).Scan(&isActive)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var active int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE bag_id = $1 AND status IN ('pending', 'confirmed')`,
		uid).Scan(&active)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrActiveOrders
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE surprise_bags SET is_active = FALSE WHERE id = $1`, uid); err != nil {
		return err
	}
	return tx.Commit()
}

// ── helpers ──────────────────────────────────────────────────────────────────

type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *postgresRepo) scanBag(row *sql.Row) (*SurpriseBag, error) {
	b, err := scanBagRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return b, err
}

func scanBagRow(row scanner) (*SurpriseBag, error) {
	b := &SurpriseBag{}
	var contents, imageURLs []byte
	err := row.Scan(
		&b.ID, &b.BusinessID, &b.Title, &b.Description, &contents,
		&b.OriginalPrice, &b.DiscountPrice, &b.QuantityAvailable, &b.QuantitySold,
		&b.PickupStart, &b.PickupEnd, &imageURLs, &b.IsActive, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	b.Contents = contents
	b.ImageURLs = imageURLs
	return b, nil
}

func nullableJSON(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}
