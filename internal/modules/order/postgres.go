package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) GetBagSummary(ctx context.Context, bagID uuid.UUID) (*BagSummary, error) {
	s := &BagSummary{}
	err := r.db.QueryRowContext(ctx,
		`SELECT title, discount_price, is_active FROM surprise_bags WHERE id = $1`,
		bagID).Scan(&s.Title, &s.DiscountPrice, &s.Active)
	if err == sql.ErrNoRows {
		return nil, ErrBagNotFound
	}
	if err != nil {
		return nil, err
	}
	if !s.Active {
		return nil, ErrBagNotFound
	}
	return s, nil
}

// CreateOrder runs the reservation as one transaction. The bag row is locked
// with FOR UPDATE so the capacity check and increment cannot race: of two
// concurrent orders against the last unit, exactly one commits.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var available, sold int
	err = tx.QueryRowContext(ctx, `
		SELECT quantity_available, quantity_sold
		FROM surprise_bags
		WHERE id = $1 AND is_active = TRUE
		FOR UPDATE`, o.BagID).Scan(&available, &sold)
	if err == sql.ErrNoRows {
		return ErrBagNotFound
	}
	if err != nil {
		return fmt.Errorf("lock bag: %w", err)
	}
	if sold >= available {
		return ErrSoldOut
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE surprise_bags SET quantity_sold = quantity_sold + 1 WHERE id = $1`,
		o.BagID); err != nil {
		return fmt.Errorf("increment quantity_sold: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (order_id, customer_id, bag_id, total_price, status, pickup_code)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at`,
		o.OrderID, o.CustomerID, o.BagID, o.TotalPrice, o.Status, o.PickupCode).
		Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "orders_pickup_code_key" {
			return ErrPickupCodeTaken
		}
		return fmt.Errorf("insert order: %w", err)
	}

	return tx.Commit()
}

func (r *postgresRepo) GetOrderForCustomer(ctx context.Context, orderID string, customerID uuid.UUID) (*Order, error) {
	uid, err := uuid.Parse(orderID)
	if err != nil {
		return nil, ErrNotFound
	}

	o := &Order{}
	var rating sql.NullInt64
	var feedback sql.NullString
	err = r.db.QueryRowContext(ctx, `
		SELECT order_id, customer_id, bag_id, total_price, status, pickup_code,
		       rating, feedback, created_at, updated_at
		FROM orders
		WHERE order_id = $1 AND customer_id = $2`, uid, customerID).Scan(
		&o.OrderID, &o.CustomerID, &o.BagID, &o.TotalPrice, &o.Status, &o.PickupCode,
		&rating, &feedback, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if rating.Valid {
		v := int(rating.Int64)
		o.Rating = &v
	}
	if feedback.Valid {
		v := feedback.String
		o.Feedback = &v
	}
	return o, nil
}

// UpdateStatus is a compare-and-swap: the write only lands while the order is
// still in the status the transition was validated against. A concurrent
// transition (a cancel committing between the read and this write) leaves
// zero rows; orders are never hard-deleted, so zero rows means the status
// moved, not that the order vanished.
func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to OrderStatus, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE order_id = $3 AND status = $4`,
		to, updatedAt, orderID, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: order is no longer %s", ErrInvalidTransition, from)
	}
	return nil
}

// Cancel sets a pending order to cancelled and gives the unit back to the
// listing in the same transaction. The status guard in the WHERE clause makes
// the decrement happen at most once even under concurrent cancels.
func (r *postgresRepo) Cancel(ctx context.Context, orderID, customerID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var bagID uuid.UUID
	err = tx.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = now()
		WHERE order_id = $2 AND customer_id = $3 AND status = $4
		RETURNING bag_id`,
		StatusCancelled, orderID, customerID, StatusPending).Scan(&bagID)
	if err == sql.ErrNoRows {
		return ErrNotPending
	}
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE surprise_bags SET quantity_sold = quantity_sold - 1 WHERE id = $1 AND quantity_sold > 0`,
		bagID); err != nil {
		return fmt.Errorf("restore capacity: %w", err)
	}

	return tx.Commit()
}

func (r *postgresRepo) SetRating(ctx context.Context, orderID uuid.UUID, rating int, feedback string) error {
	var fb interface{}
	if feedback != "" {
		fb = feedback
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET rating = $1, feedback = $2, updated_at = now() WHERE order_id = $3`,
		rating, fb, orderID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
