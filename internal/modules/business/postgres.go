package business

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL business owner repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateOwner(ctx context.Context, o *Owner) error {
	query := `
		INSERT INTO business_owners (owner_id, business_name, business_description, address, logo_url, business_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		o.OwnerID, o.BusinessName, o.Description, o.Address, o.LogoURL, o.BusinessHours)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrAlreadyOnboarded
	}
	return err
}

func (r *postgresRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Owner, error) {
	o := &Owner{}
	var description, logoURL, businessHours sql.NullString
	query := `
		SELECT owner_id, business_name, business_description, address, logo_url, business_hours,
		       is_verified, registration_date, created_at
		FROM business_owners
		WHERE owner_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(
		&o.OwnerID,
		&o.BusinessName,
		&description,
		&o.Address,
		&logoURL,
		&businessHours,
		&o.IsVerified,
		&o.RegistrationDate,
		&o.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Description = description.String
	o.LogoURL = logoURL.String
	o.BusinessHours = businessHours.String
	return o, nil
}

func (r *postgresRepository) DeactivateCascade(ctx context.Context, ownerID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE business_owners SET is_verified = FALSE WHERE owner_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("deactivate business: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET is_active = FALSE WHERE id = $1`, ownerID); err != nil {
		return fmt.Errorf("deactivate linked user: %w", err)
	}

	return tx.Commit()
}
