package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL notification repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, n *Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications
		  (notification_id, user_id, type, title, message, related_entity_type, related_entity_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		n.NotificationID, n.UserID, n.Type, n.Title, n.Message, n.RelatedEntity.Type, n.RelatedEntity.ID)
	return err
}

func (r *postgresRepo) CreateBatch(ctx context.Context, ns []*Notification) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO notifications
		  (notification_id, user_id, type, title, message, related_entity_type, related_entity_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, n := range ns {
		if _, err := stmt.ExecContext(ctx,
			n.NotificationID, n.UserID, n.Type, n.Title, n.Message, n.RelatedEntity.Type, n.RelatedEntity.ID); err != nil {
			return fmt.Errorf("insert notification: %w", err)
		}
	}
	return tx.Commit()
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]*Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT notification_id, user_id, type, title, message, related_entity_type, related_entity_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`, userID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ns []*Notification
	for rows.Next() {
		n := &Notification{}
		if err := rows.Scan(
			&n.NotificationID, &n.UserID, &n.Type, &n.Title, &n.Message,
			&n.RelatedEntity.Type, &n.RelatedEntity.ID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	return ns, rows.Err()
}

func (r *postgresRepo) MarkRead(ctx context.Context, id string, userID uuid.UUID) error {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND user_id = $2`,
		parsedID, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postgresRepo) Delete(ctx context.Context, id string, userID uuid.UUID) error {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE notification_id = $1 AND user_id = $2`,
		parsedID, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
