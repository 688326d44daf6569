package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scolaris/scolaris/internal/app/models"
)

// Notification error types
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a notification. For rows carrying a trigger date (daily
// reminders) the partial unique index on (related_entity_id,
// recipient_user_id, category, trigger_date) deduplicates re-runs: the
// insert is a no-op then and written reports false.
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) (written bool, err error) {
	query := `
		INSERT INTO notifications
			(recipient_user_id, title, message, category, related_entity_id, related_entity_kind, link, trigger_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT DO NOTHING
		RETURNING id, created_at
	`

	err = r.db.QueryRow(ctx, query,
		n.RecipientUserID, n.Title, n.Message, n.Category,
		n.RelatedEntityID, n.RelatedEntityKind, n.Link, n.TriggerDate,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict: an identical reminder was already written today
			return false, nil
		}
		return false, fmt.Errorf("error creating notification: %w", err)
	}
	return true, nil
}

const notificationColumns = `id, recipient_user_id, title, message, category, related_entity_id, related_entity_kind, read, link, trigger_date, created_at`

func scanNotification(row pgx.Row) (*models.Notification, error) {
	var n models.Notification
	err := row.Scan(
		&n.ID,
		&n.RecipientUserID,
		&n.Title,
		&n.Message,
		&n.Category,
		&n.RelatedEntityID,
		&n.RelatedEntityKind,
		&n.Read,
		&n.Link,
		&n.TriggerDate,
		&n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("error retrieving notification: %w", err)
	}
	return &n, nil
}

// ListByRecipient retrieves a page of the user's notifications, most
// recent first
func (r *NotificationRepository) ListByRecipient(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Notification, error) {
	query := `SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`

	rows, err := r.db.Query(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// CountByRecipient returns the user's total notification count
func (r *NotificationRepository) CountByRecipient(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting notifications: %w", err)
	}
	return count, nil
}

// CountUnread returns the user's unread notification count
func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_user_id = $1 AND read = FALSE`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead flips one notification to read; only the owner's rows match
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1 AND recipient_user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead flips all of the user's notifications to read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE recipient_user_id = $1 AND read = FALSE`, userID)
	if err != nil {
		return 0, fmt.Errorf("error marking notifications read: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete removes one notification; only the owner's rows match
func (r *NotificationRepository) Delete(ctx context.Context, id, userID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND recipient_user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting notification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
