package repository

import (
	"context"
	"database/sql"

	"github.com/pawcare/pet-care-booking/internal/model"
)

// NotificationRepo provides access to the notifications table.
// Notifications are append-only; the only mutation is flipping is_read.
// Rows with a NULL user_id address the admin audience.
type NotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepo returns a NotificationRepo bound to the given database.
func NewNotificationRepo(db *sql.DB) *NotificationRepo { return &NotificationRepo{db: db} }

// Create appends one notification with is_read = 0.
func (r *NotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	var userID any
	if n.UserID != nil {
		userID = *n.UserID
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (type, message, booking_id, user_id) VALUES (?, ?, ?, ?)`,
		n.Type, n.Message, n.BookingID, userID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = uint64(id)
	return nil
}

func (r *NotificationRepo) list(ctx context.Context, q string, args ...any) ([]model.Notification, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Notification, 0)
	for rows.Next() {
		var (
			n      model.Notification
			userID sql.NullInt64
		)
		if err := rows.Scan(&n.ID, &n.Type, &n.Message, &n.BookingID, &userID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		if userID.Valid {
			id := uint64(userID.Int64)
			n.UserID = &id
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

const notificationColumns = `id, type, message, booking_id, user_id, is_read, created_at`

// ListAdmin returns the admin audience's notifications, newest first.
func (r *NotificationRepo) ListAdmin(ctx context.Context) ([]model.Notification, error) {
	return r.list(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id IS NULL ORDER BY created_at DESC`)
}

// ListByUser returns one user's notifications, newest first.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Notification, error) {
	return r.list(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE user_id = ? ORDER BY created_at DESC`,
		userID)
}

// UnreadCountAdmin counts unread admin notifications.
func (r *NotificationRepo) UnreadCountAdmin(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id IS NULL AND is_read = 0`).Scan(&n)
	return n, err
}

// UnreadCountForUser counts one user's unread notifications.
func (r *NotificationRepo) UnreadCountForUser(ctx context.Context, userID uint64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = 0`, userID).Scan(&n)
	return n, err
}

// MarkRead flips a single notification to read, scoped to the caller's
// audience: customers reach only their own rows, admins additionally
// the NULL-user feed. Reports false when no row is visible to the
// caller, so a foreign notification looks the same as a missing one.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID uint64, admin bool) (bool, error) {
	scope := `user_id = ?`
	if admin {
		scope = `(user_id IS NULL OR user_id = ?)`
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE id = ? AND `+scope, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	// Already-read rows report zero affected; treat visible rows as ok.
	var exists int
	err = r.db.QueryRowContext(ctx,
		`SELECT 1 FROM notifications WHERE id = ? AND `+scope, id, userID).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

// MarkAllAdminRead flips every unread admin notification.
func (r *NotificationRepo) MarkAllAdminRead(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE user_id IS NULL AND is_read = 0`)
	return err
}

// MarkAllReadForUser flips every unread notification of one user.
func (r *NotificationRepo) MarkAllReadForUser(ctx context.Context, userID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE user_id = ? AND is_read = 0`, userID)
	return err
}
