package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"supreme_fitness_backend/internal/models"
)

// NotificationRepository defines the interface for the notification outbox.
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	ListNotificationsByUser(userID string) ([]models.Notification, error)
	MarkRead(notificationID, userID string) (bool, error)
}

type notificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(notification *models.Notification) error {
	query := `INSERT INTO notifications (id, user_id, title, message, type, is_read, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	notification.CreatedAt = time.Now()

	_, err := r.db.Exec(query,
		notification.ID, notification.UserID, notification.Title,
		notification.Message, notification.Type, notification.IsRead,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: creating notification: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *notificationRepository) ListNotificationsByUser(userID string) ([]models.Notification, error) {
	query := `SELECT id, user_id, title, message, type, is_read, created_at
	          FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying notifications for user %s: %v", ErrDatabaseError, userID, err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		notification := models.Notification{}
		err := rows.Scan(&notification.ID, &notification.UserID, &notification.Title,
			&notification.Message, &notification.Type, &notification.IsRead,
			&notification.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning notification: %v", ErrDatabaseError, err)
		}
		notifications = append(notifications, notification)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating notification rows: %v", ErrDatabaseError, err)
	}
	return notifications, nil
}

// MarkRead flips is_read, but only when the notification belongs to the
// caller. A false result means no such notification exists for this user.
func (r *notificationRepository) MarkRead(notificationID, userID string) (bool, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, notificationID, userID)
	if err != nil {
		return false, fmt.Errorf("%w: marking notification %s read: %v", ErrDatabaseError, notificationID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}
