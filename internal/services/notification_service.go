package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"supreme_fitness_backend/internal/models"
	"supreme_fitness_backend/internal/repositories"
	"supreme_fitness_backend/pkg/utils"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationService is the in-app outbox. Append is deliberately
// fire-and-forget: a failed write is logged and never aborts the operation
// that triggered it.
type NotificationService interface {
	Notify(userID, title, message, notificationType string)
	ListForUser(principal models.Principal) ([]models.Notification, error)
	MarkRead(principal models.Principal, notificationID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(nr repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: nr}
}

// Notify appends a notification row for the user. Best-effort only.
func (s *notificationService) Notify(userID, title, message, notificationType string) {
	notification := &models.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
	}
	if err := s.notificationRepo.CreateNotification(notification); err != nil {
		utils.LogError(err, "notification append failed for user "+userID)
	}
}

func (s *notificationService) ListForUser(principal models.Principal) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByUser(principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips the read flag only when the notification belongs to the
// caller; anything else is reported as not found.
func (s *notificationService) MarkRead(principal models.Principal, notificationID string) error {
	updated, err := s.notificationRepo.MarkRead(notificationID, principal.ID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if !updated {
		return ErrNotificationNotFound
	}
	return nil
}
