package repositories

import (
	"database/sql"
	"fmt"

	"supreme_fitness_backend/internal/models"
)

// AnalyticsRepository computes the read-only dashboard aggregates.
type AnalyticsRepository interface {
	GetDashboardStats() (*models.DashboardStats, error)
}

type analyticsRepository struct {
	db *sql.DB
}

// NewAnalyticsRepository creates a new instance of AnalyticsRepository.
func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// GetDashboardStats gathers all dashboard counters in one round trip.
func (r *analyticsRepository) GetDashboardStats() (*models.DashboardStats, error) {
	query := `SELECT
	    (SELECT COUNT(*) FROM users WHERE role = $1 AND is_active),
	    (SELECT COUNT(*) FROM users WHERE role = $2 AND is_active),
	    (SELECT COUNT(*) FROM gym_classes WHERE status = $3),
	    (SELECT COUNT(*) FROM bookings WHERE status = $4),
	    (SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $5),
	    (SELECT COUNT(*) FROM users WHERE NOT is_approved)`

	stats := &models.DashboardStats{}
	err := r.db.QueryRow(query,
		models.RoleMember, models.RoleTrainer,
		models.ClassStatusActive, models.BookingStatusBooked,
		models.PaymentStatusCompleted,
	).Scan(
		&stats.TotalMembers, &stats.TotalTrainers, &stats.TotalClasses,
		&stats.TotalBookings, &stats.TotalRevenue, &stats.PendingApprovals,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: querying dashboard stats: %v", ErrDatabaseError, err)
	}
	return stats, nil
}
