package models

// DashboardStats is the admin dashboard aggregate view.
type DashboardStats struct {
	TotalMembers     int     `json:"total_members"`
	TotalTrainers    int     `json:"total_trainers"`
	TotalClasses     int     `json:"total_classes"`
	TotalBookings    int     `json:"total_bookings"`
	TotalRevenue     float64 `json:"total_revenue"`
	PendingApprovals int     `json:"pending_approvals"`
}
