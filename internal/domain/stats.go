package domain

// AdminStats is the dashboard summary: registered accounts, bookings
// currently active and receipts awaiting a decision.
type AdminStats struct {
	TotalUsers      int `json:"total_users"`
	ActiveBookings  int `json:"active_bookings"`
	PendingPayments int `json:"pending_payments"`
}
