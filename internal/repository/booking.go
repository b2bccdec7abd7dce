package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/abdul977/lodgebooker/internal/domain"
)

const bookingColumns = `id, user_id, room_id, check_in, check_out, status, payment_status,
		total_price, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.UserID, b.RoomID, b.CheckIn, b.CheckOut,
		b.Status, b.PaymentStatus, b.TotalPrice, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = scanBooking(row, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

// ListAll returns bookings for the admin management screen. Empty filter
// values match everything.
func (r *BookingRepository) ListAll(ctx context.Context, status, paymentStatus string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE ($1 = '' OR status = $1)
			    AND ($2 = '' OR payment_status = $2)
			  ORDER BY created_at DESC`

	return r.list(ctx, query, status, paymentStatus)
}

func (r *BookingRepository) CountActive(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE status = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, domain.BookingStatusActive)
	if err != nil {
		return 0, fmt.Errorf("count active bookings: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan booking count: %w", err)
	}

	return n, nil
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows, &b); err != nil {
			return nil, err
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func scanBooking(row rowScanner, b *domain.Booking) error {
	err := row.Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CheckIn, &b.CheckOut,
		&b.Status, &b.PaymentStatus, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scan booking: %w", err)
	}

	return nil
}
