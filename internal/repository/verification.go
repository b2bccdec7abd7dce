package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/abdul977/lodgebooker/internal/domain"
)

// VerificationRepository has no retry strategy: both operations are
// single transactions around row locks, and replaying a half-decided
// approval is worse than surfacing the error.
type VerificationRepository struct {
	db *dbpg.DB
}

func NewVerificationRepo(db *dbpg.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Approve appends an approved decision and flips the booking to
// paid/active in one transaction. The receipt row is locked first so two
// concurrent decisions on the same receipt serialize instead of both
// landing in the log.
func (r *VerificationRepository) Approve(ctx context.Context, d *domain.VerificationDecision) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	bookingID, err := r.lockReceipt(ctx, tx, d.PaymentReceiptID)
	if err != nil {
		return err
	}

	if err = r.insertDecision(ctx, tx, d); err != nil {
		return err
	}

	update := `UPDATE bookings
			   SET payment_status = $2, status = $3, updated_at = now()
			   WHERE id = $1`
	res, err := tx.ExecContext(ctx, update, bookingID, domain.PaymentStatusPaid, domain.BookingStatusActive)
	if err != nil {
		return fmt.Errorf("update booking on approval: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return tx.Commit()
}

// Reject appends a rejected decision. The booking is deliberately left
// untouched so the guest can submit a fresh receipt for it.
func (r *VerificationRepository) Reject(ctx context.Context, d *domain.VerificationDecision) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = r.lockReceipt(ctx, tx, d.PaymentReceiptID); err != nil {
		return err
	}

	if err = r.insertDecision(ctx, tx, d); err != nil {
		return err
	}

	return tx.Commit()
}

// lockReceipt takes the per-receipt lock and verifies the decision chain
// has no terminal entry yet.
func (r *VerificationRepository) lockReceipt(ctx context.Context, tx *sql.Tx, receiptID string) (string, error) {
	var bookingID string
	lock := `SELECT booking_id FROM payment_receipts WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, lock, receiptID).Scan(&bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrReceiptNotFound
		}
		return "", fmt.Errorf("lock receipt: %w", err)
	}

	var latest string
	latestQuery := `SELECT status FROM payment_verifications
					WHERE payment_receipt_id = $1
					ORDER BY created_at DESC
					LIMIT 1`
	err := tx.QueryRowContext(ctx, latestQuery, receiptID).Scan(&latest)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// no decisions yet, receipt counts as pending
	case err != nil:
		return "", fmt.Errorf("check latest decision: %w", err)
	case domain.DecisionStatus(latest).Terminal():
		return "", domain.ErrReceiptAlreadyDecided
	}

	return bookingID, nil
}

func (r *VerificationRepository) insertDecision(ctx context.Context, tx *sql.Tx, d *domain.VerificationDecision) error {
	query := `INSERT INTO payment_verifications
				(id, payment_receipt_id, status, verification_date, rejection_reason, decided_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := tx.ExecContext(
		ctx, query,
		d.ID, d.PaymentReceiptID, d.Status, d.VerificationDate,
		d.RejectionReason, d.DecidedBy, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}

	return nil
}
