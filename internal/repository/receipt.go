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

const receiptColumns = `id, user_id, booking_id, amount, transaction_date,
		transaction_reference, bank_name, account_number, receipt_url, object_key, created_at`

type ReceiptRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReceiptRepo(db *dbpg.DB) *ReceiptRepository {
	return &ReceiptRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReceiptRepository) Create(ctx context.Context, receipt *domain.PaymentReceipt) error {
	query := `INSERT INTO payment_receipts (` + receiptColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		receipt.ID, receipt.UserID, receipt.BookingID, receipt.Amount, receipt.TransactionDate,
		receipt.TransactionReference, receipt.BankName, receipt.AccountNumber,
		receipt.ReceiptURL, receipt.ObjectKey, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment receipt: %w", err)
	}

	return nil
}

func (r *ReceiptRepository) GetByID(ctx context.Context, id string) (*domain.PaymentReceipt, error) {
	query := `SELECT ` + receiptColumns + `
			  FROM payment_receipts
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment receipt: %w", err)
	}

	var receipt domain.PaymentReceipt
	if err = row.Scan(
		&receipt.ID, &receipt.UserID, &receipt.BookingID, &receipt.Amount, &receipt.TransactionDate,
		&receipt.TransactionReference, &receipt.BankName, &receipt.AccountNumber,
		&receipt.ReceiptURL, &receipt.ObjectKey, &receipt.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReceiptNotFound
		}
		return nil, fmt.Errorf("scan payment receipt: %w", err)
	}

	return &receipt, nil
}

// ListPending returns the admin verification queue: receipts joined with
// the submitter's profile, keeping only receipts whose decision chain is
// empty or whose latest decision is still pending.
func (r *ReceiptRepository) ListPending(ctx context.Context) ([]*domain.PendingReceipt, error) {
	query := `
		SELECT r.id, r.user_id, r.booking_id, r.amount, r.transaction_date,
		       r.transaction_reference, r.bank_name, r.account_number,
		       r.receipt_url, r.object_key, r.created_at,
		       p.full_name, p.email
		FROM payment_receipts r
		JOIN profiles p ON p.id = r.user_id
		LEFT JOIN LATERAL (
			SELECT v.status
			FROM payment_verifications v
			WHERE v.payment_receipt_id = r.id
			ORDER BY v.created_at DESC
			LIMIT 1
		) d ON TRUE
		WHERE d.status IS NULL OR d.status = 'pending'
		ORDER BY r.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list pending receipts: %w", err)
	}
	defer rows.Close()

	var res []*domain.PendingReceipt
	for rows.Next() {
		var pr domain.PendingReceipt
		if err = rows.Scan(
			&pr.ID, &pr.UserID, &pr.BookingID, &pr.Amount, &pr.TransactionDate,
			&pr.TransactionReference, &pr.BankName, &pr.AccountNumber,
			&pr.ReceiptURL, &pr.ObjectKey, &pr.CreatedAt,
			&pr.FullName, &pr.Email,
		); err != nil {
			return nil, fmt.Errorf("scan pending receipt: %w", err)
		}
		res = append(res, &pr)
	}

	return res, rows.Err()
}

func (r *ReceiptRepository) CountPending(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM payment_receipts r
		LEFT JOIN LATERAL (
			SELECT v.status
			FROM payment_verifications v
			WHERE v.payment_receipt_id = r.id
			ORDER BY v.created_at DESC
			LIMIT 1
		) d ON TRUE
		WHERE d.status IS NULL OR d.status = 'pending'`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return 0, fmt.Errorf("count pending receipts: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan pending count: %w", err)
	}

	return n, nil
}
