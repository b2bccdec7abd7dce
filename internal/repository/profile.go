package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/abdul977/lodgebooker/internal/domain"
)

const profileColumns = `id, email, password_hash, full_name, phone, address, gender,
		date_of_birth, call_up_number, state_of_origin, lga, institution,
		emergency_contact_name, emergency_contact_phone,
		next_of_kin_name, next_of_kin_phone, role, status, created_at`

type ProfileRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProfileRepo(db *dbpg.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (` + profileColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Email, p.PasswordHash, p.FullName, p.Phone, p.Address, p.Gender,
		p.DateOfBirth, p.CallUpNumber, p.StateOfOrigin, p.LGA, p.Institution,
		p.EmergencyContactName, p.EmergencyContactPhone,
		p.NextOfKinName, p.NextOfKinPhone, p.Role, p.Status, p.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
			  FROM profiles
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return scanProfile(row)
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
			  FROM profiles
			  WHERE lower(email) = lower($1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get profile by email: %w", err)
	}

	return scanProfile(row)
}

// List returns profiles matching the search term (case-insensitive
// substring over name, email and phone) with limit/offset pagination. An
// empty term lists everyone.
func (r *ProfileRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
			  FROM profiles
			  WHERE ($1 = ''
			  		OR full_name ILIKE '%' || $1 || '%'
			  		OR email ILIKE '%' || $1 || '%'
			  		OR phone ILIKE '%' || $1 || '%')
			  ORDER BY full_name ASC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var res []*domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *ProfileRepository) UpdateStatus(ctx context.Context, id string, status domain.AccountStatus) error {
	return r.updateField(ctx, id, `UPDATE profiles SET status = $2 WHERE id = $1`, string(status))
}

func (r *ProfileRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	return r.updateField(ctx, id, `UPDATE profiles SET role = $2 WHERE id = $1`, string(role))
}

func (r *ProfileRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.updateField(ctx, id, `UPDATE profiles SET password_hash = $2 WHERE id = $1`, passwordHash)
}

func (r *ProfileRepository) updateField(ctx context.Context, id, query, value string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, value)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profile rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}

func (r *ProfileRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM profiles WHERE status <> 'deleted'`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan profile count: %w", err)
	}

	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.Phone, &p.Address, &p.Gender,
		&p.DateOfBirth, &p.CallUpNumber, &p.StateOfOrigin, &p.LGA, &p.Institution,
		&p.EmergencyContactName, &p.EmergencyContactPhone,
		&p.NextOfKinName, &p.NextOfKinPhone, &p.Role, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	return &p, nil
}
