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

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	query := `SELECT id, name, description, capacity, price_per_night, amenities, is_available, created_at
			  FROM rooms
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	var room domain.Room
	if err = row.Scan(
		&room.ID, &room.Name, &room.Description, &room.Capacity,
		&room.PricePerNight, pq.Array(&room.Amenities), &room.IsAvailable, &room.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return &room, nil
}

func (r *RoomRepository) ListAvailable(ctx context.Context) ([]*domain.Room, error) {
	query := `SELECT id, name, description, capacity, price_per_night, amenities, is_available, created_at
			  FROM rooms
			  WHERE is_available
			  ORDER BY price_per_night ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var res []*domain.Room
	for rows.Next() {
		var room domain.Room
		if err = rows.Scan(
			&room.ID, &room.Name, &room.Description, &room.Capacity,
			&room.PricePerNight, pq.Array(&room.Amenities), &room.IsAvailable, &room.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		res = append(res, &room)
	}

	return res, rows.Err()
}
