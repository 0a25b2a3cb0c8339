package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ArturFariaVieira/drivent-s4/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

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

// FindByUser returns the user's first booking with its room summary.
// A user is expected to hold at most one booking; first-match semantics
// keep any extra rows unreachable.
func (r *BookingRepository) FindByUser(ctx context.Context, userID int64) (*domain.BookingDetails, error) {
	query := `SELECT b.id, r.id, r.name, r.capacity, r.hotel_id
			  FROM bookings b
			  JOIN rooms r ON r.id = b.room_id
			  WHERE b.user_id = $1
			  ORDER BY b.id
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var d domain.BookingDetails
	if err = row.Scan(&d.ID, &d.Room.ID, &d.Room.Name, &d.Room.Capacity, &d.Room.HotelID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &d, nil
}

func (r *BookingRepository) FindRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	query := `SELECT id, name, capacity, hotel_id
			  FROM rooms
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	var room domain.Room
	if err = row.Scan(&room.ID, &room.Name, &room.Capacity, &room.HotelID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return &room, nil
}

// CountByRoom counts every booking in the room, regardless of who holds it.
func (r *BookingRepository) CountByRoom(ctx context.Context, roomID int64) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roomID)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

// Create inserts a booking with the capacity check inside the transaction:
// the room row is locked, so concurrent requests serialize on the count.
func (r *BookingRepository) Create(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	booked, capacity, err := lockRoomOccupancy(ctx, tx, roomID)
	if err != nil {
		return nil, err
	}

	if booked >= capacity {
		return nil, domain.ErrRoomFull
	}

	query := `INSERT INTO bookings (user_id, room_id, created_at, updated_at)
			  VALUES ($1, $2, now(), now())
			  RETURNING id, user_id, room_id, created_at, updated_at`

	var b domain.Booking
	if err = tx.QueryRowContext(ctx, query, userID, roomID).Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &b, nil
}

// UpdateRoom moves a booking under the same transactional capacity guard as
// Create. The count is raw: the caller's own occupancy of the target room is
// not excluded.
func (r *BookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	booked, capacity, err := lockRoomOccupancy(ctx, tx, roomID)
	if err != nil {
		return nil, err
	}

	if booked >= capacity {
		return nil, domain.ErrRoomFull
	}

	query := `UPDATE bookings
			  SET room_id = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING id, user_id, room_id, created_at, updated_at`

	var b domain.Booking
	if err = tx.QueryRowContext(ctx, query, bookingID, roomID).Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &b, nil
}

// OverbookedRooms reports rooms holding more bookings than their capacity.
func (r *BookingRepository) OverbookedRooms(ctx context.Context) ([]domain.RoomOccupancy, error) {
	query := `SELECT r.id, r.name, r.capacity, COUNT(b.id)
			  FROM rooms r
			  JOIN bookings b ON b.room_id = r.id
			  GROUP BY r.id, r.name, r.capacity
			  HAVING COUNT(b.id) > r.capacity`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list overbooked rooms: %w", err)
	}
	defer rows.Close()

	var res []domain.RoomOccupancy
	for rows.Next() {
		var o domain.RoomOccupancy
		if err = rows.Scan(&o.RoomID, &o.Name, &o.Capacity, &o.Booked); err != nil {
			return nil, fmt.Errorf("scan occupancy: %w", err)
		}
		res = append(res, o)
	}

	return res, rows.Err()
}

func lockRoomOccupancy(ctx context.Context, tx *sql.Tx, roomID int64) (booked, capacity int, err error) {
	capacityQuery := `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, capacityQuery, roomID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, domain.ErrRoomNotFound
		}
		return 0, 0, fmt.Errorf("get room capacity: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, roomID).Scan(&booked); err != nil {
		return 0, 0, fmt.Errorf("count bookings: %w", err)
	}

	return booked, capacity, nil
}
