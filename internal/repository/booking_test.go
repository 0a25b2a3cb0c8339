package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ArturFariaVieira/drivent-s4/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func setupBookingRepo(t *testing.T) (sqlmock.Sqlmock, *BookingRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewBookingRepo(&dbpg.DB{Master: db})
	return mock, repo
}

func TestBookingRepository_FindByUser_Success(t *testing.T) {
	mock, repo := setupBookingRepo(t)

	rows := sqlmock.NewRows([]string{"id", "id", "name", "capacity", "hotel_id"}).
		AddRow(5, 3, "101", 2, 7)
	mock.ExpectQuery(`SELECT b.id, r.id, r.name, r.capacity, r.hotel_id`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	details, err := repo.FindByUser(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(5), details.ID)
	assert.Equal(t, int64(3), details.Room.ID)
	assert.Equal(t, "101", details.Room.Name)
	assert.Equal(t, 2, details.Room.Capacity)
	assert.Equal(t, int64(7), details.Room.HotelID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindByUser_NotFound(t *testing.T) {
	mock, repo := setupBookingRepo(t)

	mock.ExpectQuery(`SELECT b.id, r.id, r.name, r.capacity, r.hotel_id`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id", "name", "capacity", "hotel_id"}))

	details, err := repo.FindByUser(context.Background(), 1)

	assert.Nil(t, details)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_FindRoom_Success(t *testing.T) {
	mock, repo := setupBookingRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "capacity", "hotel_id"}).
		AddRow(3, "101", 2, 7)
	mock.ExpectQuery(`SELECT id, name, capacity, hotel_id`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	room, err := repo.FindRoom(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), room.ID)
	assert.Equal(t, 2, room.Capacity)
}

func TestBookingRepository_FindRoom_NotFound(t *testing.T) {
	mock, repo := setupBookingRepo(t)

	mock.ExpectQuery(`SELECT id, name, capacity, hotel_id`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity", "hotel_id"}))

	room, err := repo.FindRoom(context.Background(), 99)

	assert.Nil(t, room)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingRepository_CountByRoom(t *testing.T) {
	mock, repo := setupBookingRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountByRoom(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBookingRepository_Create_Success(t *testing.T) {
	mock, repo := setupBookingRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT capacity FROM rooms`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(int64(1), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "room_id", "created_at", "updated_at"}).
			AddRow(5, 1, 3, now, now))
	mock.ExpectCommit()

	booking, err := repo.Create(context.Background(), 1, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(5), booking.ID)
	assert.Equal(t, int64(1), booking.UserID)
	assert.Equal(t, int64(3), booking.RoomID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_RoomFull(t *testing.T) {
	mock, repo := setupBookingRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT capacity FROM rooms`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	booking, err := repo.Create(context.Background(), 1, 3)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrRoomFull)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_RoomNotFound(t *testing.T) {
	mock, repo := setupBookingRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT capacity FROM rooms`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}))
	mock.ExpectRollback()

	booking, err := repo.Create(context.Background(), 1, 99)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingRepository_UpdateRoom_Success(t *testing.T) {
	mock, repo := setupBookingRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT capacity FROM rooms`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`UPDATE bookings`).
		WithArgs(int64(5), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "room_id", "created_at", "updated_at"}).
			AddRow(5, 1, 4, now, now))
	mock.ExpectCommit()

	booking, err := repo.UpdateRoom(context.Background(), 5, 4)

	require.NoError(t, err)
	assert.Equal(t, int64(4), booking.RoomID)

	require.NoError(t, mock.ExpectationsWereMet())
}

// The count covers every booking in the target room, including one the mover
// already holds there. Capacity 1 with the mover's own row counted means the
// move is rejected even though it would be a no-op.
func TestBookingRepository_UpdateRoom_CountsOwnOccupancy(t *testing.T) {
	mock, repo := setupBookingRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT capacity FROM rooms`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	booking, err := repo.UpdateRoom(context.Background(), 5, 3)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrRoomFull)
}

func TestBookingRepository_UpdateRoom_BookingNotFound(t *testing.T) {
	mock, repo := setupBookingRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT capacity FROM rooms`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"capacity"}).AddRow(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`UPDATE bookings`).
		WithArgs(int64(99), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "room_id", "created_at", "updated_at"}))
	mock.ExpectRollback()

	booking, err := repo.UpdateRoom(context.Background(), 99, 4)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_OverbookedRooms(t *testing.T) {
	mock, repo := setupBookingRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "capacity", "count"}).
		AddRow(3, "101", 2, 3).
		AddRow(8, "205", 4, 5)
	mock.ExpectQuery(`HAVING COUNT\(b.id\) > r.capacity`).
		WillReturnRows(rows)

	occupancy, err := repo.OverbookedRooms(context.Background())

	require.NoError(t, err)
	require.Len(t, occupancy, 2)
	assert.Equal(t, int64(3), occupancy[0].RoomID)
	assert.Equal(t, 3, occupancy[0].Booked)
	assert.Equal(t, "205", occupancy[1].Name)
}
