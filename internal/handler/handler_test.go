package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ArturFariaVieira/drivent-s4/internal/domain"
	"github.com/ArturFariaVieira/drivent-s4/internal/handler/dto"
	hmocks "github.com/ArturFariaVieira/drivent-s4/internal/handler/mocks"
	"github.com/ArturFariaVieira/drivent-s4/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

// setupRouter wires the handler behind a stub auth middleware that
// injects the given user id, the way the real JWT middleware would.
func setupRouter(t *testing.T, userID int64) (*hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(bookingSvc)

	r := ginext.New("test")
	booking := r.Group("/booking")
	booking.Use(func(c *ginext.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	})
	{
		booking.GET("", h.GetBooking)
		booking.POST("", h.CreateBooking)
		booking.PUT("/:bookingId", h.EditBooking)
	}

	return bookingSvc, r
}

// --- GET /booking ---

func TestHandler_GetBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	details := &domain.BookingDetails{
		ID:   5,
		Room: domain.Room{ID: 3, Name: "101", Capacity: 2, HotelID: 7},
	}
	bookingSvc.EXPECT().CheckHotelEligibility(mock.Anything, int64(1)).Return(nil)
	bookingSvc.EXPECT().GetBooking(mock.Anything, int64(1)).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, int64(3), resp.Room.ID)
	assert.Equal(t, "101", resp.Room.Name)
	assert.Equal(t, int64(7), resp.Room.HotelID)
}

func TestHandler_GetBooking_NotEligible(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	bookingSvc.EXPECT().CheckHotelEligibility(mock.Anything, int64(1)).
		Return(domain.ErrPaymentRequired)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	bookingSvc.AssertNotCalled(t, "GetBooking", mock.Anything, mock.Anything)
}

func TestHandler_GetBooking_NoEnrollment(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	bookingSvc.EXPECT().CheckHotelEligibility(mock.Anything, int64(1)).
		Return(domain.ErrEnrollmentNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	bookingSvc.EXPECT().CheckHotelEligibility(mock.Anything, int64(1)).Return(nil)
	bookingSvc.EXPECT().GetBooking(mock.Anything, int64(1)).
		Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- POST /booking ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	booking := &domain.Booking{ID: 5, UserID: 1, RoomID: 3}
	bookingSvc.EXPECT().CreateBooking(mock.Anything, int64(1), int64(3)).Return(booking, nil)

	body, _ := json.Marshal(dto.BookRoomRequest{RoomID: 3})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingIDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, r := setupRouter(t, 1)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing roomId", body: `{}`},
		{name: "zero roomId", body: `{"roomId":0}`},
		{name: "negative roomId", body: `{"roomId":-1}`},
		{name: "malformed json", body: `{"roomId":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_CreateBooking_RoomNotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	bookingSvc.EXPECT().CreateBooking(mock.Anything, int64(1), int64(99)).
		Return(nil, domain.ErrRoomNotFound)

	body, _ := json.Marshal(dto.BookRoomRequest{RoomID: 99})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_RoomFull(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	bookingSvc.EXPECT().CreateBooking(mock.Anything, int64(1), int64(3)).
		Return(nil, domain.ErrRoomFull)

	body, _ := json.Marshal(dto.BookRoomRequest{RoomID: 3})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateBooking_PaymentRequired(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	bookingSvc.EXPECT().CreateBooking(mock.Anything, int64(1), int64(3)).
		Return(nil, domain.ErrPaymentRequired)

	body, _ := json.Marshal(dto.BookRoomRequest{RoomID: 3})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

// --- PUT /booking/:bookingId ---

func TestHandler_EditBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	booking := &domain.Booking{ID: 5, UserID: 1, RoomID: 4}
	bookingSvc.EXPECT().EditBooking(mock.Anything, int64(1), int64(4), int64(5)).
		Return(booking, nil)

	body, _ := json.Marshal(dto.BookRoomRequest{RoomID: 4})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingIDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
}

func TestHandler_EditBooking_InvalidBookingID(t *testing.T) {
	_, r := setupRouter(t, 1)

	body, _ := json.Marshal(dto.BookRoomRequest{RoomID: 4})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/not-a-number", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_EditBooking_NotOwner(t *testing.T) {
	bookingSvc, r := setupRouter(t, 2)

	bookingSvc.EXPECT().EditBooking(mock.Anything, int64(2), int64(4), int64(5)).
		Return(nil, domain.ErrNotBookingOwner)

	body, _ := json.Marshal(dto.BookRoomRequest{RoomID: 4})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_EditBooking_RoomNotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	bookingSvc.EXPECT().EditBooking(mock.Anything, int64(1), int64(99), int64(5)).
		Return(nil, domain.ErrRoomNotFound)

	body, _ := json.Marshal(dto.BookRoomRequest{RoomID: 99})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_EditBooking_RoomFull(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	bookingSvc.EXPECT().EditBooking(mock.Anything, int64(1), int64(4), int64(5)).
		Return(nil, domain.ErrRoomFull)

	body, _ := json.Marshal(dto.BookRoomRequest{RoomID: 4})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	bookingSvc, r := setupRouter(t, 1)

	bookingSvc.EXPECT().CheckHotelEligibility(mock.Anything, int64(1)).Return(assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
