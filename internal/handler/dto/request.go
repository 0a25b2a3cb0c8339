package dto

type BookRoomRequest struct {
	RoomID int64 `json:"roomId" binding:"required,gt=0"`
}
