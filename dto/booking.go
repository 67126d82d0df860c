package dto

import (
	"time"
)

// CreateBookingRequest là DTO cho request đặt phòng
type CreateBookingRequest struct {
	RoomID uint `json:"roomId" binding:"required"`
}

// UpdateBookingRequest là DTO cho request đổi phòng
type UpdateBookingRequest struct {
	RoomID uint `json:"roomId" binding:"required"`
}

// CreateBookingResponse trả về roomId vừa đặt
type CreateBookingResponse struct {
	RoomID uint `json:"roomId"`
}

// BookingRoomResponse là DTO cho thông tin phòng trong booking
type BookingRoomResponse struct {
	ID       uint   `json:"id"`
	HotelID  uint   `json:"hotelId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// BookingResponse là DTO cho booking hiện tại của user
type BookingResponse struct {
	ID   uint                `json:"id"`
	Room BookingRoomResponse `json:"Room"`
}

// UpdatedBookingResponse là DTO cho booking sau khi đổi phòng
type UpdatedBookingResponse struct {
	ID        uint      `json:"id"`
	RoomID    uint      `json:"roomId"`
	UpdatedAt time.Time `json:"updatedAt"`
}
