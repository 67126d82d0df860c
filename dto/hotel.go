package dto

// HotelResponse là DTO cho thông tin khách sạn
type HotelResponse struct {
	ID        uint                  `json:"id"`
	Name      string                `json:"name"`
	Image     string                `json:"image"`
	Amenities []string              `json:"amenities"`
	Rooms     []BookingRoomResponse `json:"rooms,omitempty"`
}
