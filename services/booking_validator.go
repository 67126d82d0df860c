package services

import (
	"context"

	"evbooking/constants"
)

// BookReason kết quả kiểm tra điều kiện đặt phòng
type BookReason int

const (
	BookAllowed BookReason = iota
	ReasonMissingRoom
	ReasonNoEligibility
	ReasonRoomNotFound
	ReasonRoomFull
)

func (r BookReason) String() string {
	switch r {
	case BookAllowed:
		return "allowed"
	case ReasonMissingRoom:
		return "missing room"
	case ReasonNoEligibility:
		return "no eligibility"
	case ReasonRoomNotFound:
		return "room not found"
	case ReasonRoomFull:
		return "room full"
	default:
		return "unknown"
	}
}

// BookingValidator quyết định một cặp (user, room) có được đặt hay không.
// Chỉ đọc dữ liệu qua các repo, không ghi gì.
type BookingValidator struct {
	enrollments EnrollmentRepo
	tickets     TicketRepo
	rooms       RoomRepo
	bookings    BookingRepo
}

func NewBookingValidator(enrollments EnrollmentRepo, tickets TicketRepo, rooms RoomRepo, bookings BookingRepo) *BookingValidator {
	return &BookingValidator{
		enrollments: enrollments,
		tickets:     tickets,
		rooms:       rooms,
		bookings:    bookings,
	}
}

// CanBook kiểm tra theo thứ tự: điều kiện vé trước, phòng và sức chứa sau.
// User không đủ điều kiện luôn nhận ReasonNoEligibility kể cả khi phòng đã đầy.
// excludeBookingID > 0 dùng cho luồng đổi phòng: không tính booking đang chuyển
// vào số chỗ đã chiếm của phòng đích.
func (v *BookingValidator) CanBook(ctx context.Context, userID, roomID, excludeBookingID uint) (BookReason, error) {
	if roomID == 0 {
		return ReasonMissingRoom, nil
	}

	enrollment, err := v.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return BookAllowed, err
	}
	if enrollment == nil {
		return ReasonNoEligibility, nil
	}

	ticket, err := v.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return BookAllowed, err
	}
	if ticket == nil ||
		ticket.Status != constants.TicketStatusPaid ||
		ticket.TicketType.IsRemote ||
		!ticket.TicketType.IncludesHotel {
		return ReasonNoEligibility, nil
	}

	room, err := v.rooms.FindByID(ctx, roomID)
	if err != nil {
		return BookAllowed, err
	}
	if room == nil {
		return ReasonRoomNotFound, nil
	}

	count, err := v.bookings.CountActiveByRoom(ctx, roomID, excludeBookingID)
	if err != nil {
		return BookAllowed, err
	}
	if count >= int64(room.Capacity) {
		return ReasonRoomFull, nil
	}

	return BookAllowed, nil
}
