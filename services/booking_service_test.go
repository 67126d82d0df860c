package services

import (
	"context"
	"testing"

	"evbooking/errors"
)

func newTestService(f *fakeStore) *BookingService {
	return NewBookingService(BookingServiceOptions{
		Enrollments: fakeEnrollmentRepo{f},
		Tickets:     fakeTicketRepo{f},
		Rooms:       fakeRoomRepo{f},
		Bookings:    fakeBookingRepo{f},
	})
}

func assertAppErrorCode(t *testing.T, err error, want errors.ErrorCode) {
	t.Helper()
	appErr := errors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != want {
		t.Errorf("expected code %s, got %s", want, appErr.Code)
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	f := newFakeStore()
	f.eligibleUser(1)
	f.addRoom(10, 1)

	svc := newTestService(f)

	booking, err := svc.CreateBooking(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.RoomID != 10 {
		t.Errorf("expected roomId 10, got %d", booking.RoomID)
	}

	// Booking vừa tạo phải đọc lại được qua GetBookingByUserID
	got, err := svc.GetBookingByUserID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != booking.ID || got.RoomID != 10 {
		t.Errorf("expected booking %d in room 10, got %d in room %d", booking.ID, got.ID, got.RoomID)
	}
}

func TestCreateBookingNoEnrollment(t *testing.T) {
	f := newFakeStore()
	f.addRoom(10, 1)

	_, err := newTestService(f).CreateBooking(context.Background(), 1, 10)
	assertAppErrorCode(t, err, errors.ErrCodeCannotBook)
}

func TestCreateBookingMissingRoom(t *testing.T) {
	f := newFakeStore()
	f.eligibleUser(1)

	_, err := newTestService(f).CreateBooking(context.Background(), 1, 0)
	assertAppErrorCode(t, err, errors.ErrCodeInvalidRequest)
}

func TestCreateBookingRoomNotFound(t *testing.T) {
	f := newFakeStore()
	f.eligibleUser(1)

	_, err := newTestService(f).CreateBooking(context.Background(), 1, 999999)
	assertAppErrorCode(t, err, errors.ErrCodeNotFound)
}

func TestCreateBookingRoomFull(t *testing.T) {
	f := newFakeStore()
	f.eligibleUser(1)
	f.addRoom(10, 1)
	f.addBooking(2, 10)

	_, err := newTestService(f).CreateBooking(context.Background(), 1, 10)
	assertAppErrorCode(t, err, errors.ErrCodeCannotBook)
}

// Phòng sức chứa C với C-1 booking: nhận thêm đúng một booking rồi đầy
func TestCreateBookingFillsCapacity(t *testing.T) {
	f := newFakeStore()
	f.eligibleUser(1)
	f.eligibleUser(5)
	f.addRoom(10, 2)
	f.addBooking(2, 10)

	svc := newTestService(f)

	if _, err := svc.CreateBooking(context.Background(), 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, _ := fakeBookingRepo{f}.CountActiveByRoom(context.Background(), 10, 0)
	if count != 2 {
		t.Errorf("expected 2 bookings in room, got %d", count)
	}

	_, err := svc.CreateBooking(context.Background(), 5, 10)
	assertAppErrorCode(t, err, errors.ErrCodeCannotBook)
}

func TestGetBookingByUserIDNotFound(t *testing.T) {
	f := newFakeStore()

	_, err := newTestService(f).GetBookingByUserID(context.Background(), 1)
	assertAppErrorCode(t, err, errors.ErrCodeNotFound)
}

func TestUpdateBookingSuccess(t *testing.T) {
	f := newFakeStore()
	f.eligibleUser(1)
	f.addRoom(10, 1)
	f.addRoom(20, 1)
	booking := f.addBooking(1, 10)

	svc := newTestService(f)

	updated, err := svc.UpdateBooking(context.Background(), booking.ID, 20, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.RoomID != 20 {
		t.Errorf("expected roomId 20, got %d", updated.RoomID)
	}

	// Đọc lại phải thấy phòng mới
	got, err := svc.GetBookingByUserID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RoomID != 20 {
		t.Errorf("expected roomId 20 after update, got %d", got.RoomID)
	}
}

func TestUpdateBookingMissingRoom(t *testing.T) {
	f := newFakeStore()
	f.eligibleUser(1)
	booking := f.addBooking(1, 10)

	_, err := newTestService(f).UpdateBooking(context.Background(), booking.ID, 0, 1)
	assertAppErrorCode(t, err, errors.ErrCodeInvalidRequest)
}

func TestUpdateBookingNotFound(t *testing.T) {
	f := newFakeStore()
	f.eligibleUser(1)
	f.addRoom(20, 1)

	_, err := newTestService(f).UpdateBooking(context.Background(), 777, 20, 1)
	assertAppErrorCode(t, err, errors.ErrCodeNotFound)
}

// Booking của user khác không được phép đổi
func TestUpdateBookingWrongOwner(t *testing.T) {
	f := newFakeStore()
	f.eligibleUser(1)
	f.addRoom(20, 1)
	other := f.addBooking(2, 10)

	_, err := newTestService(f).UpdateBooking(context.Background(), other.ID, 20, 1)
	assertAppErrorCode(t, err, errors.ErrCodeNotFound)
}

// Đổi sang phòng sức chứa 1 đang có booking của user khác: bị từ chối
func TestUpdateBookingTargetRoomFull(t *testing.T) {
	f := newFakeStore()
	f.eligibleUser(1)
	f.addRoom(10, 1)
	f.addRoom(20, 1)
	booking := f.addBooking(1, 10)
	f.addBooking(2, 20)

	_, err := newTestService(f).UpdateBooking(context.Background(), booking.ID, 20, 1)
	assertAppErrorCode(t, err, errors.ErrCodeCannotBook)
}

// Đổi trong cùng phòng: chỗ của chính mình không làm phòng "đầy"
func TestUpdateBookingSameRoom(t *testing.T) {
	f := newFakeStore()
	f.eligibleUser(1)
	f.addRoom(10, 1)
	booking := f.addBooking(1, 10)

	updated, err := newTestService(f).UpdateBooking(context.Background(), booking.ID, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.RoomID != 10 {
		t.Errorf("expected roomId 10, got %d", updated.RoomID)
	}
}

func TestUpdateBookingIneligibleUser(t *testing.T) {
	f := newFakeStore()
	f.addRoom(20, 1)
	booking := f.addBooking(1, 10)

	_, err := newTestService(f).UpdateBooking(context.Background(), booking.ID, 20, 1)
	assertAppErrorCode(t, err, errors.ErrCodeCannotBook)
}
