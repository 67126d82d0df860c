package services

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"evbooking/dto"
	"evbooking/errors"
	"evbooking/models"
	"evbooking/services/logger"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// BookingServiceInterface hợp đồng cho controller
type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userID, roomID uint) (*models.Booking, error)
	GetBookingByUserID(ctx context.Context, userID uint) (*models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID, roomID, userID uint) (*models.Booking, error)
}

// BookingService điều phối validator và repository, là nơi duy nhất ghi booking
type BookingService struct {
	validator *BookingValidator
	bookings  BookingRepo
	rdb       *redis.Client
	melody    *melody.Melody
	logger    logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Melody *melody.Melody
	Logger logger.Logger

	// Repo override, để trống sẽ dùng implementation gorm trên DB
	Enrollments EnrollmentRepo
	Tickets     TicketRepo
	Rooms       RoomRepo
	Bookings    BookingRepo
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Enrollments == nil {
		opts.Enrollments = NewGormEnrollmentRepo(opts.DB)
	}
	if opts.Tickets == nil {
		opts.Tickets = NewGormTicketRepo(opts.DB)
	}
	if opts.Rooms == nil {
		opts.Rooms = NewGormRoomRepo(opts.DB)
	}
	if opts.Bookings == nil {
		opts.Bookings = NewGormBookingRepo(opts.DB)
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}

	return &BookingService{
		validator: NewBookingValidator(opts.Enrollments, opts.Tickets, opts.Rooms, opts.Bookings),
		bookings:  opts.Bookings,
		rdb:       opts.Redis,
		melody:    opts.Melody,
		logger:    opts.Logger,
	}
}

// reasonToError dịch kết quả của validator sang AppError cho controller
func reasonToError(reason BookReason) error {
	switch reason {
	case ReasonMissingRoom:
		return errors.NewInvalidRequest("roomId không được để trống")
	case ReasonNoEligibility:
		return errors.NewCannotBook("Vé chưa thanh toán hoặc không bao gồm khách sạn")
	case ReasonRoomNotFound:
		return errors.NewNotFound("Không tìm thấy phòng")
	case ReasonRoomFull:
		return errors.NewCannotBook("Phòng đã hết chỗ")
	default:
		return nil
	}
}

// CreateBooking đặt phòng cho user sau khi qua hết các bước kiểm tra
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint) (*models.Booking, error) {
	reason, err := s.validator.CanBook(ctx, userID, roomID, 0)
	if err != nil {
		return nil, errors.NewDBError(err)
	}
	if reason != BookAllowed {
		s.logger.Info("Từ chối đặt phòng user=%d room=%d: %s", userID, roomID, reason)
		return nil, reasonToError(reason)
	}

	booking, err := s.bookings.Create(ctx, userID, roomID)
	if err != nil {
		// Thua cuộc đua sức chứa trong transaction
		if goerrors.Is(err, errors.ErrRoomFull) {
			return nil, errors.NewCannotBook("Phòng đã hết chỗ")
		}
		return nil, errors.NewDBError(err)
	}

	s.logger.Info("Đặt phòng thành công user=%d room=%d booking=%d", userID, roomID, booking.ID)
	s.invalidateCache(ctx, userID)
	s.notifyBooking("booking_created", booking)

	return booking, nil
}

// GetBookingByUserID lấy booking hiện tại của user, kèm thông tin phòng
func (s *BookingService) GetBookingByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	// Lấy từ cache trước
	if s.rdb != nil {
		var cached models.Booking
		if err := GetFromRedis(ctx, s.rdb, BookingCacheKey(userID), &cached); err == nil && cached.ID != 0 {
			return &cached, nil
		}
	}

	booking, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDBError(err)
	}
	if booking == nil {
		return nil, errors.NewNotFound("User chưa có booking")
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, BookingCacheKey(userID), booking, 10*time.Minute); err != nil {
			s.logger.Error("Lỗi khi lưu booking vào Redis: %v", err)
		}
	}

	return booking, nil
}

// UpdateBooking chuyển booking của user sang phòng khác
func (s *BookingService) UpdateBooking(ctx context.Context, bookingID, roomID, userID uint) (*models.Booking, error) {
	if roomID == 0 {
		return nil, errors.NewInvalidRequest("roomId không được để trống")
	}

	existing, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errors.NewDBError(err)
	}
	if existing == nil || existing.UserID != userID {
		return nil, errors.NewNotFound("Không tìm thấy booking")
	}

	// Không tính booking đang chuyển vào số chỗ đã chiếm của phòng đích
	reason, err := s.validator.CanBook(ctx, userID, roomID, bookingID)
	if err != nil {
		return nil, errors.NewDBError(err)
	}
	if reason != BookAllowed {
		s.logger.Info("Từ chối đổi phòng booking=%d room=%d: %s", bookingID, roomID, reason)
		return nil, reasonToError(reason)
	}

	booking, err := s.bookings.UpdateRoom(ctx, bookingID, roomID, userID)
	if err != nil {
		if goerrors.Is(err, errors.ErrRoomFull) {
			return nil, errors.NewCannotBook("Phòng đã hết chỗ")
		}
		return nil, errors.NewDBError(err)
	}

	s.logger.Info("Đổi phòng thành công booking=%d room=%d", bookingID, roomID)
	s.invalidateCache(ctx, userID)
	s.notifyBooking("booking_updated", booking)

	return booking, nil
}

func (s *BookingService) invalidateCache(ctx context.Context, userID uint) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, BookingCacheKey(userID)); err != nil {
		s.logger.Error("Lỗi khi xóa cache booking của user %d: %v", userID, err)
	}
}

// notifyBooking phát thông báo đặt phòng qua websocket
func (s *BookingService) notifyBooking(event string, booking *models.Booking) {
	if s.melody == nil {
		return
	}
	message := fmt.Sprintf(`{"event":%q,"bookingId":%d,"roomId":%d}`, event, booking.ID, booking.RoomID)
	if err := s.melody.Broadcast([]byte(message)); err != nil {
		s.logger.Error("Lỗi khi broadcast thông báo booking: %v", err)
	}
}

// ToBookingResponse chuyển model sang DTO trả về cho GET /booking
func ToBookingResponse(booking *models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID: booking.ID,
		Room: dto.BookingRoomResponse{
			ID:       booking.Room.ID,
			HotelID:  booking.Room.HotelID,
			Name:     booking.Room.Name,
			Capacity: booking.Room.Capacity,
		},
	}
}
