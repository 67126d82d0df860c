package services

import (
	"context"
	"errors"

	apperrors "evbooking/errors"
	"evbooking/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Các interface truy vấn dữ liệu mà BookingValidator và BookingService sử dụng.
// Khai báo tại nơi tiêu thụ để có thể thay bằng implementation khác khi test.

type EnrollmentRepo interface {
	FindByUserID(ctx context.Context, userID uint) (*models.Enrollment, error)
}

type TicketRepo interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error)
}

type RoomRepo interface {
	FindByID(ctx context.Context, roomID uint) (*models.Room, error)
}

type BookingRepo interface {
	FindByID(ctx context.Context, bookingID uint) (*models.Booking, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Booking, error)
	// CountActiveByRoom đếm số booking đang giữ phòng, bỏ qua excludeBookingID nếu > 0
	CountActiveByRoom(ctx context.Context, roomID uint, excludeBookingID uint) (int64, error)
	Create(ctx context.Context, userID, roomID uint) (*models.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID, userID uint) (*models.Booking, error)
}

// GormEnrollmentRepo đọc enrollment từ postgres
type GormEnrollmentRepo struct {
	db *gorm.DB
}

func NewGormEnrollmentRepo(db *gorm.DB) *GormEnrollmentRepo {
	return &GormEnrollmentRepo{db: db}
}

func (r *GormEnrollmentRepo) FindByUserID(ctx context.Context, userID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// GormTicketRepo đọc ticket từ postgres
type GormTicketRepo struct {
	db *gorm.DB
}

func NewGormTicketRepo(db *gorm.DB) *GormTicketRepo {
	return &GormTicketRepo{db: db}
}

func (r *GormTicketRepo) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).Preload("TicketType").Where("enrollment_id = ?", enrollmentID).First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GormRoomRepo đọc room từ postgres
type GormRoomRepo struct {
	db *gorm.DB
}

func NewGormRoomRepo(db *gorm.DB) *GormRoomRepo {
	return &GormRoomRepo{db: db}
}

func (r *GormRoomRepo) FindByID(ctx context.Context, roomID uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GormBookingRepo đọc/ghi booking trên postgres
type GormBookingRepo struct {
	db *gorm.DB
}

func NewGormBookingRepo(db *gorm.DB) *GormBookingRepo {
	return &GormBookingRepo{db: db}
}

func (r *GormBookingRepo) FindByID(ctx context.Context, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).Preload("Room").First(&booking, bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *GormBookingRepo) FindByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).Preload("Room").Where("user_id = ?", userID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *GormBookingRepo) CountActiveByRoom(ctx context.Context, roomID uint, excludeBookingID uint) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&models.Booking{}).Where("room_id = ?", roomID)
	if excludeBookingID > 0 {
		tx = tx.Where("id <> ?", excludeBookingID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create ghi booking mới. Sức chứa được kiểm tra lại trong cùng transaction
// với khóa dòng trên room để hai request cùng lúc không vượt capacity.
func (r *GormBookingRepo) Create(ctx context.Context, userID, roomID uint) (*models.Booking, error) {
	booking := models.Booking{UserID: userID, RoomID: roomID}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Booking{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(room.Capacity) {
			return apperrors.ErrRoomFull
		}

		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateRoom chuyển booking sang phòng khác, cùng cơ chế khóa như Create.
func (r *GormBookingRepo) UpdateRoom(ctx context.Context, bookingID, roomID, userID uint) (*models.Booking, error) {
	var booking models.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND id <> ?", roomID, bookingID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(room.Capacity) {
			return apperrors.ErrRoomFull
		}

		if err := tx.First(&booking, bookingID).Error; err != nil {
			return err
		}
		booking.RoomID = roomID
		booking.UserID = userID
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
