package controllers

import (
	"evbooking/dto"
	"evbooking/errors"
	"evbooking/response"
	"evbooking/services"
	"evbooking/validator"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	service services.BookingServiceInterface
}

func NewBookingController(service services.BookingServiceInterface) *BookingController {
	return &BookingController{service: service}
}

// currentUserID lấy userID do AuthMiddleware gán vào context
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := v.(uint)
	return userID, ok
}

// handleBookingError ánh xạ AppError sang status code trả về
func handleBookingError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeInvalidRequest, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat:
		response.BadRequest(c, appErr.Message)
	case errors.ErrCodeUnauthorized:
		response.Unauthorized(c)
	case errors.ErrCodeCannotBook, errors.ErrCodeRoomFull:
		response.Forbidden(c)
	case errors.ErrCodeNotFound:
		response.NotFound(c)
	default:
		response.ServerError(c)
	}
}

// CreateBooking đặt phòng cho user đang đăng nhập
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateRoomID(req.RoomID); err != nil {
		handleBookingError(c, err)
		return
	}

	booking, err := ctrl.service.CreateBooking(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		handleBookingError(c, err)
		return
	}

	response.Success(c, dto.CreateBookingResponse{RoomID: booking.RoomID})
}

// GetBooking lấy booking hiện tại của user đang đăng nhập
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	booking, err := ctrl.service.GetBookingByUserID(c.Request.Context(), userID)
	if err != nil {
		handleBookingError(c, err)
		return
	}

	response.Success(c, services.ToBookingResponse(booking))
}

// UpdateBooking chuyển booking sang phòng khác
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	bookingID, err := validator.ParseIDParam(c.Param("bookingId"))
	if err != nil {
		handleBookingError(c, err)
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctrl.service.UpdateBooking(c.Request.Context(), bookingID, req.RoomID, userID)
	if err != nil {
		handleBookingError(c, err)
		return
	}

	response.Success(c, dto.UpdatedBookingResponse{
		ID:        booking.ID,
		RoomID:    booking.RoomID,
		UpdatedAt: booking.UpdatedAt,
	})
}
