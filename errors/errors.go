package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"

	// Booking errors
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeCannotBook     ErrorCode = "CANNOT_BOOK"
	ErrCodeRoomFull       ErrorCode = "ROOM_FULL"
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Các constructor cho từng loại lỗi nghiệp vụ, tạo mới mỗi lần gọi
// để không chia sẻ trạng thái lỗi giữa các request.

// NewInvalidRequest lỗi dữ liệu request không hợp lệ (400)
func NewInvalidRequest(message string) *AppError {
	return NewAppError(ErrCodeInvalidRequest, message, nil)
}

// NewUnauthorized lỗi chưa xác thực (401)
func NewUnauthorized(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, nil)
}

// NewCannotBook lỗi không đủ điều kiện đặt phòng hoặc phòng đã đầy (403)
func NewCannotBook(message string) *AppError {
	return NewAppError(ErrCodeCannotBook, message, nil)
}

// NewNotFound lỗi không tìm thấy tài nguyên (404)
func NewNotFound(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, nil)
}

// NewDBError lỗi truy vấn database (500)
func NewDBError(err error) *AppError {
	return NewAppError(ErrCodeDBError, "Lỗi truy vấn dữ liệu", err)
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// ErrRoomFull dùng ở tầng repository khi recheck sức chứa trong transaction thua cuộc đua
var ErrRoomFull = errors.New("room is at full capacity")
