package validator

import (
	"evbooking/errors"
	"strconv"
)

// ValidateRoomID roomId phải là số dương
func ValidateRoomID(roomID uint) error {
	if roomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "roomId không được để trống", nil)
	}
	return nil
}

// ParseIDParam đọc id từ path param, phải là số dương
func ParseIDParam(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "id không hợp lệ", err)
	}
	return uint(id), nil
}
