package models

import (
	"fmt"
	"time"
)

type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HotelID   uint      `json:"hotelId"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ValidateCapacity sức chứa phòng không được âm
func (r *Room) ValidateCapacity() error {
	if r.Capacity < 0 {
		return fmt.Errorf("invalid capacity: %d, must not be negative", r.Capacity)
	}
	return nil
}
