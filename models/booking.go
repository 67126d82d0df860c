package models

import (
	"time"
)

// Booking mỗi user chỉ giữ một booking tại một thời điểm
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `json:"userId"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	RoomID    uint      `json:"roomId"`
	Room      Room      `json:"room" gorm:"foreignKey:RoomID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
