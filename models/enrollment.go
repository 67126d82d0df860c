package models

import (
	"time"
)

// Enrollment hồ sơ ghi danh của user, mỗi user tối đa một hồ sơ
type Enrollment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex" json:"userId"`
	User        User      `json:"user" gorm:"foreignKey:UserID"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
