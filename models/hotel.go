package models

import (
	"time"

	"github.com/lib/pq"
)

type Hotel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `json:"name"`
	Image     string         `json:"image"`
	Amenities pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Rooms     []Room         `json:"rooms" gorm:"foreignKey:HotelID"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
