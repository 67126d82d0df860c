package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// TicketType loại vé của sự kiện
type TicketType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	IsRemote      bool      `gorm:"default:false" json:"isRemote"`
	IncludesHotel bool      `gorm:"default:false" json:"includesHotel"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Ticket struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TicketTypeID uint       `json:"ticketTypeId"`
	TicketType   TicketType `json:"ticketType" gorm:"foreignKey:TicketTypeID"`
	EnrollmentID uint       `gorm:"uniqueIndex" json:"enrollmentId"`
	Status       string     `json:"status" validate:"required,oneof=RESERVED PAID"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (t *Ticket) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}
