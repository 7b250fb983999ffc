package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Sale struct {
	ID       string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	MenuItem string `gorm:"size:255;not null" json:"menuItem"`
	// dine-in, takeaway, online, catering
	Category string          `gorm:"size:50;not null;default:dine-in" json:"category"`
	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	// Total = Price * Quantity, dihitung oleh pengirim data
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Datetime  time.Time       `gorm:"not null;index" json:"datetime"`
	Notes     string          `gorm:"type:text" json:"notes"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (s *Sale) BeforeCreate(db *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	if s.Category == "" {
		s.Category = "dine-in"
	}

	return nil
}

func (s Sale) DatetimeFormatted() string {
	if s.Datetime.IsZero() {
		return "-"
	}
	return s.Datetime.Format("2006-01-02 15:04")
}
