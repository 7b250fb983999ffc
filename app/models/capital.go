package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Capital struct {
	ID          string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Source      string          `gorm:"size:255;not null" json:"source"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (c *Capital) TableName() string {
	return "capital"
}

func (c *Capital) BeforeCreate(db *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	return nil
}
