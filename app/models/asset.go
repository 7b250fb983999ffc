package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Asset struct {
	ID string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	// kas, bank, peralatan, inventori, properti, kendaraan
	Type            string          `gorm:"size:50;not null" json:"type"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Value           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"value"`
	AcquisitionDate time.Time       `gorm:"not null" json:"acquisitionDate"`
	Description     string          `gorm:"type:text" json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (a *Asset) BeforeCreate(db *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	return nil
}
