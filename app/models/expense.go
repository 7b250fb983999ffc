package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expense struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Category      string          `gorm:"size:100;not null" json:"category"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Datetime      time.Time       `gorm:"not null;index" json:"datetime"`
	PaymentMethod string          `gorm:"size:100;not null" json:"paymentMethod"`
	Notes         string          `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (e *Expense) BeforeCreate(db *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	return nil
}

func (e Expense) DatetimeFormatted() string {
	if e.Datetime.IsZero() {
		return "-"
	}
	return e.Datetime.Format("2006-01-02 15:04")
}
