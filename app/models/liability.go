package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Liability struct {
	ID string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	// utang-supplier, pinjaman-bank, utang-gaji, utang-pajak, utang-sewa, lainnya
	Type     string          `gorm:"size:50;not null" json:"type"`
	Creditor string          `gorm:"size:255;not null" json:"creditor"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	DueDate  time.Time       `gorm:"not null" json:"dueDate"`
	// pending, partial, paid
	Status    string    `gorm:"size:50;not null;default:pending" json:"status"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l *Liability) BeforeCreate(db *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	if l.Status == "" {
		l.Status = "pending"
	}

	return nil
}
