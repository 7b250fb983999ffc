package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Email     string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	FirstName string    `gorm:"size:100;not null" json:"firstName"`
	LastName  string    `gorm:"size:100;not null" json:"lastName"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(db *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}

	return nil
}

func (u *User) FindByEmail(db *gorm.DB, email string) (*User, error) {
	var err error
	var user User

	err = db.Debug().Model(&User{}).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (u *User) FindByID(db *gorm.DB, userID string) (*User, error) {
	var err error
	var user User

	err = db.Debug().Model(&User{}).Where("id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (u *User) CreateUser(db *gorm.DB, user *User) (*User, error) {
	result := db.Debug().Create(user)
	if result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
