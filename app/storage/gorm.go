package storage

import (
	"time"

	"github.com/andriyanf/kasresto/app/models"
	"gorm.io/gorm"
)

// DatabaseStorage: implementasi Storage di atas gorm (MySQL / PostgreSQL).
type DatabaseStorage struct {
	DB *gorm.DB
}

func NewDatabaseStorage(db *gorm.DB) *DatabaseStorage {
	return &DatabaseStorage{DB: db}
}

func (s *DatabaseStorage) CreateSale(sale *models.Sale) (*models.Sale, error) {
	result := s.DB.Debug().Create(sale)
	if result.Error != nil {
		return nil, result.Error
	}

	return sale, nil
}

func (s *DatabaseStorage) Sales() ([]models.Sale, error) {
	var sales []models.Sale

	err := s.DB.Debug().Model(&models.Sale{}).Order("created_at desc").Find(&sales).Error
	if err != nil {
		return nil, err
	}

	return sales, nil
}

func (s *DatabaseStorage) SalesByDateRange(start, end time.Time) ([]models.Sale, error) {
	var sales []models.Sale

	err := s.DB.Debug().Model(&models.Sale{}).
		Where("datetime >= ? AND datetime <= ?", start, end).
		Order("datetime asc").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}

	return sales, nil
}

func (s *DatabaseStorage) DeleteSale(id string) (bool, error) {
	result := s.DB.Debug().Where("id = ?", id).Delete(&models.Sale{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (s *DatabaseStorage) CreateExpense(expense *models.Expense) (*models.Expense, error) {
	result := s.DB.Debug().Create(expense)
	if result.Error != nil {
		return nil, result.Error
	}

	return expense, nil
}

func (s *DatabaseStorage) Expenses() ([]models.Expense, error) {
	var expenses []models.Expense

	err := s.DB.Debug().Model(&models.Expense{}).Order("created_at desc").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (s *DatabaseStorage) ExpensesByDateRange(start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense

	err := s.DB.Debug().Model(&models.Expense{}).
		Where("datetime >= ? AND datetime <= ?", start, end).
		Order("datetime asc").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (s *DatabaseStorage) DeleteExpense(id string) (bool, error) {
	result := s.DB.Debug().Where("id = ?", id).Delete(&models.Expense{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (s *DatabaseStorage) CreateAsset(asset *models.Asset) (*models.Asset, error) {
	result := s.DB.Debug().Create(asset)
	if result.Error != nil {
		return nil, result.Error
	}

	return asset, nil
}

func (s *DatabaseStorage) Assets() ([]models.Asset, error) {
	var assets []models.Asset

	err := s.DB.Debug().Model(&models.Asset{}).Order("created_at desc").Find(&assets).Error
	if err != nil {
		return nil, err
	}

	return assets, nil
}

func (s *DatabaseStorage) DeleteAsset(id string) (bool, error) {
	result := s.DB.Debug().Where("id = ?", id).Delete(&models.Asset{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (s *DatabaseStorage) CreateCapital(capital *models.Capital) (*models.Capital, error) {
	result := s.DB.Debug().Create(capital)
	if result.Error != nil {
		return nil, result.Error
	}

	return capital, nil
}

func (s *DatabaseStorage) Capital() ([]models.Capital, error) {
	var capital []models.Capital

	err := s.DB.Debug().Model(&models.Capital{}).Order("created_at desc").Find(&capital).Error
	if err != nil {
		return nil, err
	}

	return capital, nil
}

func (s *DatabaseStorage) DeleteCapital(id string) (bool, error) {
	result := s.DB.Debug().Where("id = ?", id).Delete(&models.Capital{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (s *DatabaseStorage) CreateLiability(liability *models.Liability) (*models.Liability, error) {
	result := s.DB.Debug().Create(liability)
	if result.Error != nil {
		return nil, result.Error
	}

	return liability, nil
}

func (s *DatabaseStorage) Liabilities() ([]models.Liability, error) {
	var liabilities []models.Liability

	err := s.DB.Debug().Model(&models.Liability{}).Order("created_at desc").Find(&liabilities).Error
	if err != nil {
		return nil, err
	}

	return liabilities, nil
}

func (s *DatabaseStorage) DeleteLiability(id string) (bool, error) {
	result := s.DB.Debug().Where("id = ?", id).Delete(&models.Liability{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (s *DatabaseStorage) CreateUser(user *models.User) (*models.User, error) {
	userModel := models.User{}
	return userModel.CreateUser(s.DB, user)
}

func (s *DatabaseStorage) FindUserByEmail(email string) (*models.User, error) {
	userModel := models.User{}
	return userModel.FindByEmail(s.DB, email)
}

func (s *DatabaseStorage) FindUserByID(id string) (*models.User, error) {
	userModel := models.User{}
	return userModel.FindByID(s.DB, id)
}
