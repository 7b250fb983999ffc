package storage

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/andriyanf/kasresto/app/models"
	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// MemoryStorage menyimpan semua catatan di map dalam proses.
// Aman dipakai bersamaan; semua akses lewat satu RWMutex.
type MemoryStorage struct {
	mu          sync.RWMutex
	sales       map[string]models.Sale
	expenses    map[string]models.Expense
	assets      map[string]models.Asset
	capital     map[string]models.Capital
	liabilities map[string]models.Liability
	users       map[string]models.User
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		sales:       map[string]models.Sale{},
		expenses:    map[string]models.Expense{},
		assets:      map[string]models.Asset{},
		capital:     map[string]models.Capital{},
		liabilities: map[string]models.Liability{},
		users:       map[string]models.User{},
	}
}

func (m *MemoryStorage) CreateSale(sale *models.Sale) (*models.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sale.ID = uuid.New().String()
	sale.CreatedAt = time.Now()
	if sale.Category == "" {
		sale.Category = "dine-in"
	}

	m.sales[sale.ID] = *sale
	return sale, nil
}

func (m *MemoryStorage) Sales() ([]models.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sales := make([]models.Sale, 0, len(m.sales))
	for _, sale := range m.sales {
		sales = append(sales, sale)
	}

	// terbaru dulu, sama seperti query database
	sort.Slice(sales, func(i, j int) bool {
		return sales[i].CreatedAt.After(sales[j].CreatedAt)
	})

	return sales, nil
}

func (m *MemoryStorage) SalesByDateRange(start, end time.Time) ([]models.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var sales []models.Sale
	for _, sale := range m.sales {
		if !sale.Datetime.Before(start) && !sale.Datetime.After(end) {
			sales = append(sales, sale)
		}
	}

	sort.Slice(sales, func(i, j int) bool {
		return sales[i].Datetime.Before(sales[j].Datetime)
	})

	return sales, nil
}

func (m *MemoryStorage) DeleteSale(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sales[id]; !ok {
		return false, nil
	}

	delete(m.sales, id)
	return true, nil
}

func (m *MemoryStorage) CreateExpense(expense *models.Expense) (*models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expense.ID = uuid.New().String()
	expense.CreatedAt = time.Now()

	m.expenses[expense.ID] = *expense
	return expense, nil
}

func (m *MemoryStorage) Expenses() ([]models.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	expenses := make([]models.Expense, 0, len(m.expenses))
	for _, expense := range m.expenses {
		expenses = append(expenses, expense)
	}

	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})

	return expenses, nil
}

func (m *MemoryStorage) ExpensesByDateRange(start, end time.Time) ([]models.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var expenses []models.Expense
	for _, expense := range m.expenses {
		if !expense.Datetime.Before(start) && !expense.Datetime.After(end) {
			expenses = append(expenses, expense)
		}
	}

	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Datetime.Before(expenses[j].Datetime)
	})

	return expenses, nil
}

func (m *MemoryStorage) DeleteExpense(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.expenses[id]; !ok {
		return false, nil
	}

	delete(m.expenses, id)
	return true, nil
}

func (m *MemoryStorage) CreateAsset(asset *models.Asset) (*models.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	asset.ID = uuid.New().String()
	asset.CreatedAt = time.Now()

	m.assets[asset.ID] = *asset
	return asset, nil
}

func (m *MemoryStorage) Assets() ([]models.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	assets := make([]models.Asset, 0, len(m.assets))
	for _, asset := range m.assets {
		assets = append(assets, asset)
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].CreatedAt.After(assets[j].CreatedAt)
	})

	return assets, nil
}

func (m *MemoryStorage) DeleteAsset(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.assets[id]; !ok {
		return false, nil
	}

	delete(m.assets, id)
	return true, nil
}

func (m *MemoryStorage) CreateCapital(capital *models.Capital) (*models.Capital, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	capital.ID = uuid.New().String()
	capital.CreatedAt = time.Now()

	m.capital[capital.ID] = *capital
	return capital, nil
}

func (m *MemoryStorage) Capital() ([]models.Capital, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	capital := make([]models.Capital, 0, len(m.capital))
	for _, cap := range m.capital {
		capital = append(capital, cap)
	}

	sort.Slice(capital, func(i, j int) bool {
		return capital[i].CreatedAt.After(capital[j].CreatedAt)
	})

	return capital, nil
}

func (m *MemoryStorage) DeleteCapital(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.capital[id]; !ok {
		return false, nil
	}

	delete(m.capital, id)
	return true, nil
}

func (m *MemoryStorage) CreateLiability(liability *models.Liability) (*models.Liability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	liability.ID = uuid.New().String()
	liability.CreatedAt = time.Now()
	if liability.Status == "" {
		liability.Status = "pending"
	}

	m.liabilities[liability.ID] = *liability
	return liability, nil
}

func (m *MemoryStorage) Liabilities() ([]models.Liability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	liabilities := make([]models.Liability, 0, len(m.liabilities))
	for _, liability := range m.liabilities {
		liabilities = append(liabilities, liability)
	}

	sort.Slice(liabilities, func(i, j int) bool {
		return liabilities[i].CreatedAt.After(liabilities[j].CreatedAt)
	})

	return liabilities, nil
}

func (m *MemoryStorage) DeleteLiability(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.liabilities[id]; !ok {
		return false, nil
	}

	delete(m.liabilities, id)
	return true, nil
}

func (m *MemoryStorage) CreateUser(user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	m.users[user.ID] = *user
	return user, nil
}

func (m *MemoryStorage) FindUserByEmail(email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}

	return nil, ErrUserNotFound
}

func (m *MemoryStorage) FindUserByID(id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	found := user
	return &found, nil
}
