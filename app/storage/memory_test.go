package storage

import (
	"testing"
	"time"

	"github.com/andriyanf/kasresto/app/models"
	"github.com/shopspring/decimal"
)

func TestMemoryStorageCreateSaleAssignsIDAndCreatedAt(t *testing.T) {
	store := NewMemoryStorage()

	sale, err := store.CreateSale(&models.Sale{
		MenuItem: "Rendang",
		Quantity: 2,
		Price:    decimal.NewFromInt(25000),
		Total:    decimal.NewFromInt(50000),
		Datetime: time.Now(),
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	if sale.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if sale.CreatedAt.IsZero() {
		t.Fatalf("expected assigned createdAt")
	}
	if sale.Category != "dine-in" {
		t.Fatalf("category default = %q, want dine-in", sale.Category)
	}

	sales, err := store.Sales()
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("expected 1 sale, got %d", len(sales))
	}
}

func TestMemoryStorageDeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStorage()

	sale, err := store.CreateSale(&models.Sale{MenuItem: "Ayam Pop", Quantity: 1, Datetime: time.Now()})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	deleted, err := store.DeleteSale(sale.ID)
	if err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if !deleted {
		t.Fatalf("first delete should report deleted")
	}

	deleted, err = store.DeleteSale(sale.ID)
	if err != nil {
		t.Fatalf("second delete must not error, got %v", err)
	}
	if deleted {
		t.Fatalf("second delete should report not found")
	}
}

func TestMemoryStorageSalesByDateRange(t *testing.T) {
	store := NewMemoryStorage()

	inRange := time.Date(2025, 8, 15, 12, 0, 0, 0, time.Local)
	outOfRange := time.Date(2025, 7, 15, 12, 0, 0, 0, time.Local)

	if _, err := store.CreateSale(&models.Sale{MenuItem: "Rendang", Quantity: 1, Datetime: inRange}); err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if _, err := store.CreateSale(&models.Sale{MenuItem: "Ayam Pop", Quantity: 1, Datetime: outOfRange}); err != nil {
		t.Fatalf("create sale: %v", err)
	}

	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 8, 31, 23, 59, 59, 0, time.Local)

	sales, err := store.SalesByDateRange(start, end)
	if err != nil {
		t.Fatalf("range query: %v", err)
	}

	if len(sales) != 1 || sales[0].MenuItem != "Rendang" {
		t.Fatalf("expected only Rendang in range, got %+v", sales)
	}
}

func TestMemoryStorageListNewestFirst(t *testing.T) {
	store := NewMemoryStorage()

	first, _ := store.CreateExpense(&models.Expense{Description: "pertama", Datetime: time.Now()})
	// geser createdAt supaya urutannya deterministik
	older := *first
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	store.mu.Lock()
	store.expenses[older.ID] = older
	store.mu.Unlock()

	second, _ := store.CreateExpense(&models.Expense{Description: "kedua", Datetime: time.Now()})

	expenses, err := store.Expenses()
	if err != nil {
		t.Fatalf("list expenses: %v", err)
	}

	if len(expenses) != 2 || expenses[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", expenses)
	}
}

func TestMemoryStorageUsers(t *testing.T) {
	store := NewMemoryStorage()

	user, err := store.CreateUser(&models.User{
		FirstName: "Pemilik",
		LastName:  "Warung",
		Email:     "pemilik@kasresto.test",
		Password:  "hashed",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	byEmail, err := store.FindUserByEmail("pemilik@kasresto.test")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Fatalf("find by email returned wrong user")
	}

	if _, err := store.FindUserByEmail("tidakada@kasresto.test"); err == nil {
		t.Fatalf("expected error for unknown email")
	}

	byID, err := store.FindUserByID(user.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if byID.Email != user.Email {
		t.Fatalf("find by id returned wrong user")
	}
}
