// Package storage menyimpan lima buku catatan (penjualan, pengeluaran,
// aset, modal, kewajiban) plus akun pengguna. Ada dua implementasi:
// MemoryStorage untuk pengembangan dan pengujian, DatabaseStorage untuk
// produksi. Pilihan implementasi ditentukan sekali saat proses start.
package storage

import (
	"time"

	"github.com/andriyanf/kasresto/app/models"
)

type Storage interface {
	// Catatan tidak pernah diubah; hanya dibuat dan dihapus.
	// Delete mengembalikan false kalau id tidak ditemukan, tanpa error.
	CreateSale(sale *models.Sale) (*models.Sale, error)
	Sales() ([]models.Sale, error)
	SalesByDateRange(start, end time.Time) ([]models.Sale, error)
	DeleteSale(id string) (bool, error)

	CreateExpense(expense *models.Expense) (*models.Expense, error)
	Expenses() ([]models.Expense, error)
	ExpensesByDateRange(start, end time.Time) ([]models.Expense, error)
	DeleteExpense(id string) (bool, error)

	CreateAsset(asset *models.Asset) (*models.Asset, error)
	Assets() ([]models.Asset, error)
	DeleteAsset(id string) (bool, error)

	CreateCapital(capital *models.Capital) (*models.Capital, error)
	Capital() ([]models.Capital, error)
	DeleteCapital(id string) (bool, error)

	CreateLiability(liability *models.Liability) (*models.Liability, error)
	Liabilities() ([]models.Liability, error)
	DeleteLiability(id string) (bool, error)

	CreateUser(user *models.User) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id string) (*models.User, error)
}
