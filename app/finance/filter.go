package finance

import (
	"time"

	"github.com/andriyanf/kasresto/app/models"
)

// inRange: inklusif di kedua ujung rentang.
func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// FilterSalesByRange mengambil penjualan dengan datetime di dalam [start, end].
// Kalau start > end hasilnya kosong, bukan error. Urutan input dipertahankan.
func FilterSalesByRange(sales []models.Sale, start, end time.Time) []models.Sale {
	var filtered []models.Sale

	for _, sale := range sales {
		if inRange(sale.Datetime, start, end) {
			filtered = append(filtered, sale)
		}
	}

	return filtered
}

// FilterExpensesByRange mengambil pengeluaran dengan datetime di dalam [start, end].
func FilterExpensesByRange(expenses []models.Expense, start, end time.Time) []models.Expense {
	var filtered []models.Expense

	for _, expense := range expenses {
		if inRange(expense.Datetime, start, end) {
			filtered = append(filtered, expense)
		}
	}

	return filtered
}

// TodayRange: batas hari kalender lokal, 00:00:00 sampai 23:59:59.
func TodayRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	return start, end
}
