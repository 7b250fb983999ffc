package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/andriyanf/kasresto/app/finance"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// formatRupiah: format nominal jadi Rp xxx untuk baris ringkasan laporan
func formatRupiah(amount decimal.Decimal) string {
	return fmt.Sprintf("Rp %s", amount.StringFixed(0))
}

func formatTanggal(t time.Time) string {
	return t.Format("02/01/2006")
}

func writeCSV(w http.ResponseWriter, title string, rows [][]string) {
	filename := slug.Make(title) + ".csv"

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	writer := csv.NewWriter(w)
	for _, row := range rows {
		_ = writer.Write(row)
	}
	writer.Flush()
}

// GET /api/reports/sales.csv?startDate=...&endDate=...
func (server *Server) SalesReportCSV(w http.ResponseWriter, r *http.Request) {
	sales, _, err := server.periodRecords(r)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch sales"})
		return
	}

	rows := [][]string{
		{"LAPORAN PENJUALAN", ""},
		{"Tanggal Cetak", formatTanggal(time.Now())},
		{"", ""},
		{"Tanggal", "Menu", "Kategori", "Qty", "Harga", "Total", "Catatan"},
	}

	for _, sale := range sales {
		rows = append(rows, []string{
			formatTanggal(sale.Datetime),
			sale.MenuItem,
			sale.Category,
			strconv.Itoa(sale.Quantity),
			sale.Price.String(),
			sale.Total.String(),
			sale.Notes,
		})
	}

	rows = append(rows,
		[]string{"", ""},
		[]string{"RINGKASAN", ""},
		[]string{"Total Penjualan", formatRupiah(finance.SumSaleTotals(sales))},
		[]string{"Total Transaksi", strconv.Itoa(len(sales))},
		[]string{"Total Qty", strconv.Itoa(finance.SumSaleQuantities(sales))},
	)

	writeCSV(w, "Laporan Penjualan", rows)
}

// GET /api/reports/expenses.csv?startDate=...&endDate=...
func (server *Server) ExpensesReportCSV(w http.ResponseWriter, r *http.Request) {
	_, expenses, err := server.periodRecords(r)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch expenses"})
		return
	}

	rows := [][]string{
		{"LAPORAN PENGELUARAN", ""},
		{"Tanggal Cetak", formatTanggal(time.Now())},
		{"", ""},
		{"Tanggal", "Kategori", "Deskripsi", "Jumlah", "Metode Bayar", "Catatan"},
	}

	for _, expense := range expenses {
		rows = append(rows, []string{
			formatTanggal(expense.Datetime),
			expense.Category,
			expense.Description,
			expense.Amount.String(),
			expense.PaymentMethod,
			expense.Notes,
		})
	}

	rows = append(rows,
		[]string{"", ""},
		[]string{"RINGKASAN", ""},
		[]string{"Total Pengeluaran", formatRupiah(finance.SumExpenseAmounts(expenses))},
		[]string{"Total Transaksi", strconv.Itoa(len(expenses))},
	)

	writeCSV(w, "Laporan Pengeluaran", rows)
}

type transactionRow struct {
	date        time.Time
	kind        string
	description string
	amount      decimal.Decimal
	isIncome    bool
}

// GET /api/reports/transactions.csv?startDate=...&endDate=...
// Gabungan pemasukan dan pengeluaran, terbaru dulu.
func (server *Server) TransactionsReportCSV(w http.ResponseWriter, r *http.Request) {
	sales, expenses, err := server.periodRecords(r)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch transactions"})
		return
	}

	var transactions []transactionRow
	for _, sale := range sales {
		transactions = append(transactions, transactionRow{
			date:        sale.Datetime,
			kind:        "Penjualan",
			description: fmt.Sprintf("Penjualan %s (%s)", sale.MenuItem, sale.Category),
			amount:      sale.Total,
			isIncome:    true,
		})
	}
	for _, expense := range expenses {
		transactions = append(transactions, transactionRow{
			date:        expense.Datetime,
			kind:        "Pengeluaran",
			description: fmt.Sprintf("%s - %s", expense.Category, expense.Description),
			amount:      expense.Amount,
			isIncome:    false,
		})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].date.After(transactions[j].date)
	})

	rows := [][]string{
		{"LAPORAN TRANSAKSI", ""},
		{"Tanggal Cetak", formatTanggal(time.Now())},
		{"", ""},
		{"Tanggal", "Tipe", "Deskripsi", "Jumlah", "Kategori"},
	}

	for _, transaction := range transactions {
		amount := transaction.amount
		category := "Pemasukan"
		if !transaction.isIncome {
			amount = amount.Neg()
			category = "Pengeluaran"
		}

		rows = append(rows, []string{
			formatTanggal(transaction.date),
			transaction.kind,
			transaction.description,
			amount.String(),
			category,
		})
	}

	totalIncome := finance.SumSaleTotals(sales)
	totalExpense := finance.SumExpenseAmounts(expenses)

	rows = append(rows,
		[]string{"", ""},
		[]string{"RINGKASAN", ""},
		[]string{"Total Pemasukan", formatRupiah(totalIncome)},
		[]string{"Total Pengeluaran", formatRupiah(totalExpense)},
		[]string{"Saldo Bersih", formatRupiah(totalIncome.Sub(totalExpense))},
	)

	writeCSV(w, "Laporan Transaksi", rows)
}

// GET /api/reports/balance-sheet.csv?startDate=...&endDate=...
func (server *Server) BalanceSheetReportCSV(w http.ResponseWriter, r *http.Request) {
	sales, expenses, err := server.periodRecords(r)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch balance sheet"})
		return
	}

	assets, err := server.Store.Assets()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch balance sheet"})
		return
	}

	capital, err := server.Store.Capital()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch balance sheet"})
		return
	}

	liabilities, err := server.Store.Liabilities()
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch balance sheet"})
		return
	}

	neraca := finance.ComputeBalanceSheet(sales, expenses, assets, capital, liabilities)

	rows := [][]string{
		{"NERACA", ""},
		{"Tanggal Cetak", formatTanggal(time.Now())},
		{"", ""},
		{"AKTIVA", ""},
		{"Aktiva Lancar", formatRupiah(neraca.CurrentAssets)},
		{"Aktiva Tetap", formatRupiah(neraca.FixedAssets)},
		{"Total Aktiva", formatRupiah(neraca.TotalAssets)},
		{"", ""},
		{"KEWAJIBAN & MODAL", ""},
		{"Kewajiban Lancar", formatRupiah(neraca.CurrentLiabilities)},
		{"Kewajiban Jangka Panjang", formatRupiah(neraca.LongTermLiabilities)},
		{"Total Kewajiban", formatRupiah(neraca.TotalLiabilities)},
		{"", ""},
		{"Modal", formatRupiah(neraca.Capital)},
		{"Laba Ditahan", formatRupiah(neraca.RetainedEarnings)},
		{"Total Modal", formatRupiah(neraca.TotalEquity)},
		{"", ""},
		{"Total Kewajiban & Modal", formatRupiah(neraca.TotalLiabilitiesAndEquity)},
	}

	writeCSV(w, "Neraca", rows)
}

// GET /api/reports/menu-performance.csv?startDate=...&endDate=...
func (server *Server) MenuPerformanceReportCSV(w http.ResponseWriter, r *http.Request) {
	sales, _, err := server.periodRecords(r)
	if err != nil {
		_ = ren.JSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Failed to fetch menu performance"})
		return
	}

	stats := finance.RankMenuPerformance(sales)

	rows := [][]string{
		{"Rank", "Menu", "Total Penjualan", "Total Qty", "Total Revenue", "Harga Rata-rata", "Dine In", "Takeaway", "Online", "Catering"},
	}

	for _, stat := range stats {
		rows = append(rows, []string{
			strconv.Itoa(stat.PerformanceRank),
			stat.MenuItem,
			strconv.Itoa(stat.TotalSales),
			strconv.Itoa(stat.TotalQuantity),
			stat.TotalRevenue.String(),
			stat.AveragePrice.StringFixed(0),
			strconv.Itoa(stat.SalesByCategory["dine-in"]),
			strconv.Itoa(stat.SalesByCategory["takeaway"]),
			strconv.Itoa(stat.SalesByCategory["online"]),
			strconv.Itoa(stat.SalesByCategory["catering"]),
		})
	}

	writeCSV(w, "Laporan Performa Menu", rows)
}
