package finance

import (
	"github.com/andriyanf/kasresto/app/models"
	"github.com/shopspring/decimal"
)

type Summary struct {
	DailySales       decimal.Decimal `json:"dailySales"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	DailyExpenses    decimal.Decimal `json:"dailyExpenses"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	DailyCapital     decimal.Decimal `json:"dailyCapital"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
}

func SumSaleTotals(sales []models.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, sale := range sales {
		sum = sum.Add(sale.Total)
	}

	return sum
}

func SumSaleQuantities(sales []models.Sale) int {
	total := 0
	for _, sale := range sales {
		total += sale.Quantity
	}

	return total
}

func SumExpenseAmounts(expenses []models.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, expense := range expenses {
		sum = sum.Add(expense.Amount)
	}

	return sum
}

func SumAssetValues(assets []models.Asset) decimal.Decimal {
	sum := decimal.Zero
	for _, asset := range assets {
		sum = sum.Add(asset.Value)
	}

	return sum
}

func SumCapitalAmounts(capital []models.Capital) decimal.Decimal {
	sum := decimal.Zero
	for _, cap := range capital {
		sum = sum.Add(cap.Amount)
	}

	return sum
}

func SumLiabilityAmounts(liabilities []models.Liability) decimal.Decimal {
	sum := decimal.Zero
	for _, liability := range liabilities {
		sum = sum.Add(liability.Amount)
	}

	return sum
}

// Average: sum / count. Count 0 menghasilkan 0, bukan pembagian nol.
func Average(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}

	return sum.Div(decimal.NewFromInt(int64(count)))
}

// ParseAmount membaca nominal dari teks bebas. Nilai yang tidak bisa
// dibaca dihitung 0 supaya satu baris rusak tidak menggagalkan rekap.
func ParseAmount(value string) decimal.Decimal {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}

	return amount
}

// BuildDailySummary merangkum metrik harian untuk dashboard.
// DailyCapital dan TotalLiabilities dihitung dari seluruh riwayat,
// bukan per tanggal, mengikuti laporan lama.
func BuildDailySummary(salesOfDay []models.Sale, expensesOfDay []models.Expense, assets []models.Asset, capital []models.Capital, liabilities []models.Liability) Summary {
	dailySales := SumSaleTotals(salesOfDay)
	dailyExpenses := SumExpenseAmounts(expensesOfDay)

	return Summary{
		DailySales:       dailySales,
		NetProfit:        dailySales.Sub(dailyExpenses),
		DailyExpenses:    dailyExpenses,
		TotalAssets:      SumAssetValues(assets),
		DailyCapital:     SumCapitalAmounts(capital),
		TotalLiabilities: SumLiabilityAmounts(liabilities),
	}
}
