package finance

import (
	"sort"

	"github.com/andriyanf/kasresto/app/models"
	"github.com/shopspring/decimal"
)

type MenuStat struct {
	MenuItem      string          `json:"menuItem"`
	TotalSales    int             `json:"totalSales"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	// Rata-rata harga satuan per transaksi, bukan revenue dibagi qty.
	AveragePrice    decimal.Decimal `json:"averagePrice"`
	SalesByCategory map[string]int  `json:"salesByCategory"`
	PerformanceRank int             `json:"performanceRank"`
}

// RankMenuPerformance mengelompokkan penjualan per nama menu (case-sensitive)
// lalu mengurutkan berdasarkan revenue terbesar. Menu dengan revenue sama
// mempertahankan urutan kemunculan pertamanya.
func RankMenuPerformance(salesInPeriod []models.Sale) []MenuStat {
	grouped := map[string]*MenuStat{}
	priceSums := map[string]decimal.Decimal{}
	var order []string

	for _, sale := range salesInPeriod {
		stat, ok := grouped[sale.MenuItem]
		if !ok {
			stat = &MenuStat{
				MenuItem:        sale.MenuItem,
				SalesByCategory: map[string]int{},
			}
			grouped[sale.MenuItem] = stat
			priceSums[sale.MenuItem] = decimal.Zero
			order = append(order, sale.MenuItem)
		}

		stat.TotalSales += 1
		stat.TotalQuantity += sale.Quantity
		stat.TotalRevenue = stat.TotalRevenue.Add(sale.Total)
		stat.SalesByCategory[sale.Category] += sale.Quantity
		priceSums[sale.MenuItem] = priceSums[sale.MenuItem].Add(sale.Price)
	}

	stats := make([]MenuStat, 0, len(order))
	for _, menuItem := range order {
		stat := grouped[menuItem]
		stat.AveragePrice = Average(priceSums[menuItem], stat.TotalSales)
		stats = append(stats, *stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalRevenue.GreaterThan(stats[j].TotalRevenue)
	})

	for i := range stats {
		stats[i].PerformanceRank = i + 1
	}

	return stats
}
