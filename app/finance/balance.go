package finance

import (
	"github.com/andriyanf/kasresto/app/consts"
	"github.com/andriyanf/kasresto/app/models"
	"github.com/shopspring/decimal"
)

type BalanceSheet struct {
	CurrentAssets             decimal.Decimal `json:"currentAssets"`
	FixedAssets               decimal.Decimal `json:"fixedAssets"`
	TotalAssets               decimal.Decimal `json:"totalAssets"`
	CurrentLiabilities        decimal.Decimal `json:"currentLiabilities"`
	LongTermLiabilities       decimal.Decimal `json:"longTermLiabilities"`
	TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
	Capital                   decimal.Decimal `json:"capital"`
	RetainedEarnings          decimal.Decimal `json:"retainedEarnings"`
	TotalEquity               decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
	Difference                decimal.Decimal `json:"difference"`
	IsBalanced                bool            `json:"isBalanced"`
}

var currentAssetTypes = map[string]bool{
	consts.AssetTypeKas:       true,
	consts.AssetTypeBank:      true,
	consts.AssetTypeInventori: true,
}

var fixedAssetTypes = map[string]bool{
	consts.AssetTypePeralatan: true,
	consts.AssetTypeProperti:  true,
	consts.AssetTypeKendaraan: true,
}

var currentLiabilityTypes = map[string]bool{
	consts.LiabilityTypeUtangSupplier: true,
	consts.LiabilityTypeUtangGaji:     true,
	consts.LiabilityTypeUtangSewa:     true,
}

// utang-pajak dan lainnya tidak masuk kategori manapun di neraca,
// mengikuti perhitungan laporan yang sudah berjalan.
var longTermLiabilityTypes = map[string]bool{
	consts.LiabilityTypePinjamanBank: true,
}

func sumAssetsByType(assets []models.Asset, types map[string]bool) decimal.Decimal {
	sum := decimal.Zero
	for _, asset := range assets {
		if types[asset.Type] {
			sum = sum.Add(asset.Value)
		}
	}

	return sum
}

func sumLiabilitiesByType(liabilities []models.Liability, types map[string]bool) decimal.Decimal {
	sum := decimal.Zero
	for _, liability := range liabilities {
		if types[liability.Type] {
			sum = sum.Add(liability.Amount)
		}
	}

	return sum
}

// ComputeBalanceSheet menyusun neraca: aktiva lancar/tetap, kewajiban
// lancar/jangka panjang, modal plus laba ditahan periode berjalan.
// Neraca dianggap seimbang kalau selisihnya di bawah Rp 1 (toleransi pembulatan).
func ComputeBalanceSheet(salesInPeriod []models.Sale, expensesInPeriod []models.Expense, assets []models.Asset, capital []models.Capital, liabilities []models.Liability) BalanceSheet {
	currentAssets := sumAssetsByType(assets, currentAssetTypes)
	fixedAssets := sumAssetsByType(assets, fixedAssetTypes)
	totalAssets := currentAssets.Add(fixedAssets)

	currentLiabilities := sumLiabilitiesByType(liabilities, currentLiabilityTypes)
	longTermLiabilities := sumLiabilitiesByType(liabilities, longTermLiabilityTypes)
	totalLiabilities := currentLiabilities.Add(longTermLiabilities)

	totalCapital := SumCapitalAmounts(capital)
	retainedEarnings := SumSaleTotals(salesInPeriod).Sub(SumExpenseAmounts(expensesInPeriod))
	totalEquity := totalCapital.Add(retainedEarnings)

	totalLiabilitiesAndEquity := totalLiabilities.Add(totalEquity)
	difference := totalAssets.Sub(totalLiabilitiesAndEquity).Abs()

	return BalanceSheet{
		CurrentAssets:             currentAssets,
		FixedAssets:               fixedAssets,
		TotalAssets:               totalAssets,
		CurrentLiabilities:        currentLiabilities,
		LongTermLiabilities:       longTermLiabilities,
		TotalLiabilities:          totalLiabilities,
		Capital:                   totalCapital,
		RetainedEarnings:          retainedEarnings,
		TotalEquity:               totalEquity,
		TotalLiabilitiesAndEquity: totalLiabilitiesAndEquity,
		Difference:                difference,
		IsBalanced:                difference.LessThan(decimal.NewFromInt(1)),
	}
}
