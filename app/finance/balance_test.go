package finance

import (
	"testing"

	"github.com/andriyanf/kasresto/app/models"
)

func TestBalanceSheetAssetBuckets(t *testing.T) {
	assets := []models.Asset{
		{Type: "kas", Value: dec("15000000")},
		{Type: "peralatan", Value: dec("85000000")},
	}

	sheet := ComputeBalanceSheet(nil, nil, assets, nil, nil)

	if !sheet.CurrentAssets.Equal(dec("15000000")) {
		t.Fatalf("currentAssets = %s, want 15000000", sheet.CurrentAssets)
	}
	if !sheet.FixedAssets.Equal(dec("85000000")) {
		t.Fatalf("fixedAssets = %s, want 85000000", sheet.FixedAssets)
	}
	if !sheet.TotalAssets.Equal(dec("100000000")) {
		t.Fatalf("totalAssets = %s, want 100000000", sheet.TotalAssets)
	}
}

func TestBalanceSheetLiabilityBuckets(t *testing.T) {
	liabilities := []models.Liability{
		{Type: "utang-supplier", Amount: dec("7500000")},
		{Type: "utang-gaji", Amount: dec("12000000")},
		{Type: "utang-sewa", Amount: dec("10000000")},
		{Type: "pinjaman-bank", Amount: dec("50000000")},
		// dua tipe berikut tidak masuk kategori manapun di neraca
		{Type: "utang-pajak", Amount: dec("5000000")},
		{Type: "lainnya", Amount: dec("3000000")},
	}

	sheet := ComputeBalanceSheet(nil, nil, nil, nil, liabilities)

	if !sheet.CurrentLiabilities.Equal(dec("29500000")) {
		t.Fatalf("currentLiabilities = %s, want 29500000", sheet.CurrentLiabilities)
	}
	if !sheet.LongTermLiabilities.Equal(dec("50000000")) {
		t.Fatalf("longTermLiabilities = %s, want 50000000", sheet.LongTermLiabilities)
	}
	if !sheet.TotalLiabilities.Equal(dec("79500000")) {
		t.Fatalf("totalLiabilities = %s, want 79500000 (tanpa utang-pajak dan lainnya)", sheet.TotalLiabilities)
	}
}

func TestBalanceSheetIdentity(t *testing.T) {
	// aktiva 100jt = kewajiban 30jt + modal 50jt + laba ditahan 20jt
	assets := []models.Asset{
		{Type: "bank", Value: dec("40000000")},
		{Type: "properti", Value: dec("60000000")},
	}
	liabilities := []models.Liability{
		{Type: "pinjaman-bank", Amount: dec("30000000")},
	}
	capital := []models.Capital{
		{Amount: dec("50000000")},
	}
	sales := []models.Sale{
		{Total: dec("35000000")},
	}
	expenses := []models.Expense{
		{Amount: dec("15000000")},
	}

	sheet := ComputeBalanceSheet(sales, expenses, assets, capital, liabilities)

	if !sheet.RetainedEarnings.Equal(dec("20000000")) {
		t.Fatalf("retainedEarnings = %s, want 20000000", sheet.RetainedEarnings)
	}
	if !sheet.TotalEquity.Equal(dec("70000000")) {
		t.Fatalf("totalEquity = %s, want 70000000", sheet.TotalEquity)
	}
	if !sheet.TotalLiabilitiesAndEquity.Equal(dec("100000000")) {
		t.Fatalf("totalLiabilitiesAndEquity = %s, want 100000000", sheet.TotalLiabilitiesAndEquity)
	}
	if !sheet.IsBalanced {
		t.Fatalf("expected balanced sheet, difference %s", sheet.Difference)
	}
	if !sheet.Difference.IsZero() {
		t.Fatalf("difference = %s, want 0", sheet.Difference)
	}
}

func TestBalanceSheetImbalanceDetection(t *testing.T) {
	assets := []models.Asset{
		{Type: "bank", Value: dec("41000000")}, // digeser 1.000.000
		{Type: "properti", Value: dec("60000000")},
	}
	liabilities := []models.Liability{
		{Type: "pinjaman-bank", Amount: dec("30000000")},
	}
	capital := []models.Capital{
		{Amount: dec("50000000")},
	}
	sales := []models.Sale{
		{Total: dec("35000000")},
	}
	expenses := []models.Expense{
		{Amount: dec("15000000")},
	}

	sheet := ComputeBalanceSheet(sales, expenses, assets, capital, liabilities)

	if sheet.IsBalanced {
		t.Fatalf("expected imbalanced sheet")
	}
	if !sheet.Difference.Equal(dec("1000000")) {
		t.Fatalf("difference = %s, want 1000000", sheet.Difference)
	}
}

func TestBalanceSheetEmptyPeriod(t *testing.T) {
	sheet := ComputeBalanceSheet(nil, nil, nil, nil, nil)

	if !sheet.RetainedEarnings.IsZero() {
		t.Fatalf("retainedEarnings = %s, want 0", sheet.RetainedEarnings)
	}
	if !sheet.IsBalanced {
		t.Fatalf("empty sheet should balance at 0")
	}
}
