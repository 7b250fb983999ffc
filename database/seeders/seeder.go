package seeders

import (
	"math/rand"
	"time"

	"github.com/andriyanf/kasresto/app/consts"
	"github.com/andriyanf/kasresto/app/models"
	"github.com/bxcodec/faker/v3"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var menuItems = []string{
	"Rendang",
	"Ayam Pop",
	"Ayam Bakar",
	"Gulai Tunjang",
	"Dendeng Balado",
	"Ikan Bakar",
	"Telur Dadar",
	"Sayur Nangka",
	"Perkedel",
	"Es Teh Manis",
}

var menuPrices = map[string]int64{
	"Rendang":        25000,
	"Ayam Pop":       22000,
	"Ayam Bakar":     20000,
	"Gulai Tunjang":  23000,
	"Dendeng Balado": 28000,
	"Ikan Bakar":     24000,
	"Telur Dadar":    10000,
	"Sayur Nangka":   8000,
	"Perkedel":       5000,
	"Es Teh Manis":   6000,
}

var expenseCategories = []string{
	"Bahan Baku",
	"Gaji Karyawan",
	"Listrik & Air",
	"Sewa Tempat",
	"Transportasi",
}

var paymentMethods = []string{"Tunai", "Transfer Bank", "QRIS"}

func seedUsers(db *gorm.DB) error {
	password, err := hashPassword("password123")
	if err != nil {
		return err
	}

	users := []models.User{
		{
			FirstName: "Pemilik",
			LastName:  "Warung",
			Email:     "pemilik@kasresto.test",
			Password:  password,
		},
		{
			FirstName: faker.FirstName(),
			LastName:  faker.LastName(),
			Email:     faker.Email(),
			Password:  password,
		},
	}

	for _, user := range users {
		var exist models.User
		err := db.Where("email = ?", user.Email).First(&exist).Error
		if err == nil {
			continue
		}

		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedSales(db *gorm.DB) error {
	for i := 0; i < 50; i++ {
		menuItem := menuItems[rand.Intn(len(menuItems))]
		quantity := rand.Intn(5) + 1
		price := decimal.NewFromInt(menuPrices[menuItem])

		sale := models.Sale{
			MenuItem: menuItem,
			Category: consts.SaleCategories[rand.Intn(len(consts.SaleCategories))],
			Quantity: quantity,
			Price:    price,
			Total:    price.Mul(decimal.NewFromInt(int64(quantity))),
			Datetime: time.Now().AddDate(0, 0, -rand.Intn(30)),
		}

		if err := db.Create(&sale).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedExpenses(db *gorm.DB) error {
	for i := 0; i < 20; i++ {
		expense := models.Expense{
			Category:      expenseCategories[rand.Intn(len(expenseCategories))],
			Description:   faker.Sentence(),
			Amount:        decimal.NewFromInt(int64(rand.Intn(40)+10) * 10000),
			Datetime:      time.Now().AddDate(0, 0, -rand.Intn(30)),
			PaymentMethod: paymentMethods[rand.Intn(len(paymentMethods))],
		}

		if err := db.Create(&expense).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedAssets(db *gorm.DB) error {
	assets := []models.Asset{
		{Type: consts.AssetTypeKas, Name: "Kas Harian", Value: decimal.NewFromInt(15000000)},
		{Type: consts.AssetTypeBank, Name: "Rekening Operasional", Value: decimal.NewFromInt(45000000)},
		{Type: consts.AssetTypeInventori, Name: "Stok Bahan Baku", Value: decimal.NewFromInt(8000000)},
		{Type: consts.AssetTypePeralatan, Name: "Peralatan Dapur", Value: decimal.NewFromInt(35000000)},
		{Type: consts.AssetTypeProperti, Name: "Bangunan Rumah Makan", Value: decimal.NewFromInt(250000000)},
		{Type: consts.AssetTypeKendaraan, Name: "Motor Antar Pesanan", Value: decimal.NewFromInt(18000000)},
	}

	for i := range assets {
		assets[i].AcquisitionDate = time.Now().AddDate(-1, -rand.Intn(12), 0)

		if err := db.Create(&assets[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedCapital(db *gorm.DB) error {
	capital := []models.Capital{
		{Source: "Modal Pribadi", Amount: decimal.NewFromInt(200000000)},
		{Source: "Investor Keluarga", Amount: decimal.NewFromInt(100000000)},
	}

	for i := range capital {
		capital[i].Date = time.Now().AddDate(-1, 0, 0)

		if err := db.Create(&capital[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedLiabilities(db *gorm.DB) error {
	liabilities := []models.Liability{
		{Type: consts.LiabilityTypeUtangSupplier, Creditor: "Pemasok Daging", Amount: decimal.NewFromInt(7500000)},
		{Type: consts.LiabilityTypePinjamanBank, Creditor: "Bank Nagari", Amount: decimal.NewFromInt(50000000)},
		{Type: consts.LiabilityTypeUtangGaji, Creditor: "Karyawan", Amount: decimal.NewFromInt(12000000)},
		{Type: consts.LiabilityTypeUtangSewa, Creditor: "Pemilik Ruko", Amount: decimal.NewFromInt(10000000)},
	}

	for i := range liabilities {
		liabilities[i].DueDate = time.Now().AddDate(0, rand.Intn(6)+1, 0)
		liabilities[i].Status = consts.LiabilityStatusPending

		if err := db.Create(&liabilities[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

func DBSeed(db *gorm.DB) error {
	seedFns := []func(*gorm.DB) error{
		seedUsers,
		seedSales,
		seedExpenses,
		seedAssets,
		seedCapital,
		seedLiabilities,
	}

	for _, seed := range seedFns {
		if err := seed(db); err != nil {
			return err
		}
	}

	return nil
}
