package consts

// Kategori penjualan
const (
	SaleCategoryDineIn   = "dine-in"
	SaleCategoryTakeaway = "takeaway"
	SaleCategoryOnline   = "online"
	SaleCategoryCatering = "catering"
)

// Jenis aset
const (
	AssetTypeKas       = "kas"
	AssetTypeBank      = "bank"
	AssetTypePeralatan = "peralatan"
	AssetTypeInventori = "inventori"
	AssetTypeProperti  = "properti"
	AssetTypeKendaraan = "kendaraan"
)

// Jenis kewajiban
const (
	LiabilityTypeUtangSupplier = "utang-supplier"
	LiabilityTypePinjamanBank  = "pinjaman-bank"
	LiabilityTypeUtangGaji     = "utang-gaji"
	LiabilityTypeUtangPajak    = "utang-pajak"
	LiabilityTypeUtangSewa     = "utang-sewa"
	LiabilityTypeLainnya       = "lainnya"
)

// Status kewajiban
const (
	LiabilityStatusPending = "pending"
	LiabilityStatusPartial = "partial"
	LiabilityStatusPaid    = "paid"
)

var SaleCategories = []string{
	SaleCategoryDineIn,
	SaleCategoryTakeaway,
	SaleCategoryOnline,
	SaleCategoryCatering,
}

var AssetTypes = []string{
	AssetTypeKas,
	AssetTypeBank,
	AssetTypePeralatan,
	AssetTypeInventori,
	AssetTypeProperti,
	AssetTypeKendaraan,
}

var LiabilityTypes = []string{
	LiabilityTypeUtangSupplier,
	LiabilityTypePinjamanBank,
	LiabilityTypeUtangGaji,
	LiabilityTypeUtangPajak,
	LiabilityTypeUtangSewa,
	LiabilityTypeLainnya,
}
