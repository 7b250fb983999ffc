package controllers

import (
	"github.com/gorilla/mux"
)

func (server *Server) initializeRoutes() {
	server.Router = mux.NewRouter()

	// AUTH
	server.Router.HandleFunc("/register", server.DoRegister).Methods("POST")
	server.Router.HandleFunc("/login", server.DoLogin).Methods("POST")
	server.Router.HandleFunc("/logout", server.Logout).Methods("GET")
	server.Router.HandleFunc("/api/auth/user", server.RequireAuth(server.AuthUser)).Methods("GET")

	// PENJUALAN
	server.Router.HandleFunc("/api/sales", server.RequireAuth(server.SalesIndex)).Methods("GET")
	server.Router.HandleFunc("/api/sales", server.RequireAuth(server.SalesCreate)).Methods("POST")
	server.Router.HandleFunc("/api/sales/{id}", server.RequireAuth(server.SalesDelete)).Methods("DELETE")

	// PENGELUARAN
	server.Router.HandleFunc("/api/expenses", server.RequireAuth(server.ExpensesIndex)).Methods("GET")
	server.Router.HandleFunc("/api/expenses", server.RequireAuth(server.ExpensesCreate)).Methods("POST")
	server.Router.HandleFunc("/api/expenses/{id}", server.RequireAuth(server.ExpensesDelete)).Methods("DELETE")

	// ASET
	server.Router.HandleFunc("/api/assets", server.RequireAuth(server.AssetsIndex)).Methods("GET")
	server.Router.HandleFunc("/api/assets", server.RequireAuth(server.AssetsCreate)).Methods("POST")
	server.Router.HandleFunc("/api/assets/{id}", server.RequireAuth(server.AssetsDelete)).Methods("DELETE")

	// MODAL
	server.Router.HandleFunc("/api/capital", server.RequireAuth(server.CapitalIndex)).Methods("GET")
	server.Router.HandleFunc("/api/capital", server.RequireAuth(server.CapitalCreate)).Methods("POST")
	server.Router.HandleFunc("/api/capital/{id}", server.RequireAuth(server.CapitalDelete)).Methods("DELETE")

	// KEWAJIBAN
	server.Router.HandleFunc("/api/liabilities", server.RequireAuth(server.LiabilitiesIndex)).Methods("GET")
	server.Router.HandleFunc("/api/liabilities", server.RequireAuth(server.LiabilitiesCreate)).Methods("POST")
	server.Router.HandleFunc("/api/liabilities/{id}", server.RequireAuth(server.LiabilitiesDelete)).Methods("DELETE")

	// =======================
	//        LAPORAN
	// =======================
	server.Router.HandleFunc("/api/financial-summary", server.RequireAuth(server.FinancialSummary)).Methods("GET")
	server.Router.HandleFunc("/api/balance-sheet", server.RequireAuth(server.BalanceSheetShow)).Methods("GET")
	server.Router.HandleFunc("/api/menu-performance", server.RequireAuth(server.MenuPerformance)).Methods("GET")

	// EXPORT CSV
	server.Router.HandleFunc("/api/reports/sales.csv", server.RequireAuth(server.SalesReportCSV)).Methods("GET")
	server.Router.HandleFunc("/api/reports/expenses.csv", server.RequireAuth(server.ExpensesReportCSV)).Methods("GET")
	server.Router.HandleFunc("/api/reports/transactions.csv", server.RequireAuth(server.TransactionsReportCSV)).Methods("GET")
	server.Router.HandleFunc("/api/reports/balance-sheet.csv", server.RequireAuth(server.BalanceSheetReportCSV)).Methods("GET")
	server.Router.HandleFunc("/api/reports/menu-performance.csv", server.RequireAuth(server.MenuPerformanceReportCSV)).Methods("GET")
}
