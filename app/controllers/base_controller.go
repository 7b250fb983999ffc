package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/andriyanf/kasresto/app/models"
	"github.com/andriyanf/kasresto/app/storage"
	"github.com/andriyanf/kasresto/database/seeders"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/unrolled/render"
	"github.com/urfave/cli"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	DB        *gorm.DB
	Store     storage.Storage
	Router    *mux.Router
	AppConfig *AppConfig
}

type AppConfig struct {
	AppName       string
	AppEnv        string
	AppPort       string
	StorageDriver string
}

type DBConfig struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBDriver   string
}

type Result struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

var sessionStore *sessions.CookieStore

var sessionUser = "user-session"

var ren = render.New()

func initSessionStore() {
	key := os.Getenv("SESSION_KEY")
	if key == "" {
		// fallback dev; untuk production WAJIB isi SESSION_KEY di .env
		key = "dev-secret-change-me"
	}
	sessionStore = sessions.NewCookieStore([]byte(key))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 hari
		HttpOnly: true,
	}
}

func (server *Server) Initialize(appConfig AppConfig, dbConfig DBConfig) {
	fmt.Println("Welcome to " + appConfig.AppName)

	server.initializeStorage(appConfig, dbConfig)
	server.initializeAppConfig(appConfig)
	initSessionStore()
	server.initializeRoutes()
}

func (server *Server) Run(addr string) {
	fmt.Printf("Listening to port %s", addr)
	log.Fatal(http.ListenAndServe(addr, server.Router))
}

// initializeStorage memilih implementasi storage sekali di awal proses,
// lalu diinjeksikan ke handler lewat Server. STORAGE_DRIVER=memory
// dipakai untuk pengembangan tanpa database.
func (server *Server) initializeStorage(appConfig AppConfig, dbConfig DBConfig) {
	if appConfig.StorageDriver == "memory" {
		server.Store = storage.NewMemoryStorage()
		return
	}

	server.initializeDB(dbConfig)
	server.Store = storage.NewDatabaseStorage(server.DB)
}

func (server *Server) initializeDB(dbConfig DBConfig) {
	var err error
	if dbConfig.DBDriver == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", dbConfig.DBUser, dbConfig.DBPassword, dbConfig.DBHost, dbConfig.DBPort, dbConfig.DBName)
		server.DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta", dbConfig.DBHost, dbConfig.DBUser, dbConfig.DBPassword, dbConfig.DBName, dbConfig.DBPort)
		server.DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	if err != nil {
		panic("Failed on connecting to the database server")
	}
}

func (server *Server) initializeAppConfig(appConfig AppConfig) {
	server.AppConfig = &appConfig
}

func (server *Server) dbMigrate() {
	for _, model := range models.RegisterModels() {
		err := server.DB.Debug().AutoMigrate(model.Model)

		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Database migrated successfully.")
}

func (server *Server) InitCommands(config AppConfig, dbConfig DBConfig) {
	server.initializeDB(dbConfig)
	initSessionStore()

	cmdApp := cli.NewApp()
	cmdApp.Commands = []cli.Command{
		{
			Name: "db:migrate",
			Action: func(c *cli.Context) error {
				server.dbMigrate()
				return nil
			},
		},
		{
			Name: "db:seed",
			Action: func(c *cli.Context) error {
				err := seeders.DBSeed(server.DB)
				if err != nil {
					log.Fatal(err)
				}

				return nil
			},
		},
	}

	err := cmdApp.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func IsLoggedIn(r *http.Request) bool {
	if sessionStore == nil { // guard
		return false
	}
	session, _ := sessionStore.Get(r, sessionUser)
	return session.Values["id"] != nil
}

func ComparePassword(password string, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

func MakePassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(hashedPassword), err
}

func (server *Server) CurrentUser(w http.ResponseWriter, r *http.Request) *models.User {
	if !IsLoggedIn(r) {
		return nil
	}

	session, _ := sessionStore.Get(r, sessionUser)

	user, err := server.Store.FindUserByID(session.Values["id"].(string))
	if err != nil {
		session.Values["id"] = nil
		session.Save(r, w)
		return nil
	}

	return user
}

// RequireAuth: seluruh endpoint /api di belakang sesi login.
func (server *Server) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !IsLoggedIn(r) {
			_ = ren.JSON(w, http.StatusUnauthorized, map[string]interface{}{"message": "Unauthorized"})
			return
		}
		next(w, r)
	}
}
