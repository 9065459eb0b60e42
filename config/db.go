package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"canteen-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "canteen_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Migrate applies the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Canteen{},
		&models.DietaryTag{},
		&models.Allergen{},
		&models.Room{},
		&models.Dish{},
		&models.Package{},
		&models.DailyMenu{},
		&models.RatingReview{},
		&models.BanquetReservation{},
		&models.ReservationDishItem{},
		&models.MealOrder{},
		&models.OrderItem{},
	)
}

// SeedDatabase ensures a default admin account and the base catalog lookup
// rows exist.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		password := envOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Username: "admin",
				Email:    "admin@canteen.local",
				Password: string(hash),
				Role:     models.RoleAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var tagCount int64
	DB.Model(&models.DietaryTag{}).Count(&tagCount)
	if tagCount == 0 {
		tags := []models.DietaryTag{
			{Name: "Vegetarian", Description: "No meat or fish"},
			{Name: "Vegan", Description: "No animal products"},
			{Name: "Halal", Description: "Halal certified"},
			{Name: "Gluten-Free", Description: "No gluten-containing grains"},
		}
		DB.Create(&tags)
		log.Println("Dietary tags seeded")
	}

	var allergenCount int64
	DB.Model(&models.Allergen{}).Count(&allergenCount)
	if allergenCount == 0 {
		allergens := []models.Allergen{
			{Name: "Peanut"},
			{Name: "Shellfish"},
			{Name: "Dairy"},
			{Name: "Egg"},
			{Name: "Soy"},
		}
		DB.Create(&allergens)
		log.Println("Allergens seeded")
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db
	if err := Migrate(DB); err != nil {
		return err
	}
	SeedDatabase()
	return nil
}
