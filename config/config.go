package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ShopConfig carries the storefront identity used in order responses and
// confirmation emails. It is loaded once at boot and passed around
// explicitly instead of being looked up ad hoc.
type ShopConfig struct {
	ShopName       string
	ShopPhone      string
	ShopEmail      string
	ShopAddress    string
	CurrencySymbol string
}

func LoadShopConfig() ShopConfig {
	return ShopConfig{
		ShopName:       getEnv("SHOP_NAME", "Pizza Delivery Shop"),
		ShopPhone:      os.Getenv("SHOP_PHONE"),
		ShopEmail:      os.Getenv("SHOP_EMAIL"),
		ShopAddress:    os.Getenv("SHOP_ADDRESS"),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "$"),
	}
}

// MailConfig is the SMTP account used for order confirmations. Mail is
// optional: with no SMTP_HOST the shop simply never sends email.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func LoadMailConfig() MailConfig {
	port, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	return MailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnv("SMTP_FROM", os.Getenv("SHOP_EMAIL")),
	}
}

func (mc MailConfig) Enabled() bool {
	return mc.Host != ""
}

// InitDB opens the shop database. MySQL in production, SQLite when
// DB_DRIVER=sqlite (handy for local runs; tests use in-memory SQLite).
func InitDB() (*gorm.DB, error) {
	if getEnv("DB_DRIVER", "mysql") == "sqlite" {
		return gorm.Open(sqlite.Open(getEnv("DB_PATH", "pizza-shop.db")), &gorm.Config{})
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "pizza_shop"),
	)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
