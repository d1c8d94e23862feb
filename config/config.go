package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Config is the process configuration shared by the services. Each service
// reads the fields it needs.
type Config struct {
	HTTPAddr     string
	InvoiceTopic string
	QuoteTTL     time.Duration

	// Percent rates applied to the order total.
	TransactionChargeRate       decimal.Decimal
	TransactionRefundChargeRate decimal.Decimal

	NotaDisplayName  string
	PaymentVPA       string
	PaymentPayeeName string

	CartSvcURL      string
	AnalyticsSvcURL string
}

// LoadEnv loads a .env file into the process environment when one exists.
// Variables already set take precedence.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:         GetEnv("HTTP_ADDR", ":8084"),
		InvoiceTopic:     GetEnv("INVOICE_TOPIC", "invoices"),
		NotaDisplayName:  GetEnv("NOTA_DISPLAY_NAME", "None"),
		PaymentVPA:       GetEnv("PAYMENT_VPA", ""),
		PaymentPayeeName: GetEnv("PAYMENT_PAYEE_NAME", "Speedyy"),
		CartSvcURL:       GetEnv("CART_SVC_URL", "http://localhost:8084"),
		AnalyticsSvcURL:  GetEnv("ANALYTICS_SVC_URL", "http://localhost:8085"),
	}

	ttl, err := time.ParseDuration(GetEnv("QUOTE_TTL", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid QUOTE_TTL: %w", err)
	}
	cfg.QuoteTTL = ttl

	if cfg.TransactionChargeRate, err = decimal.NewFromString(GetEnv("TRANSACTION_CHARGE_RATE", "0")); err != nil {
		return Config{}, fmt.Errorf("invalid TRANSACTION_CHARGE_RATE: %w", err)
	}
	if cfg.TransactionRefundChargeRate, err = decimal.NewFromString(GetEnv("TRANSACTION_REFUND_CHARGE_RATE", "0")); err != nil {
		return Config{}, fmt.Errorf("invalid TRANSACTION_REFUND_CHARGE_RATE: %w", err)
	}
	return cfg, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
