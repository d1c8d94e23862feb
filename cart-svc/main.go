package main

import (
	"log"

	httpapi "speedyy-pricing/cart-svc/internal/api/http"
	"speedyy-pricing/cart-svc/internal/pricing"
	"speedyy-pricing/cart-svc/internal/service"
	"speedyy-pricing/cart-svc/internal/storage"
	"speedyy-pricing/config"
)

func main() {
	log.SetPrefix("[cart-svc] ")
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg.InvoiceTopic)
	defer writer.Close()

	repository := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, cfg.QuoteTTL)
	publisher := storage.NewKafkaPublisher(writer)
	qr := service.UPIQRGenerator{VPA: cfg.PaymentVPA, PayeeName: cfg.PaymentPayeeName}

	carts := service.NewCartService(repository, repository, cache, publisher, qr, service.Options{
		Charges: pricing.ChargeConfig{
			TransactionChargeRate:       cfg.TransactionChargeRate,
			TransactionRefundChargeRate: cfg.TransactionRefundChargeRate,
		},
		NotaDisplayName: cfg.NotaDisplayName,
	})

	handler := httpapi.NewHandler(carts)
	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler))
}
