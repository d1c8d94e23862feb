package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"speedyy-pricing/agg-svc/internal/service"
	"speedyy-pricing/agg-svc/internal/storage"
	"speedyy-pricing/config"
)

func main() {
	log.SetPrefix("[agg-svc] ")
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.InvoiceTopic, "agg-svc-invoice-audit")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb))
	consumer.Start(ctx)
}
