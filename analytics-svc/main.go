package main

import (
	"log"

	httpapi "speedyy-pricing/analytics-svc/internal/api/http"
	"speedyy-pricing/analytics-svc/internal/service"
	"speedyy-pricing/config"
)

func main() {
	log.SetPrefix("[analytics-svc] ")
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	handler := httpapi.NewHandler(service.NewAnalyticsService(db, rdb))
	httpapi.StartServer(config.GetEnv("ANALYTICS_ADDR", ":8085"), httpapi.NewRouter(handler))
}
