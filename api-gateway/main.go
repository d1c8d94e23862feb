package main

import (
	"log"
	"net/http"
	"time"

	"speedyy-pricing/api-gateway/internal/gateway"
	"speedyy-pricing/config"

	"github.com/rs/cors"
)

func main() {
	log.SetPrefix("[gateway] ")
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	gw := gateway.NewGateway(gateway.Config{
		CartSvcURL:      cfg.CartSvcURL,
		AnalyticsSvcURL: cfg.AnalyticsSvcURL,
	}, &http.Client{Timeout: 15 * time.Second})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := config.GetEnv("GATEWAY_ADDR", ":8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
