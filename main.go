package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"sabor-do-para/config"
	httpapi "sabor-do-para/internal/api/http"
	"sabor-do-para/internal/cart"
	"sabor-do-para/internal/service"
	"sabor-do-para/internal/storage"
	ordersync "sabor-do-para/internal/sync"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	writer := config.NewKafkaWriter(config.OrdersTopic)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	sales := storage.NewSalesCache(rdb, 30*24*time.Hour)

	var area service.AreaPolicy = service.AllowAllPolicy{}
	if zones := config.Getenv("DELIVERY_AREAS", ""); zones != "" {
		area = service.NewNeighborhoodPolicy(strings.Split(zones, ","))
	}

	orders := service.NewOrderService(repo, repo, publisher, area, sales)
	products := service.NewProductService(repo)
	tables := service.NewTableService(repo, orders, service.DefaultQRGenerator{})
	reports := service.NewReportService(repo, sales)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	carts := cart.NewStore(2 * time.Hour)
	go carts.StartSweeper(ctx, 10*time.Minute)

	hub := ordersync.NewHub()
	go hub.Run(ctx)

	reader := config.NewKafkaReader(config.OrdersTopic, "kitchen-display")
	defer reader.Close()
	consumer := ordersync.NewConsumer(reader, orders, hub)
	go consumer.Start(ctx)

	handler := &httpapi.Handler{
		Carts:     carts,
		Products:  products,
		Tables:    tables,
		Orders:    orders,
		Reports:   reports,
		QRBaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost"),
	}

	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	handler.RegisterWS(r, hub.HandleKitchen)

	port := config.Getenv("PORT", "8080")
	log.Printf("Comanda service starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors.Default().Handler(r)))
}
