package main

import (
	"fmt"
	"log"

	"coffeepos/configs"
	"coffeepos/events"
	"coffeepos/middlewares"
	"coffeepos/routes"
	"coffeepos/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// live stats feed
	hub := ws.NewStatsHub()
	go hub.Run()

	// order events are optional: no AMQP_URL, no publisher
	var publisher *events.Publisher
	if cfg.AMQPURL != "" {
		p, err := events.NewPublisher(cfg.AMQPURL, cfg.OrderQueue)
		if err != nil {
			log.Printf("order events disabled: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.PrometheusMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub, publisher)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
