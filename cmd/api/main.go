package main

import (
	"log"

	"github.com/joho/godotenv"

	"simvar/adapters/api"
	"simvar/adapters/streams"
	"simvar/app"
	"simvar/internal/config"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var pool *streams.Pool
	if cfg.RNG.Seeded {
		log.Printf("seeding stream table deterministically (seed=%d)", cfg.RNG.Seed)
		pool = streams.New(cfg.RNG.Seed)
	} else {
		log.Printf("seeding stream table from system entropy")
		pool, err = streams.NewFromEntropy()
		if err != nil {
			log.Fatalf("failed to seed from entropy: %v", err)
		}
	}

	server := api.NewServer(api.Config{
		Port:    cfg.Server.Port,
		GinMode: cfg.Server.GinMode,
	}, app.NewVariateService(pool))

	log.Fatal(server.Start())
}
