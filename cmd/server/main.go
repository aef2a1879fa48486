package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/auditkeeper/internal/server"
	"github.com/dmitrijs2005/auditkeeper/internal/server/config"
)

func main() {

	// Missing .env is fine, the environment itself still applies.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
