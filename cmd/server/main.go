package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/vmelnikov/jobport/internal/server"
	"github.com/vmelnikov/jobport/internal/server/config"
)

func main() {

	// optional; env vars can come from the environment directly
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
