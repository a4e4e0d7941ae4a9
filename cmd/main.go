package main

import (
	"context"
	"log"

	"backend/config"
	"backend/routes"
	"backend/services"
)

func main() {
	ctx := context.Background()

	config.InitFirestore()

	generator, err := services.NewPlanGenerator(ctx)
	if err != nil {
		log.Fatalf("failed to initialize meal plan generator: %v", err)
	}

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.Store, hub)

	r := routes.SetupRouter(generator, hub)
	r.Run(":8080")
}
