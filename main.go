package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"whisperchat_server/config"
	"whisperchat_server/models"
	"whisperchat_server/routes"
	"whisperchat_server/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	ctx := context.Background()

	// Pick the seed source
	var seeds services.SeedSource
	switch cfg.SeedBackend {
	case models.SeedBackendDynamo:
		log.Println("Initializing DynamoDB client...")
		client, err := services.InitializeDynamoDBClient(ctx, cfg.AWSRegion)
		if err != nil {
			log.Fatalf("Failed to initialize DynamoDB: %v", err)
		}
		seeds = &services.DynamoSeedSource{
			Dynamo:        &services.DynamoService{Client: client},
			ProfileHandle: cfg.ProfileHandle,
		}
		log.Println("DynamoDB client initialized.")
	default:
		seeds = services.NewFileSeedSource(cfg.SeedFile)
	}

	// Initialize Services
	chatService, err := services.NewChatService(ctx, seeds)
	if err != nil {
		log.Fatal(err)
	}
	feedService, err := services.NewFeedService(ctx, seeds)
	if err != nil {
		log.Fatal(err)
	}
	profileService, err := services.NewProfileService(ctx, seeds, feedService)
	if err != nil {
		log.Fatal(err)
	}
	mediaService, err := services.NewMediaService(ctx, cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		log.Fatal(err)
	}

	handler := routes.NewHandler(routes.Services{
		Chat:     chatService,
		Feed:     feedService,
		Posts:    &services.PostService{Profile: profileService, Now: time.Now},
		Profile:  profileService,
		Settings: services.NewSettingsService(),
		Sessions: services.NewSessionService(cfg.LoginDelay),
		Media:    mediaService,
		Now:      func() time.Time { return time.Now().In(cfg.Location) },
	}, cfg.AllowedOrigins)

	log.Printf("Starting server on port %s (calendar days in %s)...\n", cfg.Port, cfg.Location)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
