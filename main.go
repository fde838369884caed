package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"togedog_server/config"
	"togedog_server/routes"
	"togedog_server/services"
	"togedog_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Redis-backed cache store
	log.Println("Connecting to Redis at", cfg.RedisAddr)
	redisClient := services.InitializeRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	cacheStore := &services.RedisService{Client: redisClient}

	// Initialize Services
	memberService := &services.MemberService{Dynamo: dynamoService}
	matchingRepository := &services.DynamoMatchingRepository{Dynamo: dynamoService}
	standByService := &services.StandByService{Dynamo: dynamoService}
	locationService := services.NewLocationService(cacheStore)
	markerService := &services.MarkerService{Store: cacheStore}
	geocodeService := services.NewKakaoGeocodeService(cfg.KakaoAPIKey)

	// Wire cancellation cleanup through the event bus
	eventBus := services.NewEventBus()
	services.RegisterCleanupHandlers(eventBus, markerService, standByService)

	matchingService := services.NewMatchingService(matchingRepository, memberService, eventBus)

	// Live map hub
	hub := socket.NewMapHub()
	go hub.Run()
	defer hub.Close()

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Togedog")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterMatchingRoutes(r, matchingService)
	routes.RegisterMapRoutes(r, locationService, markerService, geocodeService, hub)
	r.Handle("/socket.io/", hub.Server)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-User-Email"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
