package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/tandem-ai/tandem-engine/pkg/config"
	"github.com/tandem-ai/tandem-engine/pkg/database"
	"github.com/tandem-ai/tandem-engine/pkg/demodata"
	"github.com/tandem-ai/tandem-engine/pkg/handlers"
	"github.com/tandem-ai/tandem-engine/pkg/llm"
	"github.com/tandem-ai/tandem-engine/pkg/logging"
	"github.com/tandem-ai/tandem-engine/pkg/middleware"
	"github.com/tandem-ai/tandem-engine/pkg/repositories"
	"github.com/tandem-ai/tandem-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(&cfg.Log)
	defer logger.Sync() //nolint:errcheck // flush is best-effort on shutdown

	// Log startup configuration
	log.Printf("Configuration loaded:")
	log.Printf("  Environment: %s", cfg.Env)
	log.Printf("  Base URL: %s", cfg.BaseURL)
	log.Printf("  LLM provider: %s (configured: %v)", cfg.LLM.Provider, cfg.LLM.Configured())
	log.Printf("  Store configured: %v", cfg.Database.Configured())
	log.Printf("  Redis: %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	ctx := context.Background()

	var (
		restaurantRepo  repositories.RestaurantRepository
		menuRepo        repositories.MenuRepository
		faqRepo         repositories.FaqRepository
		pairingRepo     repositories.WinePairingRepository
		reservationRepo repositories.ReservationRepository
		resolverRepo    repositories.RestaurantRepository
	)

	if cfg.Database.Configured() {
		migrateDB, err := sql.Open("pgx", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to open migration connection: %v", err)
		}
		if err := database.RunMigrations(migrateDB, "migrations", logger); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		migrateDB.Close() //nolint:errcheck // one-shot connection

		readDB, err := database.NewConnection(ctx, &database.Config{
			URL:            cfg.Database.URL,
			MaxConnections: cfg.Database.MaxConnections,
		})
		if err != nil {
			log.Fatalf("Failed to connect to store: %v", err)
		}
		defer readDB.Close()

		// Reservations write through a privileged connection when one is
		// configured; reads never use it.
		writeDB := readDB
		if cfg.Database.WriteURL != "" {
			writeDB, err = database.NewConnection(ctx, &database.Config{
				URL:            cfg.Database.WriteURL,
				MaxConnections: cfg.Database.MaxConnections,
			})
			if err != nil {
				log.Fatalf("Failed to connect to write store: %v", err)
			}
			defer writeDB.Close()
		}

		restaurantRepo = repositories.NewRestaurantRepository(readDB)
		menuRepo = repositories.NewMenuRepository(readDB)
		faqRepo = repositories.NewFaqRepository(readDB)
		pairingRepo = repositories.NewWinePairingRepository(readDB)
		reservationRepo = repositories.NewReservationRepository(writeDB)
		resolverRepo = restaurantRepo
	} else {
		demo, err := demodata.New()
		if err != nil {
			log.Fatalf("Failed to load demo dataset: %v", err)
		}
		restaurantRepo = demo.Restaurants()
		menuRepo = demo.Menus()
		faqRepo = demo.Faqs()
		pairingRepo = demo.Pairings()
		reservationRepo = repositories.NewUnconfiguredReservationRepository()
		// Without a store, non-UUID references cannot resolve.
		resolverRepo = nil
		log.Printf("  No DATABASE_URL; serving the embedded demo dataset")
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	var sessions services.SessionStore
	if redisClient != nil {
		sessions = services.NewRedisSessionStore(redisClient)
	} else {
		sessions, err = services.NewLRUSessionStore(cfg.Chat.SessionCacheSize)
		if err != nil {
			log.Fatalf("Failed to create session cache: %v", err)
		}
	}

	var completions llm.CompletionClient
	if cfg.LLM.Configured() {
		completions, err = llm.NewFromConfig(&cfg.LLM, logger)
		if err != nil {
			log.Fatalf("Failed to create completion client: %v", err)
		}
		log.Printf("  Completion model: %s", completions.Model())
	} else {
		log.Printf("  No LLM credentials; chat replies with a placeholder")
	}

	resolver := services.NewRestaurantResolver(resolverRepo, logger)
	fetcher := services.NewKnowledgeFetcher(restaurantRepo, menuRepo, faqRepo, logger)
	assembler := services.NewPromptAssembler()
	dispatcher := services.NewToolDispatcher(pairingRepo, logger)
	normalizer := services.NewReplyNormalizer(sessions, logger)
	chatService := services.NewChatService(
		resolver,
		fetcher,
		assembler,
		completions,
		dispatcher,
		normalizer,
		time.Duration(cfg.Chat.RequestTimeoutSeconds)*time.Second,
		logger,
	)

	mux := http.NewServeMux()

	// Register handlers
	handlers.NewHealthHandler(logger).RegisterRoutes(mux)
	handlers.NewChatHandler(chatService, logger).RegisterRoutes(mux)
	handlers.NewRestaurantHandler(resolver, restaurantRepo, logger).RegisterRoutes(mux)
	handlers.NewFaqHandler(resolver, faqRepo, logger).RegisterRoutes(mux)
	handlers.NewMenuHandler(resolver, menuRepo, logger).RegisterRoutes(mux)
	handlers.NewWinePairingHandler(pairingRepo, logger).RegisterRoutes(mux)
	handlers.NewReservationHandler(reservationRepo, logger).RegisterRoutes(mux)

	handler := middleware.CORS()(middleware.RequestLogger(logger)(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	log.Printf("Starting tandem-engine on %s (version: %s)", addr, cfg.Version)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
