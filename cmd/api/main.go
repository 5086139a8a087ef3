package main

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"barterhub/internal/adapter/api/handler"
	apimiddleware "barterhub/internal/adapter/api/middleware"
	"barterhub/internal/adapter/api/router"
	"barterhub/internal/adapter/repository"
	"barterhub/internal/infrastructure/auth"
	"barterhub/internal/infrastructure/storage"
	"barterhub/internal/infrastructure/websocket"
	"barterhub/internal/usecase"
	"barterhub/pkg/config"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	storageClient, err := storage.NewLocalStorageClient(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// One store instance owns all state; every repository is a view on it.
	store := repository.NewStore()
	userRepo := repository.NewMemoryUserRepository(store)
	itemRepo := repository.NewMemoryItemRepository(store)
	imageRepo := repository.NewMemoryImageRepository(store)
	chatRepo := repository.NewMemoryChatRepository(store)
	offerRepo := repository.NewMemoryOfferRepository(store)
	favoriteRepo := repository.NewMemoryFavoriteRepository(store)
	notificationRepo := repository.NewMemoryNotificationRepository(store)
	pushSubRepo := repository.NewMemoryPushSubscriptionRepository(store)
	reviewRepo := repository.NewMemoryReviewRepository(store)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	enricher := usecase.NewEnricher(userRepo, itemRepo, imageRepo, chatRepo, offerRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, pushSubRepo, wsManager)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtManager)
	userUseCase := usecase.NewUserUseCase(userRepo, reviewRepo)
	itemUseCase := usecase.NewItemUseCase(itemRepo, imageRepo, userRepo, enricher)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, itemRepo, enricher)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, itemRepo, enricher, wsManager)
	offerUseCase := usecase.NewOfferUseCase(offerRepo, itemRepo, chatRepo, enricher, notificationUseCase, wsManager)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, offerRepo, enricher, notificationUseCase)

	authMiddleware := apimiddleware.NewAuthMiddleware(jwtManager)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Static("/uploads", storageClient.BaseDir())

	router.Setup(e, router.Handlers{
		Auth:         handler.NewAuthHandler(authUseCase),
		User:         handler.NewUserHandler(userUseCase),
		Item:         handler.NewItemHandler(itemUseCase, storageClient),
		Favorite:     handler.NewFavoriteHandler(favoriteUseCase),
		Chat:         handler.NewChatHandler(chatUseCase),
		Offer:        handler.NewOfferHandler(offerUseCase),
		Review:       handler.NewReviewHandler(reviewUseCase),
		Notification: handler.NewNotificationHandler(notificationUseCase),
		WebSocket:    handler.NewWebSocketHandler(wsManager, authMiddleware),
		Health:       handler.NewHealthHandler(),
	}, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
