// Package main is the entry point of the AI-Solutions site backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-solutions-go/internal/config"
	"ai-solutions-go/internal/handler"
	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/pipeline"
	"ai-solutions-go/internal/repository"
	"ai-solutions-go/internal/seed"
	"ai-solutions-go/internal/service"
	"ai-solutions-go/pkg/database"
	"ai-solutions-go/pkg/es"
	"ai-solutions-go/pkg/kafka"
	"ai-solutions-go/pkg/llm"
	"ai-solutions-go/pkg/log"
	"ai-solutions-go/pkg/storage"
	"ai-solutions-go/pkg/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Config
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. Logger
	log.Init(cfg.Log)
	defer log.Sync()
	log.Info("logger initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Content store and Redis
	database.InitMySQL(cfg.Database.MySQL)
	database.InitRedis(cfg.Database.Redis)

	// 4. Repositories
	serviceRepo := repository.NewServiceRepository(database.DB)
	projectRepo := repository.NewProjectRepository(database.DB)
	articleRepo := repository.NewArticleRepository(database.DB)
	eventRepo := repository.NewEventRepository(database.DB)
	galleryRepo := repository.NewGalleryRepository(database.DB)
	testimonialRepo := repository.NewTestimonialRepository(database.DB)
	contactRepo := repository.NewContactRepository(database.DB)
	quoteRepo := repository.NewQuoteRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)
	notificationRepo := repository.NewNotificationRepository(database.RDB)
	tokenBlacklist := repository.NewTokenBlacklist(database.RDB)

	// 5. Optional infrastructure: search index, object storage, event queue.
	// Interfaces stay nil when a component is not configured.
	var (
		searchIndex *es.Index
		docIndex    pipeline.DocumentIndex
		searchSvc   service.SearchService
		mediaSvc    service.MediaService
		publisher   service.EventPublisher
	)
	if cfg.Elasticsearch.Addresses != "" {
		if err := es.InitES(cfg.Elasticsearch); err != nil {
			log.Error("elasticsearch unavailable, site search disabled", err)
		} else {
			searchIndex = es.NewIndex(es.ESClient, cfg.Elasticsearch.IndexName)
			docIndex = searchIndex
			searchSvc = service.NewSearchService(searchIndex)
		}
	}
	if cfg.MinIO.Endpoint != "" {
		if err := storage.InitMinIO(cfg.MinIO); err != nil {
			log.Error("minio unavailable, image uploads disabled", err)
		} else {
			mediaSvc = service.NewMediaService(storage.NewBucket(storage.MinioClient, cfg.MinIO))
		}
	}
	if cfg.Kafka.Brokers != "" {
		producer := kafka.NewProducer(cfg.Kafka)
		defer producer.Close()
		publisher = producer

		processor := pipeline.NewProcessor(docIndex, notificationRepo, serviceRepo, projectRepo, articleRepo, eventRepo)
		go kafka.StartConsumer(ctx, cfg.Kafka, processor, repository.NewAttemptCounter(database.RDB))
	} else {
		log.Warnf("kafka brokers not configured, search indexing and submission counters disabled")
	}

	// 6. Completion client
	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatal("failed to create completion client", err)
	}
	defer llmClient.Close()

	// 7. Services
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpireHours, cfg.JWT.RefreshTokenExpireDays)
	assembler := service.NewContextAssembler(
		service.NewContentReader(serviceRepo, projectRepo, articleRepo, eventRepo, galleryRepo, testimonialRepo),
		cfg.Assistant,
	)
	chatSvc := service.NewChatService(assembler, llmClient, cfg.LLM, cfg.Assistant)
	authSvc := service.NewAuthService(userRepo, jwtManager, tokenBlacklist)
	galleryMgr := service.NewContentManager[model.GalleryImage](model.KindGallery, galleryRepo, publisher)
	eventSvc := service.NewEventService(
		service.NewContentManager[model.Event](model.KindEvent, eventRepo, publisher),
		galleryMgr,
	)

	// 8. Bootstrap the admin account and the demo catalog
	if err := authSvc.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal("failed to bootstrap admin account", err)
	}
	if cfg.Seed.Enabled {
		if _, err := seed.Run(ctx, database.DB, cfg.Seed.File); err != nil {
			log.Error("failed to seed demo catalog", err)
		}
	}

	// 9. Router
	gin.SetMode(cfg.Server.Mode)
	r := handler.NewRouter(handler.Handlers{
		Chat: handler.NewChatHandler(chatSvc, cfg.Assistant.FallbackMessage),
		Catalog: handler.NewCatalogHandler(service.NewCatalogService(
			serviceRepo, projectRepo, articleRepo, eventRepo, galleryRepo, testimonialRepo)),
		Submissions: handler.NewSubmissionHandler(service.NewSubmissionService(
			serviceRepo, contactRepo, quoteRepo, testimonialRepo, publisher)),
		Search: handler.NewSearchHandler(searchSvc),
		Auth:   handler.NewAuthHandler(authSvc),
		Admin: handler.NewAdminHandler(service.NewDashboardService(
			serviceRepo, projectRepo, articleRepo, testimonialRepo, contactRepo, quoteRepo, notificationRepo), mediaSvc),
		Moderation: handler.NewModerationHandler(service.NewModerationService(
			testimonialRepo, contactRepo, quoteRepo, notificationRepo)),
		Services: handler.NewContentHandler(service.NewContentManager[model.Service](model.KindService, serviceRepo, publisher)),
		Projects: handler.NewContentHandler(service.NewContentManager[model.Project](model.KindProject, projectRepo, publisher)),
		Articles: handler.NewContentHandler(service.NewContentManager[model.Article](model.KindArticle, articleRepo, publisher)),
		Events:   handler.NewEventHandler(eventSvc),
		Gallery:  handler.NewContentHandler(galleryMgr),
	}, jwtManager, tokenBlacklist)

	// 10. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	// stops the kafka consumer loop
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP server shutdown failed: %v", err)
	}
	log.Info("server stopped")
}
