package bootstrap

import (
	"log"
	"time"

	"bizchat-be/internal/config"
	"bizchat-be/internal/controller"
	"bizchat-be/internal/pkg/logger"
	"bizchat-be/internal/pkg/mailer"
	"bizchat-be/internal/repository/memory"
	"bizchat-be/internal/repository/unitofwork"
	"bizchat-be/internal/service"
	"bizchat-be/pkg/embedding"
	"bizchat-be/pkg/llm/factory"
	"bizchat-be/pkg/rag/intent"

	pktNats "bizchat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TenantController      controller.ITenantController
	ChatController        controller.IChatController
	AppointmentController controller.IAppointmentController
	DocumentController    controller.IDocumentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	snapshotCache := memory.NewSnapshotCache(time.Duration(cfg.App.SnapshotTTLSeconds) * time.Second)

	// 5. Services
	reembedPublisher := service.NewPublisherService(cfg.Keys.ReembedTopic, pubSub)
	confirmationPublisher := service.NewPublisherService(cfg.Keys.ConfirmationTopic, pubSub)

	tenantService := service.NewTenantService(uowFactory, snapshotCache)
	conversationService := service.NewConversationService(uowFactory)
	documentService := service.NewDocumentService(
		uowFactory,
		embeddingProvider,
		reembedPublisher,
		natsPub,
		sysLogger,
	)
	retrievalService := service.NewRetrievalService(
		uowFactory,
		embeddingProvider,
		cfg.Ai.RetrievalTopK,
		time.Duration(cfg.Ai.RetrievalTimeout)*time.Second,
		sysLogger,
	)
	availabilityService := service.NewAvailabilityService(uowFactory)
	bookingService := service.NewBookingService(
		uowFactory,
		confirmationPublisher,
		natsPub,
		sysLogger,
	)
	assistantService := service.NewAssistantService(
		tenantService,
		conversationService,
		retrievalService,
		availabilityService,
		bookingService,
		intent.NewExtractor(llmProvider),
		llmProvider,
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.ReembedTopic,
		cfg.Keys.ConfirmationTopic,
		uowFactory,
		documentService,
		emailService,
	)

	// 6. Controllers
	return &Container{
		TenantController:      controller.NewTenantController(tenantService),
		ChatController:        controller.NewChatController(assistantService),
		AppointmentController: controller.NewAppointmentController(tenantService, availabilityService, bookingService),
		DocumentController:    controller.NewDocumentController(tenantService, documentService),
		ConsumerService:       consumerService,
	}
}
