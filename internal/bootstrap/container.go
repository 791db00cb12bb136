package bootstrap

import (
	"log"

	"devlabs-intake-be/internal/channel"
	"devlabs-intake-be/internal/config"
	"devlabs-intake-be/internal/controller"
	"devlabs-intake-be/internal/pkg/logger"
	"devlabs-intake-be/internal/repository/implementation"
	"devlabs-intake-be/internal/repository/memory"
	"devlabs-intake-be/internal/service"

	pktNats "devlabs-intake-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const inboundTopicName = "INBOUND_EVENTS"

type Container struct {
	// Controllers
	EventController controller.IEventController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	IngressService  *service.IngressService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	deliveryLogger := logger.NewIsolatedLogger("logs/delivery.log")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// 3. Repositories
	projectRepo := implementation.NewProjectRepository(db)
	preferenceRepo := implementation.NewPreferenceRepository(db, cfg.Intake.DefaultLocale)
	sessionRepo := memory.NewSessionRepository()
	userLocks := memory.NewUserLocks()

	// 4. Services
	gateway := channel.NewNatsGateway(natsPub)
	routerService := service.NewRouterService(gateway, cfg.Intake.AdminIDs, deliveryLogger)

	dialogService := service.NewDialogService(
		sessionRepo,
		projectRepo,
		preferenceRepo,
		routerService,
		sysLogger,
		cfg.Intake.DefaultLocale,
	)

	adminService := service.NewAdminService(
		projectRepo,
		preferenceRepo,
		routerService,
		sysLogger,
		cfg.Intake.AdminIDs,
	)

	publisherService := service.NewPublisherService(inboundTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		inboundTopicName,
		userLocks,
		dialogService,
		adminService,
		sysLogger,
	)

	var ingressService *service.IngressService
	if natsSub != nil {
		ingressService = service.NewIngressService(natsSub, publisherService, sysLogger)
	}

	// 5. Controllers
	return &Container{
		EventController: controller.NewEventController(publisherService),
		ConsumerService: consumerService,
		IngressService:  ingressService,
		Logger:          sysLogger,
	}
}
