package provider

import (
	"github.com/shopnext/internal/cache"
	"github.com/shopnext/internal/config"
	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/models"
	"github.com/shopnext/internal/queue"
	"github.com/shopnext/internal/repository"
	"github.com/shopnext/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo    repository.UserRepository
	AddressRepo repository.AddressRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository

	// Services
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService
	EmailService    *service.EmailService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	pricing := service.PricingConfig{
		FreeShippingThreshold: models.Money(c.Config.Order.FreeShippingThreshold),
		ShippingFee:           models.Money(c.Config.Order.ShippingFee),
	}

	var notifier service.OrderNotifier
	if c.QueueClient != nil && c.QueueClient.Enabled() {
		notifier = c.QueueClient
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CatalogService = service.NewCatalogService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, pricing)
	c.CheckoutService = service.NewCheckoutService(models.DB, c.CartRepo, c.AddressRepo, c.ProductRepo, c.OrderRepo, notifier)
	c.OrderService = service.NewOrderService(c.OrderRepo, notifier)
}
