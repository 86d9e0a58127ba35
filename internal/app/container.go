package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sachinkumar2222/Productr/domain"
	"github.com/sachinkumar2222/Productr/internal/config"
	"github.com/sachinkumar2222/Productr/internal/infrastructure/auth"
	"github.com/sachinkumar2222/Productr/internal/infrastructure/blob"
	"github.com/sachinkumar2222/Productr/internal/infrastructure/database"
	"github.com/sachinkumar2222/Productr/internal/infrastructure/notifications"
	"github.com/sachinkumar2222/Productr/internal/infrastructure/repositories"
	"github.com/sachinkumar2222/Productr/internal/services"
)

// Container holds all dependencies.
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	IdentityRepo domain.IdentityRepository
	ProductRepo  domain.ProductRepository

	TokenSvc      domain.TokenService
	Sender        domain.NotificationSender
	BlobStore     domain.BlobStore
	ResendLimiter domain.ResendLimiter
	OTPSvc        domain.OTPService
	AssetResolver domain.AssetResolver
	ProductSvc    domain.ProductService
}

// NewContainer creates and initializes all dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.IdentityRepo = repositories.NewIdentityRepository(c.DB)
	c.ProductRepo = repositories.NewProductRepository(c.DB)
	c.ResendLimiter = repositories.NewResendLimiter(c.RedisClient, c.Config.OTP_ResendWindow)
}

func (c *Container) initServices() error {
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenLifetime)

	c.Sender = notifications.NewDispatcher(
		notifications.NewSMTPSender(
			c.Config.SMTPHost,
			c.Config.SMTPPort,
			c.Config.SMTPUsername,
			c.Config.SMTPPassword,
			c.Config.SMTPFrom,
			c.Config.SMTPFromName,
		),
		notifications.NewTwilioSender(c.Config.TwilioSID, c.Config.TwilioToken, c.Config.TwilioFrom),
	)

	store, err := blob.NewCloudinaryStore(c.Config.CloudinaryURL, c.Config.CloudinaryFolder)
	if err != nil {
		return err
	}
	c.BlobStore = store

	c.OTPSvc = services.NewOTPService(c.IdentityRepo, c.Sender, c.TokenSvc, c.ResendLimiter, services.OTPConfig{
		Length: c.Config.OTP_Length,
		TTL:    c.Config.OTP_TTL,
	})

	c.AssetResolver = services.NewAssetResolver(c.BlobStore)
	c.ProductSvc = services.NewProductService(c.ProductRepo, c.AssetResolver)

	return nil
}

// Close closes all connections.
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
