package main

import (
	"github.com/shopnext/internal/config"
	"github.com/shopnext/internal/logger"
	"github.com/shopnext/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	seedProducts(stdLog.Printf)
	seedDemoUser(stdLog.Printf)

	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	stdLog.Printf("Seed finished")
}

func seedProducts(logf func(string, ...interface{})) {
	apparelSizes := models.StringArray{"S", "M", "L", "XL"}
	shoeSizes := models.StringArray{"39", "40", "41", "42", "43"}

	products := []models.Product{
		{Name: "Classic Cotton Tee", PriceAmount: 2900, Image: "/images/classic-tee.jpg", Sizes: apparelSizes, IsActive: true, SortOrder: 100},
		{Name: "Oversized Hoodie", PriceAmount: 6900, Image: "/images/oversized-hoodie.jpg", Sizes: apparelSizes, IsActive: true, SortOrder: 90},
		{Name: "Slim Fit Jeans", PriceAmount: 8900, Image: "/images/slim-jeans.jpg", Sizes: apparelSizes, IsActive: true, SortOrder: 80},
		{Name: "Canvas Low Sneakers", PriceAmount: 11900, Image: "/images/canvas-sneakers.jpg", Sizes: shoeSizes, IsActive: true, SortOrder: 70},
		{Name: "Trail Running Shoes", PriceAmount: 15900, Image: "/images/trail-runners.jpg", Sizes: shoeSizes, IsActive: true, SortOrder: 60},
		{Name: "Wool Beanie", PriceAmount: 1900, Image: "/images/wool-beanie.jpg", Sizes: models.StringArray{"One Size"}, IsActive: true, SortOrder: 50},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err == nil {
			logf("Product already exists: %s", product.Name)
			continue
		}
		if err := models.DB.Create(&product).Error; err != nil {
			logf("Failed to create product %s: %v", product.Name, err)
			continue
		}
		logf("Created product: %s", product.Name)
	}
}

func seedDemoUser(logf func(string, ...interface{})) {
	const demoEmail = "demo@shopnext.local"

	var existing models.User
	if err := models.DB.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		logf("Demo user already exists: %s", demoEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		logf("Failed to hash demo password: %v", err)
		return
	}
	user := models.User{
		Email:        demoEmail,
		Name:         "Demo Shopper",
		PasswordHash: string(hash),
	}
	if err := models.DB.Create(&user).Error; err != nil {
		logf("Failed to create demo user: %v", err)
		return
	}
	logf("Created demo user: %s", demoEmail)

	address := models.Address{
		UserID:     user.ID,
		Recipient:  "Demo Shopper",
		Phone:      "13800000000",
		Line1:      "1 Demo Street",
		City:       "Shanghai",
		Province:   "Shanghai",
		PostalCode: "200000",
		IsDefault:  true,
	}
	if err := models.DB.Create(&address).Error; err != nil {
		logf("Failed to create demo address: %v", err)
		return
	}
	logf("Created demo address for: %s", demoEmail)
}
