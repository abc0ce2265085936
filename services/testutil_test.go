package services

import (
	"path/filepath"
	"testing"

	"coffeepos/entity"
	"coffeepos/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.PaymentMethod{},
		&entity.Transaction{}, &entity.TransactionItem{},
		&entity.DailyStatistic{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	methods := []entity.PaymentMethod{
		{Name: "Cash", Description: "Pay with cash", Icon: "💵", IsActive: true},
		{Name: "E-Wallet", Description: "Digital payment", Icon: "📱", IsActive: true},
	}
	if err := db.Create(&methods).Error; err != nil {
		t.Fatalf("seed payment methods: %v", err)
	}

	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{Name: name, Price: price, IsActive: true}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item
}

func newTestCarts(db *gorm.DB) *CartService {
	return NewCartService(repository.NewMenuRepository(db))
}

func newTestCheckout(db *gorm.DB, carts *CartService) *CheckoutService {
	stats := NewStatisticService(repository.NewStatisticRepository(db), 0)
	return NewCheckoutService(
		db,
		carts,
		repository.NewTransactionRepository(db),
		repository.NewPaymentRepository(db),
		stats,
	)
}
