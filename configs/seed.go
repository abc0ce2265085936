package configs

import (
	"log"

	"coffeepos/entity"

	"golang.org/x/crypto/bcrypt"
)

// first-boot admin account
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		FullName: "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups fills payment methods and a starter menu so a fresh
// install is usable without manual inserts.
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{
		Name: "Cash", Description: "Pay with cash", Icon: "💵",
	})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{
		Name: "E-Wallet", Description: "Digital payment (GCash, PayMaya, etc.)", Icon: "📱",
	})

	var menuCount int64
	db.Model(&entity.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		starter := []entity.MenuItem{
			{Name: "Espresso", Emoji: "☕", Price: 3.00, Description: "Double shot", IsActive: true},
			{Name: "Cappuccino", Emoji: "☕", Price: 4.25, Description: "Espresso with steamed milk foam", IsActive: true},
			{Name: "Latte", Emoji: "🥛", Price: 4.50, Description: "Espresso with steamed milk", IsActive: true},
			{Name: "Iced Mocha", Emoji: "🧋", Price: 5.50, Description: "Chocolate, espresso, cold milk", IsActive: true},
			{Name: "Croissant", Emoji: "🥐", Price: 2.75, Description: "Butter croissant", IsActive: true},
		}
		if err := db.Create(&starter).Error; err != nil {
			return err
		}
	}

	log.Println("lookup tables seeded")
	return nil
}
