package repository

import (
	"strings"

	"coffeepos/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) ListActive() ([]entity.PaymentMethod, error) {
	var methods []entity.PaymentMethod
	err := r.DB.Where("is_active = ?", true).Order("id ASC").Find(&methods).Error
	return methods, err
}

// ResolveKey normalizes the client's payment key ("Cash", "e_wallet",
// "ewallet", ...) to the canonical lowercase form stored on
// transactions, checking it against the active methods. An empty
// string means the key matched nothing.
func (r *PaymentRepository) ResolveKey(key string) (string, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	switch k {
	case "ewallet", "e_wallet", "e wallet":
		k = "e-wallet"
	}
	if k == "" {
		return "", nil
	}

	var row struct{ Name string }
	err := r.DB.Model(&entity.PaymentMethod{}).
		Select("name").
		Where("LOWER(name) = ? AND is_active = ?", k, true).
		Limit(1).Scan(&row).Error
	if err != nil {
		return "", err
	}
	if row.Name == "" {
		return "", nil
	}
	return strings.ToLower(row.Name), nil
}
