package repository

import (
	"errors"

	"coffeepos/entity"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Create(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

func (r *TransactionRepository) CreateItem(tx *gorm.DB, it *entity.TransactionItem) error {
	return tx.Create(it).Error
}

// FindByReference resolves an idempotency key to an already-committed
// transaction. Not found is not an error here.
func (r *TransactionRepository) FindByReference(ref string) (*entity.Transaction, error) {
	var t entity.Transaction
	err := r.DB.Where("reference = ?", ref).Preload("Items").First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) List(limit int) ([]entity.Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var out []entity.Transaction
	err := r.DB.Preload("Items").Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *TransactionRepository) ListForUser(userID uint, limit int) ([]entity.Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var out []entity.Transaction
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *TransactionRepository) GetWithItems(id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := r.DB.Preload("Items").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Deletes are hard: a soft-deleted row would keep its unique reference
// and block an idempotent retry of the same key.
func (r *TransactionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("transaction_id = ?", id).Delete(&entity.TransactionItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Transaction{}, id).Error
	})
}

func (r *TransactionRepository) ClearAll() error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("id > 0").Delete(&entity.TransactionItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("id > 0").Delete(&entity.Transaction{}).Error
	})
}
