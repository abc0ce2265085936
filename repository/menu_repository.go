package repository

import (
	"coffeepos/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ListActive returns what customers may order, oldest first.
func (r *MenuRepository) ListActive() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("is_active = ?", true).Order("id ASC").Find(&items).Error
	return items, err
}

// ListAll includes inactive items, for the admin screen.
func (r *MenuRepository) ListAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

// Delete is a hard delete; sold items keep their snapshot in
// transaction_items so history survives.
func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.MenuItem{}, id).Error
}
