package services

import (
	"strings"

	"coffeepos/entity"
	"coffeepos/pkg/apperr"
	"coffeepos/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemIn struct {
	Name        string  `json:"name" binding:"required"`
	Emoji       string  `json:"emoji"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

func (s *MenuService) ListActive() ([]entity.MenuItem, error) {
	items, err := s.Repo.ListActive()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "load menu failed", err)
	}
	return items, nil
}

func (s *MenuService) ListAll() ([]entity.MenuItem, error) {
	items, err := s.Repo.ListAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "load menu failed", err)
	}
	return items, nil
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if err := validateMenuItem(in); err != nil {
		return nil, err
	}
	item := &entity.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Emoji:       in.Emoji,
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IsActive:    true,
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "create menu item failed", err)
	}
	return item, nil
}

func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := validateMenuItem(in); err != nil {
		return nil, err
	}
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, apperr.New(apperr.Validation, "menu item not found")
	}

	updates := map[string]any{
		"name":        strings.TrimSpace(in.Name),
		"emoji":       in.Emoji,
		"price":       in.Price,
		"description": in.Description,
		"image_url":   in.ImageURL,
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "update menu item failed", err)
	}
	return s.Repo.FindByID(id)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return apperr.New(apperr.Validation, "menu item not found")
	}
	if err := s.Repo.Delete(id); err != nil {
		return apperr.Wrap(apperr.Persistence, "delete menu item failed", err)
	}
	return nil
}

func validateMenuItem(in *MenuItemIn) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.New(apperr.Validation, "name is required")
	}
	if in.Price < 0 {
		return apperr.New(apperr.Validation, "price must not be negative")
	}
	return nil
}
