package services

import (
	"sync"

	"coffeepos/pkg/apperr"
	"coffeepos/repository"
)

// CartLine carries a price snapshot taken when the item was first added.
// A menu edit mid-session never changes what the customer saw.
type CartLine struct {
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	Emoji      string  `json:"emoji"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

type CartView struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}

// CartService keeps one in-memory cart per user. Carts live only for
// the process lifetime; nothing is persisted until checkout.
type CartService struct {
	mu    sync.Mutex
	carts map[uint][]*CartLine

	// one lock per user so a double-clicked checkout serializes
	// against the same cart instead of racing it
	checkout map[uint]*sync.Mutex

	MenuRepo *repository.MenuRepository
}

func NewCartService(menuRepo *repository.MenuRepository) *CartService {
	return &CartService{
		carts:    make(map[uint][]*CartLine),
		checkout: make(map[uint]*sync.Mutex),
		MenuRepo: menuRepo,
	}
}

// Add puts one unit of the menu item into the user's cart. An existing
// line for the same item gains quantity; its snapshot price stays.
func (s *CartService) Add(userID, menuItemID uint) (*CartView, error) {
	item, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		return nil, apperr.New(apperr.Validation, "menu item not found")
	}
	if !item.IsActive {
		return nil, apperr.New(apperr.Validation, "menu item is not available")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.carts[userID] {
		if line.MenuItemID == menuItemID {
			line.Quantity++
			line.Subtotal = float64(line.Quantity) * line.UnitPrice
			return s.view(userID), nil
		}
	}

	s.carts[userID] = append(s.carts[userID], &CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Emoji:      item.Emoji,
		UnitPrice:  item.Price,
		Quantity:   1,
		Subtotal:   item.Price,
	})
	return s.view(userID), nil
}

// SetQuantity updates a line; qty <= 0 removes it. An unknown item id
// is a silent no-op.
func (s *CartService) SetQuantity(userID, menuItemID uint, qty int) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		s.removeLocked(userID, menuItemID)
		return s.view(userID)
	}
	for _, line := range s.carts[userID] {
		if line.MenuItemID == menuItemID {
			line.Quantity = qty
			line.Subtotal = float64(qty) * line.UnitPrice
			break
		}
	}
	return s.view(userID)
}

// Remove drops the line if present; removing a missing line is a no-op.
func (s *CartService) Remove(userID, menuItemID uint) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(userID, menuItemID)
	return s.view(userID)
}

func (s *CartService) Get(userID uint) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(userID)
}

func (s *CartService) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Total sums the line subtotals; an empty cart totals 0.
func (s *CartService) Total(userID uint) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(userID).Total
}

func (s *CartService) removeLocked(userID, menuItemID uint) {
	lines := s.carts[userID]
	for i, line := range lines {
		if line.MenuItemID == menuItemID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// view copies lines out so callers never hold aliases into the store.
func (s *CartService) view(userID uint) *CartView {
	lines := s.carts[userID]
	v := &CartView{Lines: make([]CartLine, 0, len(lines))}
	for _, line := range lines {
		v.Lines = append(v.Lines, *line)
		v.Total += line.Subtotal
	}
	return v
}

// CheckoutLock returns the user's checkout mutex, creating it on first use.
func (s *CartService) CheckoutLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkout[userID] == nil {
		s.checkout[userID] = &sync.Mutex{}
	}
	return s.checkout[userID]
}
