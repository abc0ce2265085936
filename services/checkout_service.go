package services

import (
	"errors"
	"log"
	"math"
	"time"

	"coffeepos/entity"
	"coffeepos/events"
	"coffeepos/pkg/apperr"
	"coffeepos/repository"
	"coffeepos/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckoutService turns a cart into a completed transaction: one
// transactions row, one transaction_items row per cart line, and the
// day's statistics bump. All three writes commit or roll back together.
type CheckoutService struct {
	DB       *gorm.DB
	Carts    *CartService
	TxRepo   *repository.TransactionRepository
	PayRepo  *repository.PaymentRepository
	Stats    *StatisticService
	StatsHub *ws.StatsHub      // optional, may be nil
	Events   *events.Publisher // optional, may be nil
}

func NewCheckoutService(
	db *gorm.DB,
	carts *CartService,
	txRepo *repository.TransactionRepository,
	payRepo *repository.PaymentRepository,
	stats *StatisticService,
) *CheckoutService {
	return &CheckoutService{DB: db, Carts: carts, TxRepo: txRepo, PayRepo: payRepo, Stats: stats}
}

type CheckoutResult struct {
	TransactionID uint    `json:"transactionId"`
	Reference     string  `json:"reference"`
	Total         float64 `json:"total"`
	PaymentMethod string  `json:"paymentMethod"`
	Replayed      bool    `json:"replayed,omitempty"`
}

// Checkout completes the user's order.
//
// The user's checkout lock is held for the whole sequence, so a second
// click waits and then fails on the now-empty cart instead of writing a
// duplicate. idemKey, when supplied, becomes the transaction reference;
// replaying a key returns the committed transaction without new writes.
// On any failure the cart is left intact for retry.
func (s *CheckoutService) Checkout(userID uint, paymentMethod, idemKey string) (*CheckoutResult, error) {
	lock := s.Carts.CheckoutLock(userID)
	lock.Lock()
	defer lock.Unlock()

	// replay check comes first: after a timed-out retry the cart is
	// already empty, yet the key must still find the committed order
	if idemKey != "" {
		prev, err := s.TxRepo.FindByReference(idemKey)
		if err != nil {
			return nil, apperr.Wrap(apperr.Persistence, "idempotency lookup failed", err)
		}
		if prev != nil {
			return &CheckoutResult{
				TransactionID: prev.ID,
				Reference:     prev.Reference,
				Total:         prev.TotalAmount,
				PaymentMethod: prev.PaymentMethod,
				Replayed:      true,
			}, nil
		}
	}

	cart := s.Carts.Get(userID)
	if len(cart.Lines) == 0 {
		return nil, apperr.New(apperr.Validation, "cart is empty")
	}

	method, err := s.PayRepo.ResolveKey(paymentMethod)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "resolve payment method failed", err)
	}
	if method == "" {
		return nil, apperr.New(apperr.Validation, "unknown payment method")
	}

	ref := idemKey
	if ref == "" {
		ref = uuid.NewString()
	}

	now := time.Now()
	total := round2(cart.Total)

	order := entity.Transaction{
		Reference:       ref,
		TransactionDate: now.Format(statDateLayout),
		TransactionTime: now.Format("15:04:05"),
		TotalAmount:     total,
		PaymentMethod:   method,
		Status:          "completed",
		UserID:          userID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.TxRepo.Create(tx, &order); err != nil {
			return err
		}

		// copy the cart snapshot verbatim: the price the customer saw
		// is the price that is sold
		for _, line := range cart.Lines {
			it := entity.TransactionItem{
				TransactionID: order.ID,
				MenuItemID:    line.MenuItemID,
				Quantity:      line.Quantity,
				PricePerUnit:  round2(line.UnitPrice),
				Subtotal:      round2(line.Subtotal),
			}
			if err := s.TxRepo.CreateItem(tx, &it); err != nil {
				return err
			}
		}

		return s.Stats.RecordOrder(tx, order.TransactionDate, total)
	})
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.Persistence, "checkout failed", err)
	}

	s.Carts.Clear(userID)
	s.afterCommit(&order)

	return &CheckoutResult{
		TransactionID: order.ID,
		Reference:     order.Reference,
		Total:         total,
		PaymentMethod: method,
	}, nil
}

// afterCommit pushes the fresh aggregate to dashboards and publishes
// the order event. Best effort: the transaction is already durable.
func (s *CheckoutService) afterCommit(order *entity.Transaction) {
	if s.StatsHub != nil {
		if stat, err := s.Stats.ForDate(order.TransactionDate); err == nil {
			s.StatsHub.Broadcast(stat)
		}
	}
	if s.Events != nil {
		ev := events.OrderCompleted{
			TransactionID: order.ID,
			Reference:     order.Reference,
			Total:         order.TotalAmount,
			PaymentMethod: order.PaymentMethod,
			Date:          order.TransactionDate,
			Time:          order.TransactionTime,
		}
		if err := s.Events.PublishOrderCompleted(ev); err != nil {
			log.Printf("publish order event failed: %v", err)
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
