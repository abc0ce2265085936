package services

import (
	"testing"

	"coffeepos/entity"
	"coffeepos/pkg/apperr"
)

func TestCheckoutWritesTransactionAndItems(t *testing.T) {
	db := newTestDB(t)
	mocha := seedMenuItem(t, db, "Iced Mocha", 5.50)
	capp := seedMenuItem(t, db, "Cappuccino", 4.25)
	carts := newTestCarts(db)
	checkout := newTestCheckout(db, carts)

	carts.Add(testUser, mocha.ID)
	carts.Add(testUser, mocha.ID)
	carts.Add(testUser, capp.ID)

	res, err := checkout.Checkout(testUser, "cash", "")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if res.Total != 15.25 {
		t.Errorf("want total 15.25, got %.2f", res.Total)
	}

	var tx entity.Transaction
	if err := db.Preload("Items").First(&tx, res.TransactionID).Error; err != nil {
		t.Fatalf("load transaction: %v", err)
	}
	if tx.TotalAmount != 15.25 {
		t.Errorf("stored total: want 15.25, got %.2f", tx.TotalAmount)
	}
	if tx.PaymentMethod != "cash" {
		t.Errorf("payment method: want cash, got %q", tx.PaymentMethod)
	}
	if tx.Status != "completed" {
		t.Errorf("status: want completed, got %q", tx.Status)
	}
	if len(tx.Items) != 2 {
		t.Fatalf("want 2 items, got %d", len(tx.Items))
	}

	var sum float64
	for _, it := range tx.Items {
		if it.Subtotal != float64(it.Quantity)*it.PricePerUnit {
			t.Errorf("item subtotal mismatch: %+v", it)
		}
		sum += it.Subtotal
	}
	if sum != 15.25 {
		t.Errorf("item subtotals: want 15.25, got %.2f", sum)
	}

	// cart is gone after success
	if got := carts.Total(testUser); got != 0 {
		t.Errorf("cart not cleared, total %.2f", got)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	carts := newTestCarts(db)
	checkout := newTestCheckout(db, carts)

	// twice: both must fail identically and write nothing
	for i := 0; i < 2; i++ {
		_, err := checkout.Checkout(testUser, "cash", "")
		if !apperr.IsKind(err, apperr.Validation) {
			t.Fatalf("want validation error, got %v", err)
		}
	}

	var count int64
	db.Model(&entity.Transaction{}).Count(&count)
	if count != 0 {
		t.Errorf("empty-cart checkout wrote %d transactions", count)
	}
	db.Model(&entity.DailyStatistic{}).Count(&count)
	if count != 0 {
		t.Errorf("empty-cart checkout wrote %d statistic rows", count)
	}
}

func TestCheckoutUnknownPaymentMethod(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Latte", 4.50)
	carts := newTestCarts(db)
	checkout := newTestCheckout(db, carts)

	carts.Add(testUser, item.ID)
	_, err := checkout.Checkout(testUser, "barter", "")
	if !apperr.IsKind(err, apperr.Validation) {
		t.Fatalf("want validation error, got %v", err)
	}

	// failure keeps the cart for retry
	if got := carts.Total(testUser); got != 4.50 {
		t.Errorf("cart lost on failure, total %.2f", got)
	}
}

func TestCheckoutNormalizesPaymentKey(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Latte", 4.50)
	carts := newTestCarts(db)
	checkout := newTestCheckout(db, carts)

	carts.Add(testUser, item.ID)
	res, err := checkout.Checkout(testUser, "E_Wallet", "")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if res.PaymentMethod != "e-wallet" {
		t.Errorf("want e-wallet, got %q", res.PaymentMethod)
	}
}

func TestCheckoutIdempotencyKeyReplay(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Latte", 4.50)
	carts := newTestCarts(db)
	checkout := newTestCheckout(db, carts)

	carts.Add(testUser, item.ID)
	first, err := checkout.Checkout(testUser, "cash", "key-123")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// client retries the same request after a timeout; cart is already
	// empty but the key must resolve to the committed transaction
	second, err := checkout.Checkout(testUser, "cash", "key-123")
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !second.Replayed {
		t.Error("replay not flagged")
	}
	if second.TransactionID != first.TransactionID || second.Total != first.Total {
		t.Errorf("replay returned a different transaction: %+v vs %+v", first, second)
	}

	var count int64
	db.Model(&entity.Transaction{}).Count(&count)
	if count != 1 {
		t.Errorf("want 1 transaction after replay, got %d", count)
	}
}

func TestCheckoutUpdatesDailyStatistics(t *testing.T) {
	db := newTestDB(t)
	mocha := seedMenuItem(t, db, "Iced Mocha", 5.50)
	carts := newTestCarts(db)
	checkout := newTestCheckout(db, carts)

	carts.Add(testUser, mocha.ID)
	if _, err := checkout.Checkout(testUser, "cash", ""); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	carts.Add(testUser, mocha.ID)
	carts.SetQuantity(testUser, mocha.ID, 2)
	if _, err := checkout.Checkout(testUser, "cash", ""); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	stat, err := checkout.Stats.ForDate(Today())
	if err != nil {
		t.Fatalf("load stats: %v", err)
	}
	if stat.TotalOrders != 2 {
		t.Errorf("want 2 orders, got %d", stat.TotalOrders)
	}
	if stat.TotalRevenue != 16.50 {
		t.Errorf("want revenue 16.50, got %.2f", stat.TotalRevenue)
	}
	if stat.TotalCustomers != 2 {
		t.Errorf("want 2 customers, got %d", stat.TotalCustomers)
	}
}
