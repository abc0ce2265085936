package services

import (
	"testing"

	"coffeepos/pkg/apperr"
)

const testUser uint = 1

func TestAddAccumulatesQuantity(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Latte", 4.50)
	carts := newTestCarts(db)

	for i := 0; i < 3; i++ {
		if _, err := carts.Add(testUser, item.ID); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	cart := carts.Get(testUser)
	if len(cart.Lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(cart.Lines))
	}
	line := cart.Lines[0]
	if line.Quantity != 3 {
		t.Errorf("want quantity 3, got %d", line.Quantity)
	}
	if line.Subtotal != 3*4.50 {
		t.Errorf("want subtotal %.2f, got %.2f", 3*4.50, line.Subtotal)
	}
}

func TestAddKeepsPriceSnapshot(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Latte", 4.50)
	carts := newTestCarts(db)

	if _, err := carts.Add(testUser, item.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	// admin edits the price mid-session
	if err := db.Model(item).Update("price", 9.99).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	if _, err := carts.Add(testUser, item.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	line := carts.Get(testUser).Lines[0]
	if line.UnitPrice != 4.50 {
		t.Errorf("snapshot price changed: want 4.50, got %.2f", line.UnitPrice)
	}
	if line.Subtotal != 2*4.50 {
		t.Errorf("want subtotal %.2f, got %.2f", 2*4.50, line.Subtotal)
	}
}

func TestAddInactiveItem(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Retired Drink", 2.00)
	if err := db.Model(item).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	carts := newTestCarts(db)

	_, err := carts.Add(testUser, item.ID)
	if !apperr.IsKind(err, apperr.Validation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Latte", 4.50)
	carts := newTestCarts(db)

	carts.Add(testUser, item.ID)
	cart := carts.SetQuantity(testUser, item.ID, 0)
	if len(cart.Lines) != 0 {
		t.Fatalf("want empty cart after qty 0, got %d lines", len(cart.Lines))
	}

	// same result as an explicit remove
	carts.Add(testUser, item.ID)
	cart = carts.Remove(testUser, item.ID)
	if len(cart.Lines) != 0 {
		t.Fatalf("want empty cart after remove, got %d lines", len(cart.Lines))
	}
}

func TestSetQuantityRecomputesSubtotal(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Mocha", 5.50)
	carts := newTestCarts(db)

	carts.Add(testUser, item.ID)
	cart := carts.SetQuantity(testUser, item.ID, 4)
	if cart.Lines[0].Subtotal != 4*5.50 {
		t.Errorf("want subtotal %.2f, got %.2f", 4*5.50, cart.Lines[0].Subtotal)
	}
	if cart.Total != 4*5.50 {
		t.Errorf("want total %.2f, got %.2f", 4*5.50, cart.Total)
	}
}

func TestUnknownItemIsNoOp(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Latte", 4.50)
	carts := newTestCarts(db)

	carts.Add(testUser, item.ID)
	before := carts.Get(testUser)

	carts.SetQuantity(testUser, 999, 5)
	carts.Remove(testUser, 999)

	after := carts.Get(testUser)
	if len(after.Lines) != len(before.Lines) || after.Total != before.Total {
		t.Errorf("cart changed on unknown item id: %+v -> %+v", before, after)
	}
}

func TestTotal(t *testing.T) {
	db := newTestDB(t)
	mocha := seedMenuItem(t, db, "Iced Mocha", 5.50)
	capp := seedMenuItem(t, db, "Cappuccino", 4.25)
	carts := newTestCarts(db)

	if got := carts.Total(testUser); got != 0 {
		t.Fatalf("empty cart total: want 0, got %.2f", got)
	}

	carts.Add(testUser, mocha.ID)
	carts.Add(testUser, mocha.ID)
	carts.Add(testUser, capp.ID)

	if got := carts.Total(testUser); got != 15.25 {
		t.Errorf("want total 15.25, got %.2f", got)
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Latte", 4.50)
	carts := newTestCarts(db)

	carts.Add(1, item.ID)
	carts.Add(2, item.ID)
	carts.SetQuantity(2, item.ID, 5)

	if q := carts.Get(1).Lines[0].Quantity; q != 1 {
		t.Errorf("user 1 quantity: want 1, got %d", q)
	}
	if q := carts.Get(2).Lines[0].Quantity; q != 5 {
		t.Errorf("user 2 quantity: want 5, got %d", q)
	}
}
