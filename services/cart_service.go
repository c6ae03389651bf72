// services/cart_service.go
package services

import (
	"fmt"
	"sync"

	"salonstore-backend/catalog"
	"salonstore-backend/models"
	"salonstore-backend/store"

	"github.com/asaskevich/EventBus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const cartStoreKey = "cart"

// CartService owns the visitor's cart: an ordered sequence of line items,
// at most one per product id. Every mutation writes the whole cart through
// the store before returning, so state survives restarts. A mutex
// serializes mutations since HTTP handlers run concurrently.
type CartService struct {
	store    store.Store
	catalog  *catalog.Catalog
	bus      EventBus.Bus
	notifier Notifier

	mu    sync.Mutex
	items []models.CartItem
}

// NewCartService restores the persisted cart, or starts empty when the
// stored value is absent or unreadable.
func NewCartService(st store.Store, cat *catalog.Catalog, bus EventBus.Bus, notifier Notifier) *CartService {
	s := &CartService{store: st, catalog: cat, bus: bus, notifier: notifier}
	s.items = restoreList[models.CartItem](st, cartStoreKey)
	return s
}

// Items returns a copy of the current cart in add order.
func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *CartService) snapshot() []models.CartItem {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Add puts the product in the cart, incrementing the quantity when it is
// already there. Unknown ids fail with ErrUnknownProduct.
func (s *CartService) Add(productID int64) error {
	product, ok := s.catalog.ProductByID(productID)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownProduct, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, models.CartItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Quantity: 1,
		})
	}

	s.persist()
	s.bus.Publish(TopicCartChanged, s.snapshot())
	s.notifier.Notify(models.Notification{
		Title:    "Product added",
		Message:  fmt.Sprintf("%s was added to the cart.", product.Name),
		Severity: models.SeveritySuccess,
	})
	return nil
}

// Remove drops the line item for the product id entirely. Removing an id
// that is not in the cart is a no-op, so the operation is idempotent.
func (s *CartService) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(s.items) {
		return
	}
	s.items = kept

	s.persist()
	s.bus.Publish(TopicCartChanged, s.snapshot())
}

// Total is the sum of price × quantity over all line items; zero for an
// empty cart.
func (s *CartService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Checkout clears a non-empty cart and persists the empty state. There is
// no payment or inventory side effect. An empty cart fails with
// ErrEmptyCart and stays unchanged.
func (s *CartService) Checkout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return ErrEmptyCart
	}
	s.items = []models.CartItem{}

	s.persist()
	s.bus.Publish(TopicCartChanged, s.snapshot())
	s.notifier.Notify(models.Notification{
		Title:    "Purchase complete",
		Message:  "Thank you for your purchase.",
		Severity: models.SeveritySuccess,
	})
	return nil
}

func (s *CartService) persist() {
	if err := s.store.Set(cartStoreKey, s.items); err != nil {
		zap.L().Error("cart persist failed", zap.Error(err))
		s.notifier.Notify(models.Notification{
			Title:    "Storage error",
			Message:  "Your cart could not be saved.",
			Severity: models.SeverityError,
		})
	}
}

// restoreList loads a persisted sequence, defaulting to empty when the key
// is absent or the stored value no longer decodes.
func restoreList[T any](st store.Store, key string) []T {
	var list []T
	found, err := st.Get(key, &list)
	if err != nil {
		zap.L().Warn("stored value unreadable, starting empty",
			zap.String("key", key), zap.Error(err))
	}
	if !found || err != nil || list == nil {
		return []T{}
	}
	return list
}
