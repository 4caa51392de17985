// Package engine owns the five persisted collections (categories,
// products, sales, notifications, settings) and exposes one operation per
// mutation. Operations are serialized, applied atomically in memory and
// persisted slot by slot; every outcome feeds the notification cascade.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pos-service/internal/model"
	"pos-service/pkg/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Persistence slot names, one per collection.
const (
	keyCategories    = "pos-categories"
	keyProducts      = "pos-products"
	keySales         = "pos-sales"
	keyNotifications = "pos-notifications"
	keySettings      = "pos-settings"
)

// lowStockThreshold is the post-sale stock level at or below which a
// low-stock warning fires (a level of exactly zero escalates to an error).
const lowStockThreshold = 10

var (
	// ErrNotFound means a referenced product or category id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrCategoryInUse means deletion was blocked by referencing products.
	ErrCategoryInUse = errors.New("category in use")
	// ErrInsufficientStock means the requested quantity exceeds available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Engine is the transactional state manager. All mutations go through its
// operations; the mutex serializes them so each runs to completion against
// a consistent view of the collections. Rejected operations leave state
// untouched and surface both as a returned error and an error notification.
type Engine struct {
	mu    sync.Mutex
	store store.Adapter
	log   *zap.Logger

	now   func() time.Time
	newID func() string

	categories    []model.Category
	products      []model.Product
	sales         []model.Sale
	notifications []model.Notification
	settings      model.Settings
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides the id source. Intended for tests.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// New loads the five collections from the adapter. Any slot that is
// missing or unreadable falls back to its seed default, so a fresh (or
// corrupted) store always yields a working engine.
func New(adapter store.Adapter, log *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		store: adapter,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}

	ctx := context.Background()
	e.categories = store.Load(ctx, adapter, keyCategories, model.DefaultCategories())
	e.products = store.Load(ctx, adapter, keyProducts, model.DefaultProducts())
	e.sales = store.Load(ctx, adapter, keySales, []model.Sale{})
	e.notifications = store.Load(ctx, adapter, keyNotifications, []model.Notification{})
	e.settings = store.Load(ctx, adapter, keySettings, model.DefaultSettings())

	log.Info("State loaded",
		zap.Int("categories", len(e.categories)),
		zap.Int("products", len(e.products)),
		zap.Int("sales", len(e.sales)),
		zap.Int("notifications", len(e.notifications)))
	return e
}

// persist saves one collection. Save failures are logged and swallowed:
// persistence is fire-and-forget from the engine's perspective.
func (e *Engine) persist(key string, value any) {
	if err := store.Save(context.Background(), e.store, key, value); err != nil {
		e.log.Error("Failed to persist slot", zap.String("slot", key), zap.Error(err))
	}
}

// AddCategory creates a category with a fresh unique id. Always succeeds.
func (e *Engine) AddCategory(name, icon string) model.Category {
	e.mu.Lock()
	defer e.mu.Unlock()

	category := model.Category{ID: e.newID(), Name: name, Icon: icon}
	e.categories = append(e.categories, category)
	e.persist(keyCategories, e.categories)
	e.notify(fmt.Sprintf("Catégorie %q ajoutée avec succès.", name), model.NotificationSuccess)

	e.log.Info("Category created",
		zap.String("category_id", category.ID),
		zap.String("name", category.Name))
	return category
}

// DeleteCategory removes a category. It is refused while any product still
// references the category, and an unknown id is reported as not found
// rather than silently filtered away.
func (e *Engine) DeleteCategory(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.categoryIndex(id)
	if idx < 0 {
		e.notify(fmt.Sprintf("Catégorie introuvable. ID: %s", id), model.NotificationError)
		e.log.Warn("Category not found for deletion", zap.String("category_id", id))
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}

	name := e.categories[idx].Name
	for _, p := range e.products {
		if p.CategoryID == id {
			e.notify(fmt.Sprintf("Impossible de supprimer la catégorie %q. Elle contient des produits.", name), model.NotificationError)
			e.log.Warn("Cannot delete category that is being used by products",
				zap.String("category_id", id),
				zap.String("name", name))
			return fmt.Errorf("category %s: %w", id, ErrCategoryInUse)
		}
	}

	e.categories = append(e.categories[:idx], e.categories[idx+1:]...)
	e.persist(keyCategories, e.categories)
	e.notify(fmt.Sprintf("Catégorie %q supprimée.", name), model.NotificationInfo)

	e.log.Info("Category deleted",
		zap.String("category_id", id),
		zap.String("name", name))
	return nil
}

// ProductInput is the caller-supplied part of a new product.
type ProductInput struct {
	Name          string
	CategoryID    string
	Stock         int
	SalePrice     float64
	PurchasePrice float64
}

// AddProduct creates a product with a fresh id and zero cumulative sales.
// The category reference is not validated here; that is the caller's
// responsibility.
func (e *Engine) AddProduct(in ProductInput) model.Product {
	e.mu.Lock()
	defer e.mu.Unlock()

	product := model.Product{
		ID:            e.newID(),
		Name:          in.Name,
		CategoryID:    in.CategoryID,
		Stock:         in.Stock,
		SalePrice:     in.SalePrice,
		PurchasePrice: in.PurchasePrice,
		TotalSales:    0,
	}
	e.products = append(e.products, product)
	e.persist(keyProducts, e.products)
	e.notify(fmt.Sprintf("Produit %q ajouté avec succès.", in.Name), model.NotificationSuccess)

	e.log.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int("stock", product.Stock))
	return product
}

// UpdateProduct replaces the product with the matching id wholesale. An
// unknown id is a not-found error and emits no "updated" notification.
// Existing sale records keep their price snapshots regardless.
func (e *Engine) UpdateProduct(p model.Product) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.productIndex(p.ID)
	if idx < 0 {
		e.notify(fmt.Sprintf("Produit introuvable. ID: %s", p.ID), model.NotificationError)
		e.log.Warn("Product not found for update", zap.String("product_id", p.ID))
		return fmt.Errorf("product %s: %w", p.ID, ErrNotFound)
	}

	e.products[idx] = p
	e.persist(keyProducts, e.products)
	e.notify(fmt.Sprintf("Produit %q mis à jour.", p.Name), model.NotificationInfo)

	e.log.Info("Product updated",
		zap.String("product_id", p.ID),
		zap.String("name", p.Name))
	return nil
}

// DeleteProduct removes the product with the matching id and reports
// whether it existed. Deleting an unknown id is a silent no-op: no
// notification is emitted.
func (e *Engine) DeleteProduct(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.productIndex(id)
	if idx < 0 {
		e.log.Warn("Product not found for deletion", zap.String("product_id", id))
		return false
	}

	name := e.products[idx].Name
	e.products = append(e.products[:idx], e.products[idx+1:]...)
	e.persist(keyProducts, e.products)
	e.notify(fmt.Sprintf("Produit %q supprimé.", name), model.NotificationInfo)

	e.log.Info("Product deleted",
		zap.String("product_id", id),
		zap.String("name", name))
	return true
}

// AddSale records a sale of quantity units of the given product. The
// operation is a single transaction: a rejection (unknown product,
// insufficient stock) leaves the sales list and the product untouched. On
// success the sale snapshots the current prices, stock is decremented,
// cumulative sales incremented, and the post-sale stock level is checked
// against the low-stock thresholds.
func (e *Engine) AddSale(productID string, quantity int) (model.Sale, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.productIndex(productID)
	if idx < 0 {
		e.notify(fmt.Sprintf("Produit non trouvé. ID: %s", productID), model.NotificationError)
		e.log.Warn("Product not found for sale", zap.String("product_id", productID))
		return model.Sale{}, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}

	p := e.products[idx]
	if p.Stock < quantity {
		e.notify(fmt.Sprintf("Stock insuffisant pour %q. Restant: %d", p.Name, p.Stock), model.NotificationError)
		e.log.Warn("Insufficient stock for sale",
			zap.String("product_id", productID),
			zap.Int("stock", p.Stock),
			zap.Int("requested", quantity))
		return model.Sale{}, fmt.Errorf("product %s: %w", productID, ErrInsufficientStock)
	}

	sale := model.Sale{
		ID:          e.newID(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		UnitPrice:   p.SalePrice,
		Total:       p.SalePrice * float64(quantity),
		Profit:      (p.SalePrice - p.PurchasePrice) * float64(quantity),
		Date:        e.now(),
	}
	e.sales = append([]model.Sale{sale}, e.sales...)

	p.Stock -= quantity
	p.TotalSales += quantity
	e.products[idx] = p

	e.persist(keySales, e.sales)
	e.persist(keyProducts, e.products)

	e.notify(fmt.Sprintf("Vente de %dx %q enregistrée.", quantity, p.Name), model.NotificationSuccess)
	switch {
	case p.Stock == 0:
		e.notify(fmt.Sprintf("%q est en rupture de stock!", p.Name), model.NotificationError)
	case p.Stock <= lowStockThreshold:
		e.notify(fmt.Sprintf("Stock faible pour %q! Restant: %d", p.Name, p.Stock), model.NotificationWarning)
	}

	e.log.Info("Sale recorded",
		zap.String("sale_id", sale.ID),
		zap.String("product_id", p.ID),
		zap.Int("quantity", quantity),
		zap.Float64("total", sale.Total),
		zap.Int("remaining_stock", p.Stock))
	return sale, nil
}

// UpdateSettings replaces the settings record wholesale.
func (e *Engine) UpdateSettings(s model.Settings) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.settings = s
	e.persist(keySettings, e.settings)
	e.notify("Paramètres mis à jour.", model.NotificationSuccess)

	e.log.Info("Settings updated",
		zap.String("notification_email", s.NotificationEmail))
}

func (e *Engine) categoryIndex(id string) int {
	for i, c := range e.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) productIndex(id string) int {
	for i, p := range e.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
