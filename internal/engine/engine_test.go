package engine_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pos-service/internal/engine"
	"pos-service/internal/model"
	"pos-service/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newEngine builds an engine over the given adapter with a deterministic
// id sequence and a clock that advances one second per call.
func newEngine(t *testing.T, adapter store.Adapter) *engine.Engine {
	t.Helper()
	var id int
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return engine.New(adapter, zap.NewNop(),
		engine.WithIDGenerator(func() string {
			id++
			return fmt.Sprintf("id-%03d", id)
		}),
		engine.WithClock(func() time.Time {
			base = base.Add(time.Second)
			return base
		}),
	)
}

func seedSlot[T any](t *testing.T, adapter store.Adapter, key string, value T) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), adapter, key, value))
}

// withoutEmail pre-seeds empty settings so the email echo stays off.
func withoutEmail(t *testing.T, adapter store.Adapter) {
	t.Helper()
	seedSlot(t, adapter, "pos-settings", model.Settings{})
}

func findProduct(t *testing.T, e *engine.Engine, id string) model.Product {
	t.Helper()
	for _, p := range e.Products() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("product %s not found", id)
	return model.Product{}
}

func TestLoadFallsBackToSeedDefaults(t *testing.T) {
	e := newEngine(t, store.NewMemory())

	assert.Len(t, e.Categories(), 4)
	assert.Len(t, e.Products(), 6)
	assert.Empty(t, e.Sales())
	assert.Empty(t, e.Notifications())
	assert.Equal(t, "admin@example.com", e.Settings().NotificationEmail)
}

func TestLoadIgnoresCorruptSlot(t *testing.T) {
	adapter := store.NewMemory()
	require.NoError(t, adapter.Save(context.Background(), "pos-products", []byte("{not json")))

	e := newEngine(t, adapter)
	assert.Len(t, e.Products(), 6, "corrupt slot falls back to the seed products")
}

func TestAddCategory(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	c := e.AddCategory("Surgelés", "🍦")

	assert.NotEmpty(t, c.ID)
	assert.Len(t, e.Categories(), 5)

	notifications := e.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationSuccess, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "Surgelés")
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	// Seed category "1" is referenced by p1 and p5.
	err := e.DeleteCategory("1")
	require.ErrorIs(t, err, engine.ErrCategoryInUse)

	assert.Len(t, e.Categories(), 4, "category list unchanged")
	notifications := e.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationError, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "Boissons Gazeuses")
}

func TestDeleteCategoryUnknownID(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	err := e.DeleteCategory("missing")
	require.ErrorIs(t, err, engine.ErrNotFound)

	assert.Len(t, e.Categories(), 4)
	notifications := e.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationError, notifications[0].Type)
}

func TestDeleteCategoryRemovesUnreferenced(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	c := e.AddCategory("Surgelés", "🍦")
	require.NoError(t, e.DeleteCategory(c.ID))

	assert.Len(t, e.Categories(), 4)
	notifications := e.Notifications()
	assert.Equal(t, model.NotificationInfo, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "supprimée")
}

func TestAddProduct(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	p := e.AddProduct(engine.ProductInput{
		Name:          "Jus d'orange 1L",
		CategoryID:    "1",
		Stock:         30,
		SalePrice:     110,
		PurchasePrice: 80,
	})

	assert.NotEmpty(t, p.ID)
	assert.Zero(t, p.TotalSales)
	assert.Len(t, e.Products(), 7)
	assert.Equal(t, model.NotificationSuccess, e.Notifications()[0].Type)
}

func TestUpdateProductReplacesWholesale(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	p := findProduct(t, e, "p1")
	p.Name = "Coca-Cola 1L"
	p.SalePrice = 140
	p.Stock = 25
	require.NoError(t, e.UpdateProduct(p))

	got := findProduct(t, e, "p1")
	assert.Equal(t, "Coca-Cola 1L", got.Name)
	assert.Equal(t, 140.0, got.SalePrice)
	assert.Equal(t, 25, got.Stock)
	assert.Equal(t, model.NotificationInfo, e.Notifications()[0].Type)
}

func TestUpdateProductUnknownID(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	err := e.UpdateProduct(model.Product{ID: "missing", Name: "Fantôme"})
	require.ErrorIs(t, err, engine.ErrNotFound)

	assert.Len(t, e.Products(), 6, "no record changed")
	notifications := e.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationError, notifications[0].Type, "no spurious 'updated' notification")
}

func TestSaleSnapshotsSurvivePriceChange(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	sale, err := e.AddSale("p1", 2)
	require.NoError(t, err)
	assert.Equal(t, 75.0, sale.UnitPrice)
	assert.Equal(t, 150.0, sale.Total)
	assert.Equal(t, 50.0, sale.Profit)

	p := findProduct(t, e, "p1")
	p.SalePrice = 200
	p.PurchasePrice = 10
	require.NoError(t, e.UpdateProduct(p))

	got := e.Sales()[0]
	assert.Equal(t, 75.0, got.UnitPrice, "sale snapshot is immutable")
	assert.Equal(t, 150.0, got.Total)
	assert.Equal(t, 50.0, got.Profit)
}

func TestDeleteProduct(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	assert.True(t, e.DeleteProduct("p1"))
	assert.Len(t, e.Products(), 5)
	assert.Equal(t, model.NotificationInfo, e.Notifications()[0].Type)
}

func TestDeleteProductSilentWhenMissing(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	assert.False(t, e.DeleteProduct("missing"))
	assert.Len(t, e.Products(), 6)
	assert.Empty(t, e.Notifications(), "no notification for a missing product")
}

func TestAddSaleRejectsUnknownProduct(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	before := e.Products()
	_, err := e.AddSale("missing", 1)
	require.ErrorIs(t, err, engine.ErrNotFound)

	assert.Empty(t, e.Sales())
	assert.Equal(t, before, e.Products(), "no stock mutated")
	notifications := e.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationError, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "missing")
}

func TestAddSaleRejectsInsufficientStock(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	// p3 has 8 in stock.
	_, err := e.AddSale("p3", 9)
	require.ErrorIs(t, err, engine.ErrInsufficientStock)

	assert.Empty(t, e.Sales())
	p := findProduct(t, e, "p3")
	assert.Equal(t, 8, p.Stock, "stock unchanged on rejection")
	assert.Equal(t, 40, p.TotalSales)

	notifications := e.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationError, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "Restant: 8")
}

func TestAddSaleLowStockWarning(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	sale, err := e.AddSale("p3", 3)
	require.NoError(t, err)
	assert.Equal(t, 150.0, sale.UnitPrice)
	assert.Equal(t, 450.0, sale.Total)
	assert.Equal(t, 150.0, sale.Profit)

	p := findProduct(t, e, "p3")
	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, 43, p.TotalSales)

	// Newest first: the low-stock warning follows the sale success.
	notifications := e.Notifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, model.NotificationWarning, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "Restant: 5")
	assert.Equal(t, model.NotificationSuccess, notifications[1].Type)
}

func TestAddSaleDepletingStockEmitsError(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	p := e.AddProduct(engine.ProductInput{
		Name: "Dernière pile", CategoryID: "3", Stock: 1, SalePrice: 50, PurchasePrice: 30,
	})
	_, err := e.AddSale(p.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, findProduct(t, e, p.ID).Stock)

	notifications := e.Notifications()
	require.Len(t, notifications, 3) // product created, sale success, out of stock
	assert.Equal(t, model.NotificationError, notifications[0].Type, "stock zero escalates to error, not warning")
	assert.Contains(t, notifications[0].Message, "rupture de stock")
	assert.Equal(t, model.NotificationSuccess, notifications[1].Type)
}

func TestStockNeverNegative(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	// p3 starts at 8; keep selling 3 until the engine refuses.
	for i := 0; i < 5; i++ {
		_, err := e.AddSale("p3", 3)
		stock := findProduct(t, e, "p3").Stock
		assert.GreaterOrEqual(t, stock, 0)
		if err != nil {
			require.ErrorIs(t, err, engine.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 2, findProduct(t, e, "p3").Stock)
	assert.Len(t, e.Sales(), 2)
}

func TestUpdateSettings(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	e.UpdateSettings(model.Settings{NotificationEmail: "gerant@magasin.ht"})

	assert.Equal(t, "gerant@magasin.ht", e.Settings().NotificationEmail)
	notifications := e.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationSuccess, notifications[0].Type)
	assert.Equal(t, "Paramètres mis à jour.", notifications[0].Message)
}

func TestStatePersistsAcrossEngines(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e1 := newEngine(t, adapter)

	e1.AddCategory("Surgelés", "🍦")
	_, err := e1.AddSale("p3", 3)
	require.NoError(t, err)

	e2 := engine.New(adapter, zap.NewNop())
	assert.Equal(t, e1.Categories(), e2.Categories())
	assert.Equal(t, e1.Products(), e2.Products())
	assert.Equal(t, e1.Sales(), e2.Sales())
	assert.Equal(t, e1.Notifications(), e2.Notifications())
	assert.Equal(t, e1.Settings(), e2.Settings())
}

func TestSummarize(t *testing.T) {
	adapter := store.NewMemory()
	withoutEmail(t, adapter)
	e := newEngine(t, adapter)

	s := e.Summarize()
	assert.Zero(t, s.SaleCount)
	assert.Equal(t, 6, s.ProductCount)
	assert.Equal(t, 1, s.LowStock, "p3 sits at 8")
	assert.Equal(t, 1, s.OutOfStock, "p5 is empty")

	_, err := e.AddSale("p1", 2)
	require.NoError(t, err)
	_, err = e.AddSale("p2", 4)
	require.NoError(t, err)

	s = e.Summarize()
	assert.Equal(t, 2, s.SaleCount)
	assert.Equal(t, 2*75.0+4*15.0, s.Revenue)
	assert.Equal(t, 2*25.0+4*7.0, s.Profit)
}
