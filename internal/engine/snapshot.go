package engine

import (
	"slices"

	"pos-service/internal/model"
)

// The collection accessors return copies. Callers never hold a reference
// into engine-owned state; all mutations go through the operations.

// Categories returns a snapshot of the category list.
func (e *Engine) Categories() []model.Category {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.categories)
}

// Products returns a snapshot of the product list.
func (e *Engine) Products() []model.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.products)
}

// Sales returns a snapshot of the sales list, newest first.
func (e *Engine) Sales() []model.Sale {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.sales)
}

// Notifications returns a snapshot of the notification list, newest first.
func (e *Engine) Notifications() []model.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.notifications)
}

// Settings returns the current settings record.
func (e *Engine) Settings() model.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// Summary aggregates the dashboard figures: lifetime revenue and profit,
// sale count, and how many products sit at or below the low-stock
// threshold or are out of stock entirely.
type Summary struct {
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	SaleCount    int     `json:"saleCount"`
	ProductCount int     `json:"productCount"`
	LowStock     int     `json:"lowStock"`
	OutOfStock   int     `json:"outOfStock"`
}

// Summarize computes the dashboard summary from the current state.
func (e *Engine) Summarize() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Summary{SaleCount: len(e.sales), ProductCount: len(e.products)}
	for _, sale := range e.sales {
		s.Revenue += sale.Total
		s.Profit += sale.Profit
	}
	for _, p := range e.products {
		switch {
		case p.Stock == 0:
			s.OutOfStock++
		case p.Stock <= lowStockThreshold:
			s.LowStock++
		}
	}
	return s
}
