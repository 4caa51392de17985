package model

// EmojiOptions is the icon palette offered when creating a category.
var EmojiOptions = []string{"🥤", "💊", "📦", "🍏", "🥛", "🧼", "💻", "📱", "🍬", "🍦"}

// DefaultCategories returns the seed catalog used when no categories have
// been persisted yet. Callers receive a fresh slice they may mutate.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Boissons Gazeuses", Icon: "🥤"},
		{ID: "2", Name: "Produits Pharmaceutiques", Icon: "💊"},
		{ID: "3", Name: "Articles Divers", Icon: "📦"},
		{ID: "4", Name: "Alimentation", Icon: "🍏"},
	}
}

// DefaultProducts returns the seed products matching DefaultCategories.
func DefaultProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Coca-Cola 500ml", CategoryID: "1", Stock: 50, SalePrice: 75, PurchasePrice: 50, TotalSales: 120},
		{ID: "p2", Name: "Paracétamol 500mg", CategoryID: "2", Stock: 100, SalePrice: 15, PurchasePrice: 8, TotalSales: 250},
		{ID: "p3", Name: "Piles AA (paquet de 4)", CategoryID: "3", Stock: 8, SalePrice: 150, PurchasePrice: 100, TotalSales: 40},
		{ID: "p4", Name: "Pain de mie", CategoryID: "4", Stock: 20, SalePrice: 120, PurchasePrice: 90, TotalSales: 85},
		{ID: "p5", Name: "Sprite 1L", CategoryID: "1", Stock: 0, SalePrice: 125, PurchasePrice: 95, TotalSales: 60},
		{ID: "p6", Name: "Sirop pour la toux", CategoryID: "2", Stock: 15, SalePrice: 250, PurchasePrice: 180, TotalSales: 30},
	}
}

// DefaultSettings returns the settings used when none have been persisted.
func DefaultSettings() Settings {
	return Settings{NotificationEmail: "admin@example.com"}
}
