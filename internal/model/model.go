package model

import "time"

// NotificationType classifies a notification for display and drives the
// email-echo rule (error and warning notifications are echoed).
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

// Valid reports whether t is one of the four known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationInfo, NotificationWarning, NotificationError, NotificationSuccess:
		return true
	}
	return false
}

// Category groups products. The ID is immutable once created.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Product is a catalog entry with its current stock level. CategoryID is
// only checked against the catalog at deletion time of the category, not
// re-validated on product writes.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CategoryID    string  `json:"categoryId"`
	Stock         int     `json:"stock"`
	SalePrice     float64 `json:"salePrice"`
	PurchasePrice float64 `json:"purchasePrice"`
	TotalSales    int     `json:"totalSales"`
}

// Sale is an immutable fact record. UnitPrice, Total and Profit are
// snapshots taken at sale time; later catalog edits never alter them.
type Sale struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Total       float64   `json:"total"`
	Profit      float64   `json:"profit"`
	Date        time.Time `json:"date"`
}

// Notification is an entry of the append-only alert list, newest first.
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
}

// Settings is the single mutable settings record, replaced wholesale on
// update. An empty NotificationEmail disables the email echo.
type Settings struct {
	NotificationEmail string `json:"notificationEmail"`
}
