package store

import "time"

// Address is the column block reused for billing/shipping on customers and
// orders via gorm's embedded prefixing.
type Address struct {
	FirstName string `gorm:"size:64"`
	LastName  string `gorm:"size:64"`
	Company   string `gorm:"size:64"`
	Street    string `gorm:"size:128"`
	City      string `gorm:"size:64"`
	State     string `gorm:"size:64"`
	Postcode  string `gorm:"size:16"`
	Country   string `gorm:"size:2"`
	Email     string `gorm:"size:128"`
	Phone     string `gorm:"size:32"`
}

// Product is one catalog entry. Titles are unique across the whole store.
type Product struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:191;uniqueIndex"`
	Category  string `gorm:"size:64;index"`
	SKU       string `gorm:"size:32;index"`
	Content   string `gorm:"type:text"`
	Excerpt   string `gorm:"size:512"`
	Price     float64
	ImageFile string `gorm:"size:191"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attachment records an image file bound to a product; the filename index
// backs the image-uniqueness check.
type Attachment struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"index:idx_attachments_product_id"`
	Filename  string `gorm:"size:191;index:idx_attachments_filename"`
	Size      int64
	CreatedAt time.Time
}

// Customer is a persisted account with mirrored billing/shipping meta.
type Customer struct {
	ID            uint      `gorm:"primaryKey"`
	Email         string    `gorm:"size:128;index"`
	Username      string    `gorm:"size:64;index"`
	Credential    string    `gorm:"size:64"`
	FirstName     string    `gorm:"size:64"`
	LastName      string    `gorm:"size:64"`
	Billing       Address   `gorm:"embedded;embeddedPrefix:billing_"`
	Shipping      Address   `gorm:"embedded;embeddedPrefix:shipping_"`
	RegisteredAt  time.Time `gorm:"index"`
	MetaUpdatedAt time.Time
}

// Order is one transaction. CustomerID 0 means a guest order. The GMT
// columns carry the offset-adjusted variants of the synthesized dates.
type Order struct {
	ID                  uint    `gorm:"primaryKey"`
	CustomerID          uint    `gorm:"index:idx_orders_customer_id"`
	Status              string  `gorm:"size:32;index"`
	CreatedVia          string  `gorm:"size:32"`
	CustomerIP          string  `gorm:"size:45"`
	UserAgent           string  `gorm:"size:255"`
	Billing             Address `gorm:"embedded;embeddedPrefix:billing_"`
	Shipping            Address `gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod       string  `gorm:"size:32"`
	PaymentMethodTitle  string  `gorm:"size:32"`
	ShippingMethod      string  `gorm:"size:32"`
	ShippingMethodTitle string  `gorm:"size:64"`
	TransactionID       string  `gorm:"size:64"`
	PaidAt              *time.Time
	Total               float64
	CreatedAt           time.Time `gorm:"index"`
	CreatedAtGMT        time.Time
	UpdatedAt           time.Time
	UpdatedAtGMT        time.Time
	Items               []OrderItem
}

// OrderItem is one product line on an order.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   uint   `gorm:"index:idx_order_items_order_id"`
	ProductID uint   `gorm:"index"`
	Title     string `gorm:"size:191"`
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// Review is a rated product comment; the rating itself lives in ReviewMeta.
type Review struct {
	ID          uint   `gorm:"primaryKey"`
	ProductID   uint   `gorm:"index:idx_reviews_product_id"`
	AuthorID    uint   // 0 = guest
	AuthorName  string `gorm:"size:128"`
	AuthorEmail string `gorm:"size:128"`
	Content     string `gorm:"type:text"`
	AuthorIP    string `gorm:"size:45"`
	UserAgent   string `gorm:"size:255"`
	Approved    bool
	CreatedAt   time.Time `gorm:"index"`
}

// ReviewMeta is keyed metadata attached to a review.
type ReviewMeta struct {
	ID       uint   `gorm:"primaryKey"`
	ReviewID uint   `gorm:"index:idx_review_meta_review_id"`
	Key      string `gorm:"size:64;column:meta_key"`
	Value    string `gorm:"size:255;column:meta_value"`
}
