package gen

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Sentinel errors surfaced by the generators.
var (
	// ErrNoProducts reports order/review generation against an empty catalog.
	ErrNoProducts = errors.New("gen: no products in catalog")
	// ErrUnknownProduct is returned by Orders.AddLineItem when the product id
	// no longer resolves; the order generator skips the line item.
	ErrUnknownProduct = errors.New("store: unknown product")
)

// Address is a postal contact block used for billing and shipping.
type Address struct {
	FirstName string
	LastName  string
	Company   string
	Street    string
	City      string
	State     string
	Postcode  string
	Country   string
	Email     string
	Phone     string
}

// ProductDraft is the payload for a new catalog entry.
type ProductDraft struct {
	Title    string
	Category string
	SKU      string
	Content  string
	Excerpt  string
	Price    float64
}

// Catalog is the product-side persistence collaborator.
type Catalog interface {
	CreateProduct(ctx context.Context, draft ProductDraft) (uint, error)
	TitleExists(ctx context.Context, title string) (bool, error)
	ProductIDs(ctx context.Context) ([]uint, error)
	ImageAttached(ctx context.Context, filename string) (bool, error)
	AttachImage(ctx context.Context, productID uint, filename string, data []byte) error
}

// CustomerDraft is the payload for a new account.
type CustomerDraft struct {
	Email        string
	Username     string
	Credential   string
	FirstName    string
	LastName     string
	RegisteredAt time.Time
}

// CustomerInfo is what the engine reads back about a persisted account.
type CustomerInfo struct {
	ID           uint
	FirstName    string
	LastName     string
	RegisteredAt time.Time
	Billing      Address
	Shipping     Address
}

// Accounts is the customer-side persistence collaborator.
type Accounts interface {
	CreateCustomer(ctx context.Context, draft CustomerDraft) (uint, error)
	SetAddressMeta(ctx context.Context, id uint, billing, shipping Address, updatedAt time.Time) error
	// Customer returns (nil, nil) when the id does not resolve.
	Customer(ctx context.Context, id uint) (*CustomerInfo, error)
	// RandomCustomerID returns 0 when no customers exist.
	RandomCustomerID(ctx context.Context) (uint, error)
}

// OrderDraft is the payload for the base order record.
type OrderDraft struct {
	CustomerID uint // 0 = guest
	Status     string
	CreatedVia string
	CustomerIP string
	UserAgent  string
}

// Orders is the order-side persistence collaborator. The multi-step order
// assembly is best effort: each method mutates the same order record and a
// failure partway leaves a partially configured order.
type Orders interface {
	CreateOrder(ctx context.Context, draft OrderDraft) (uint, error)
	AddLineItem(ctx context.Context, orderID, productID uint, quantity int) error
	SetAddresses(ctx context.Context, orderID uint, billing, shipping Address) error
	RecalculateTotals(ctx context.Context, orderID uint) error
	SetPaymentMethod(ctx context.Context, orderID uint, gateway, title string) error
	CompletePayment(ctx context.Context, orderID uint, transactionID string, paidAt time.Time) error
	OverrideDates(ctx context.Context, orderID uint, local, gmt time.Time) error
}

// ReviewDraft is the payload for a review-type comment.
type ReviewDraft struct {
	ProductID   uint
	AuthorID    uint // 0 = guest
	AuthorName  string
	AuthorEmail string
	Content     string
	AuthorIP    string
	UserAgent   string
	CreatedAt   time.Time
	Approved    bool
}

// Reviews is the comment-side persistence collaborator.
type Reviews interface {
	CreateReview(ctx context.Context, draft ReviewDraft) (uint, error)
	AttachRating(ctx context.Context, reviewID uint, rating int) error
}

// AssetPool enumerates and reads the image files available for a product type.
type AssetPool interface {
	List(productType string) ([]string, error)
	Read(productType, filename string) ([]byte, error)
	Seeded(productType string) bool
}

// ProductSeed is one themed title/category pair from a seed catalog.
type ProductSeed struct {
	Title    string
	Category string
}

// SeedSource serves themed product seeds per type.
type SeedSource interface {
	// RandomSeed returns ok=false when no catalog exists for the type.
	RandomSeed(productType string, rnd *rand.Rand) (ProductSeed, bool)
}
