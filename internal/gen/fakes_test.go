package gen

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// In-memory collaborators for generator tests.

type fakeCatalog struct {
	nextID uint
	ids    []uint
	titles map[string]uint
	drafts map[uint]ProductDraft
	images map[string]uint // filename -> product id
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		titles: make(map[string]uint),
		drafts: make(map[uint]ProductDraft),
		images: make(map[string]uint),
	}
}

func (f *fakeCatalog) CreateProduct(_ context.Context, draft ProductDraft) (uint, error) {
	f.nextID++
	f.ids = append(f.ids, f.nextID)
	f.titles[draft.Title] = f.nextID
	f.drafts[f.nextID] = draft
	return f.nextID, nil
}

func (f *fakeCatalog) TitleExists(_ context.Context, title string) (bool, error) {
	_, ok := f.titles[title]
	return ok, nil
}

func (f *fakeCatalog) ProductIDs(_ context.Context) ([]uint, error) {
	return append([]uint(nil), f.ids...), nil
}

func (f *fakeCatalog) ImageAttached(_ context.Context, filename string) (bool, error) {
	_, ok := f.images[filename]
	return ok, nil
}

func (f *fakeCatalog) AttachImage(_ context.Context, productID uint, filename string, _ []byte) error {
	f.images[filename] = productID
	return nil
}

// addExisting seeds the catalog with n bare products.
func (f *fakeCatalog) addExisting(n int) {
	for i := 0; i < n; i++ {
		f.nextID++
		f.ids = append(f.ids, f.nextID)
		title := fmt.Sprintf("Product %d", f.nextID)
		f.titles[title] = f.nextID
	}
}

type fakeAccounts struct {
	nextID    uint
	customers map[uint]*CustomerInfo
	drafts    map[uint]CustomerDraft
	metaAt    map[uint]time.Time
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		customers: make(map[uint]*CustomerInfo),
		drafts:    make(map[uint]CustomerDraft),
		metaAt:    make(map[uint]time.Time),
	}
}

func (f *fakeAccounts) CreateCustomer(_ context.Context, draft CustomerDraft) (uint, error) {
	f.nextID++
	f.drafts[f.nextID] = draft
	f.customers[f.nextID] = &CustomerInfo{
		ID:           f.nextID,
		FirstName:    draft.FirstName,
		LastName:     draft.LastName,
		RegisteredAt: draft.RegisteredAt,
	}
	return f.nextID, nil
}

func (f *fakeAccounts) SetAddressMeta(_ context.Context, id uint, billing, shipping Address, updatedAt time.Time) error {
	info, ok := f.customers[id]
	if !ok {
		return fmt.Errorf("no customer %d", id)
	}
	info.Billing = billing
	info.Shipping = shipping
	f.metaAt[id] = updatedAt
	return nil
}

func (f *fakeAccounts) Customer(_ context.Context, id uint) (*CustomerInfo, error) {
	info, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *info
	return &cp, nil
}

func (f *fakeAccounts) RandomCustomerID(_ context.Context) (uint, error) {
	for id := range f.customers {
		return id, nil
	}
	return 0, nil
}

type fakeOrderRecord struct {
	draft    OrderDraft
	items    []fakeLineItem
	billing  Address
	shipping Address

	totalsRecalced bool
	gateway        string
	gatewayTitle   string
	transactionID  string
	paidAt         time.Time

	createdLocal time.Time
	createdGMT   time.Time
}

type fakeLineItem struct {
	ProductID uint
	Quantity  int
}

type fakeOrders struct {
	nextID  uint
	orders  map[uint]*fakeOrderRecord
	missing map[uint]bool // product ids that fail with ErrUnknownProduct
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{
		orders:  make(map[uint]*fakeOrderRecord),
		missing: make(map[uint]bool),
	}
}

func (f *fakeOrders) CreateOrder(_ context.Context, draft OrderDraft) (uint, error) {
	f.nextID++
	f.orders[f.nextID] = &fakeOrderRecord{draft: draft}
	return f.nextID, nil
}

func (f *fakeOrders) AddLineItem(_ context.Context, orderID, productID uint, quantity int) error {
	if f.missing[productID] {
		return ErrUnknownProduct
	}
	o := f.orders[orderID]
	o.items = append(o.items, fakeLineItem{ProductID: productID, Quantity: quantity})
	return nil
}

func (f *fakeOrders) SetAddresses(_ context.Context, orderID uint, billing, shipping Address) error {
	o := f.orders[orderID]
	o.billing = billing
	o.shipping = shipping
	return nil
}

func (f *fakeOrders) RecalculateTotals(_ context.Context, orderID uint) error {
	f.orders[orderID].totalsRecalced = true
	return nil
}

func (f *fakeOrders) SetPaymentMethod(_ context.Context, orderID uint, gateway, title string) error {
	o := f.orders[orderID]
	o.gateway = gateway
	o.gatewayTitle = title
	return nil
}

func (f *fakeOrders) CompletePayment(_ context.Context, orderID uint, transactionID string, paidAt time.Time) error {
	o := f.orders[orderID]
	o.transactionID = transactionID
	o.paidAt = paidAt
	return nil
}

func (f *fakeOrders) OverrideDates(_ context.Context, orderID uint, local, gmt time.Time) error {
	o := f.orders[orderID]
	o.createdLocal = local
	o.createdGMT = gmt
	return nil
}

type fakeReviewRecord struct {
	draft  ReviewDraft
	rating int
}

type fakeReviews struct {
	nextID  uint
	reviews map[uint]*fakeReviewRecord
}

func newFakeReviews() *fakeReviews {
	return &fakeReviews{reviews: make(map[uint]*fakeReviewRecord)}
}

func (f *fakeReviews) CreateReview(_ context.Context, draft ReviewDraft) (uint, error) {
	f.nextID++
	f.reviews[f.nextID] = &fakeReviewRecord{draft: draft}
	return f.nextID, nil
}

func (f *fakeReviews) AttachRating(_ context.Context, reviewID uint, rating int) error {
	f.reviews[reviewID].rating = rating
	return nil
}

type fakeAssets struct {
	files map[string][]string
	data  map[string][]byte
}

func (f *fakeAssets) List(productType string) ([]string, error) {
	return f.files[productType], nil
}

func (f *fakeAssets) Read(productType, filename string) ([]byte, error) {
	data, ok := f.data[productType+"/"+filename]
	if !ok {
		return nil, fmt.Errorf("no such image %s", filename)
	}
	return data, nil
}

func (f *fakeAssets) Seeded(productType string) bool {
	return len(f.files[productType]) > 0
}

type fakeSeeds struct {
	seeds map[string][]ProductSeed
}

func (f *fakeSeeds) RandomSeed(productType string, rnd *rand.Rand) (ProductSeed, bool) {
	seeds := f.seeds[productType]
	if len(seeds) == 0 {
		return ProductSeed{}, false
	}
	return seeds[rnd.Intn(len(seeds))], true
}
