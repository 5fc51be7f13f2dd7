package gen

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	catalog  *fakeCatalog
	orders   *fakeOrders
	accounts *fakeAccounts
	gen      *OrderGenerator
}

func newOrderFixture(products int, gmtOffset int, seed int64) *orderFixture {
	catalog := newFakeCatalog()
	catalog.addExisting(products)
	orders := newFakeOrders()
	accounts := newFakeAccounts()

	rnd := rand.New(rand.NewSource(seed))
	faker := gofakeit.New(uint64(seed))
	placer := NewPlacer(gmtOffset, rnd, fixedNow)
	identity := NewIdentitySynthesizer(faker, nil, rnd)
	customers := &CustomerGenerator{Accounts: accounts, Identity: identity, Placer: placer}

	return &orderFixture{
		catalog:  catalog,
		orders:   orders,
		accounts: accounts,
		gen: &OrderGenerator{
			Catalog:  catalog,
			Orders:   orders,
			Resolver: &CustomerResolver{Accounts: accounts, Customers: customers, Identity: identity, Placer: placer},
			Faker:    faker,
			Rnd:      rnd,
			Weights:  DefaultWeights(),
		},
	}
}

func TestOrderGeneratorEmptyCatalog(t *testing.T) {
	f := newOrderFixture(0, 0, 1)

	_, err := f.gen.Generate(context.Background(), 90, GuestSpec())
	assert.ErrorIs(t, err, ErrNoProducts)
}

func TestOrderGeneratorGuestOrders(t *testing.T) {
	f := newOrderFixture(10, 0, 2)
	ctx := context.Background()
	txnPattern := regexp.MustCompile(`^[A-Z]+\d{13}$`)

	for i := 0; i < 50; i++ {
		res, err := f.gen.Generate(ctx, 90, GuestSpec())
		require.NoError(t, err)
		assert.Empty(t, res.Failed())
		assert.True(t, res.Guest)

		rec := f.orders.orders[res.OrderID]
		assert.Zero(t, rec.draft.CustomerID)
		assert.Equal(t, "shop-seeder", rec.draft.CreatedVia)
		assert.NotEmpty(t, rec.draft.CustomerIP)
		assert.NotEmpty(t, rec.draft.UserAgent)
		assert.NotEmpty(t, rec.billing.FirstName)
		assert.Equal(t, rec.billing, rec.shipping)
		assert.True(t, rec.totalsRecalced)
		assert.NotEmpty(t, rec.gateway)
		assert.False(t, rec.createdLocal.IsZero())
		assert.Equal(t, rec.createdLocal, rec.createdGMT)

		require.Equal(t, res.Items, len(rec.items))
		assert.GreaterOrEqual(t, res.Items, 1)
		assert.LessOrEqual(t, res.Items, 10)
		seen := make(map[uint]bool)
		for _, item := range rec.items {
			assert.False(t, seen[item.ProductID], "product %d added twice", item.ProductID)
			seen[item.ProductID] = true
			assert.GreaterOrEqual(t, item.Quantity, 1)
			assert.LessOrEqual(t, item.Quantity, 5)
		}

		if res.Paid {
			assert.Regexp(t, txnPattern, rec.transactionID)
			assert.True(t, strings.HasPrefix(rec.transactionID, strings.ToUpper(rec.gateway)))
			assert.Equal(t, rec.createdLocal, rec.paidAt)
		} else {
			assert.Empty(t, rec.transactionID)
		}
	}
}

func TestOrderGeneratorLineItemCap(t *testing.T) {
	f := newOrderFixture(60, 0, 3)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		res, err := f.gen.Generate(ctx, 30, GuestSpec())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Items, 1)
		assert.LessOrEqual(t, res.Items, 50)
	}
}

func TestOrderGeneratorUnknownCustomerFallsBackToGuest(t *testing.T) {
	f := newOrderFixture(5, 0, 4)

	res, err := f.gen.Generate(context.Background(), 30, ExistingSpec(999))
	require.NoError(t, err)
	assert.True(t, res.Guest)
	assert.Zero(t, f.orders.orders[res.OrderID].draft.CustomerID)
}

func TestOrderGeneratorExistingCustomerDates(t *testing.T) {
	f := newOrderFixture(5, 0, 5)
	ctx := context.Background()

	registered := testNow.Add(-3*24*time.Hour - 7*time.Hour)
	id, err := f.accounts.CreateCustomer(ctx, CustomerDraft{
		Email: "jo@example.com", Username: "jo", FirstName: "Jo", LastName: "Park",
		RegisteredAt: registered,
	})
	require.NoError(t, err)
	require.NoError(t, f.accounts.SetAddressMeta(ctx, id,
		Address{FirstName: "Jo", LastName: "Park", Email: "jo@example.com"},
		Address{FirstName: "Jo", LastName: "Park", Email: "jo@example.com"},
		registered,
	))

	for i := 0; i < 200; i++ {
		res, err := f.gen.Generate(ctx, 90, ExistingSpec(id))
		require.NoError(t, err)
		assert.False(t, res.Guest)

		rec := f.orders.orders[res.OrderID]
		assert.Equal(t, id, rec.draft.CustomerID)
		assert.False(t, rec.createdLocal.Before(registered))
	}
}

func TestOrderGeneratorNewCustomer(t *testing.T) {
	f := newOrderFixture(5, 0, 6)

	res, err := f.gen.Generate(context.Background(), 30, NewCustomerSpec())
	require.NoError(t, err)
	assert.False(t, res.Guest)

	rec := f.orders.orders[res.OrderID]
	require.NotZero(t, rec.draft.CustomerID)
	registered := f.accounts.drafts[rec.draft.CustomerID].RegisteredAt
	assert.True(t, rec.createdLocal.After(registered))
}

func TestOrderGeneratorSkipsStaleProducts(t *testing.T) {
	f := newOrderFixture(2, 0, 7)
	f.orders.missing[2] = true
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		res, err := f.gen.Generate(ctx, 30, GuestSpec())
		require.NoError(t, err)
		assert.Empty(t, res.Failed())
		for _, item := range f.orders.orders[res.OrderID].items {
			assert.Equal(t, uint(1), item.ProductID)
		}
	}
}

func TestOrderGeneratorForcedPayment(t *testing.T) {
	f := newOrderFixture(5, 2, 8)
	f.gen.Weights = Weights{
		Statuses:        Weighted[string]{{Value: "completed", Weight: 1}},
		Gateways:        Weighted[string]{{Value: "stripe", Weight: 1}},
		Quantities:      Weighted[int]{{Value: 1, Weight: 1}},
		PaidOdds:        Weighted[bool]{{Value: true, Weight: 1}},
		CustomerChances: DefaultWeights().CustomerChances,
	}

	res, err := f.gen.Generate(context.Background(), 30, GuestSpec())
	require.NoError(t, err)
	assert.True(t, res.Paid)
	assert.Equal(t, "completed", res.Status)

	rec := f.orders.orders[res.OrderID]
	assert.Equal(t, "stripe", rec.gateway)
	assert.Equal(t, "Stripe", rec.gatewayTitle)
	assert.Regexp(t, regexp.MustCompile(`^STRIPE\d{13}$`), rec.transactionID)
	assert.Equal(t, rec.createdLocal.Add(-2*time.Hour), rec.createdGMT)
}
