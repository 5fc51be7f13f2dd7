package gen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// createdVia marks generated orders so they can be told apart from real ones.
const createdVia = "shop-seeder"

// maxLineItems caps the distinct products drawn into one order.
const maxLineItems = 50

// OrderStep records the outcome of one assembly step. Order creation is not
// transactional: later steps may fail or skip while the order still counts
// as created.
type OrderStep struct {
	Name string
	Err  error
}

// OrderResult reports one generated order and its step log.
type OrderResult struct {
	OrderID uint
	Status  string
	Guest   bool
	Items   int
	Paid    bool
	Steps   []OrderStep
}

// Failed returns the steps that did not complete.
func (r *OrderResult) Failed() []OrderStep {
	var failed []OrderStep
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// OrderGenerator composes orders from the shared product catalog.
type OrderGenerator struct {
	Catalog  Catalog
	Orders   Orders
	Resolver *CustomerResolver
	Faker    *gofakeit.Faker
	Rnd      *rand.Rand
	Weights  Weights
}

// Generate builds one order dated within the last fromDays days, attributed
// per the customer spec. It returns an error only when no order record was
// created at all; partial assembly failures are reported through the step log.
func (g *OrderGenerator) Generate(ctx context.Context, fromDays int, spec CustomerSpec) (*OrderResult, error) {
	productIDs, err := g.Catalog.ProductIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load product catalog: %w", err)
	}
	if len(productIDs) == 0 {
		return nil, ErrNoProducts
	}

	who, err := g.Resolver.resolve(ctx, fromDays, spec)
	if err != nil {
		return nil, err
	}

	status, err := g.Weights.Statuses.Pick(g.Rnd)
	if err != nil {
		return nil, err
	}

	orderID, err := g.Orders.CreateOrder(ctx, OrderDraft{
		CustomerID: who.customerID,
		Status:     status,
		CreatedVia: createdVia,
		CustomerIP: g.Faker.IPv4Address(),
		UserAgent:  g.Faker.UserAgent(),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	res := &OrderResult{
		OrderID: orderID,
		Status:  status,
		Guest:   who.customerID == 0,
	}

	g.addLineItems(ctx, res, productIDs)

	res.step("set addresses", g.Orders.SetAddresses(ctx, orderID, who.billing, who.shipping))
	res.step("recalculate totals", g.Orders.RecalculateTotals(ctx, orderID))

	gateway, err := g.Weights.Gateways.Pick(g.Rnd)
	if err != nil {
		res.step("pick gateway", err)
	} else {
		res.step("set payment method", g.Orders.SetPaymentMethod(ctx, orderID, gateway, ucfirst(gateway)))

		paid, err := g.Weights.PaidOdds.Pick(g.Rnd)
		if err != nil {
			res.step("pick paid odds", err)
		} else if paid {
			txn := strings.ToUpper(gateway) + g.Faker.DigitN(13)
			res.step("complete payment", g.Orders.CompletePayment(ctx, orderID, txn, who.placement.Local))
			res.Paid = true
		}
	}

	// The store stamps "now" on creation; overwrite with the synthesized
	// order date, local and offset-adjusted.
	res.step("override dates", g.Orders.OverrideDates(ctx, orderID, who.placement.Local, who.placement.GMT))

	return res, nil
}

// addLineItems draws a random, non-repeating subset of the catalog with
// weighted quantities. Product ids that no longer resolve are skipped, not
// failed.
func (g *OrderGenerator) addLineItems(ctx context.Context, res *OrderResult, productIDs []uint) {
	limit := len(productIDs)
	if limit > maxLineItems {
		limit = maxLineItems
	}
	count := g.Rnd.Intn(limit) + 1

	for _, idx := range g.Rnd.Perm(len(productIDs))[:count] {
		productID := productIDs[idx]
		quantity, err := g.Weights.Quantities.Pick(g.Rnd)
		if err != nil {
			res.step(fmt.Sprintf("add product %d", productID), err)
			continue
		}
		err = g.Orders.AddLineItem(ctx, res.OrderID, productID, quantity)
		switch {
		case errors.Is(err, ErrUnknownProduct):
			// Stale id between catalog read and add; skip it.
		case err != nil:
			res.step(fmt.Sprintf("add product %d", productID), err)
		default:
			res.Items++
		}
	}
}

func (r *OrderResult) step(name string, err error) {
	r.Steps = append(r.Steps, OrderStep{Name: name, Err: err})
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
