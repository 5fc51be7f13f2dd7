// Package run drives bulk generation: it loops a requested count, tallies
// successes against attempts, and keeps going past per-entity failures.
package run

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"shop-seeder/internal/gen"
)

// Result is the outcome of one batch.
type Result struct {
	Entity    string
	Requested int
	Created   int
	Duration  time.Duration
}

// Failed counts the attempts that produced nothing.
func (r Result) Failed() int { return r.Requested - r.Created }

// SeedChecker gates product generation on a populated image pool.
type SeedChecker interface {
	Seeded(productType string) bool
}

// Runner owns the generator set for one seeding session.
type Runner struct {
	Products  *gen.ProductGenerator
	Customers *gen.CustomerGenerator
	Orders    *gen.OrderGenerator
	Reviews   *gen.ReviewGenerator
	Accounts  gen.Accounts
	Assets    SeedChecker
	Weights   gen.Weights
	Rnd       *rand.Rand
}

// RunProducts generates count products of the given type. It refuses to
// start when the type's image pool has not been seeded.
func (r *Runner) RunProducts(ctx context.Context, count int, productType string) (Result, error) {
	res := Result{Entity: "products", Requested: count}
	if !r.Assets.Seeded(productType) {
		return res, fmt.Errorf("no images seeded for type %q; populate the image pool first", productType)
	}

	start := time.Now()
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			res.Duration = time.Since(start)
			return res, err
		}
		if _, err := r.Products.Generate(ctx, productType); err != nil {
			log.Printf("product %d/%d failed: %v", i+1, count, err)
			continue
		}
		res.Created++
	}
	res.Duration = time.Since(start)
	return res, nil
}

// RunCustomers generates count customers registered within the last
// fromDays days.
func (r *Runner) RunCustomers(ctx context.Context, count, fromDays int) (Result, error) {
	res := Result{Entity: "customers", Requested: count}
	start := time.Now()
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			res.Duration = time.Since(start)
			return res, err
		}
		if _, err := r.Customers.Generate(ctx, gen.FromDays(fromDays)); err != nil {
			log.Printf("customer %d/%d failed: %v", i+1, count, err)
			continue
		}
		res.Created++
	}
	res.Duration = time.Since(start)
	return res, nil
}

// RunOrders generates count orders dated within the last fromDays days,
// choosing existing/new/guest attribution per order from the weighted
// customer chances.
func (r *Runner) RunOrders(ctx context.Context, count, fromDays int) (Result, error) {
	res := Result{Entity: "orders", Requested: count}
	start := time.Now()
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			res.Duration = time.Since(start)
			return res, err
		}

		spec, err := r.customerSpec(ctx)
		if err != nil {
			log.Printf("order %d/%d failed: %v", i+1, count, err)
			continue
		}

		order, err := r.Orders.Generate(ctx, fromDays, spec)
		if errors.Is(err, gen.ErrNoProducts) {
			res.Duration = time.Since(start)
			return res, err
		}
		if err != nil {
			log.Printf("order %d/%d failed: %v", i+1, count, err)
			continue
		}
		for _, step := range order.Failed() {
			log.Printf("order %d: step %q failed: %v", order.OrderID, step.Name, step.Err)
		}
		res.Created++
	}
	res.Duration = time.Since(start)
	return res, nil
}

// RunReviews generates count reviews dated within the last fromDays days.
func (r *Runner) RunReviews(ctx context.Context, count, fromDays int) (Result, error) {
	res := Result{Entity: "reviews", Requested: count}
	start := time.Now()
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			res.Duration = time.Since(start)
			return res, err
		}

		spec, err := r.customerSpec(ctx)
		if err != nil {
			log.Printf("review %d/%d failed: %v", i+1, count, err)
			continue
		}

		_, err = r.Reviews.Generate(ctx, fromDays, spec)
		if errors.Is(err, gen.ErrNoProducts) {
			res.Duration = time.Since(start)
			return res, err
		}
		if err != nil {
			log.Printf("review %d/%d failed: %v", i+1, count, err)
			continue
		}
		res.Created++
	}
	res.Duration = time.Since(start)
	return res, nil
}

// customerSpec rolls the existing/new/guest dice for one order or review.
// "existing" with an empty customer table falls through to guest.
func (r *Runner) customerSpec(ctx context.Context) (gen.CustomerSpec, error) {
	kind, err := r.Weights.CustomerChances.Pick(r.Rnd)
	if err != nil {
		return gen.CustomerSpec{}, err
	}
	switch kind {
	case gen.ChanceExisting:
		id, err := r.Accounts.RandomCustomerID(ctx)
		if err != nil {
			return gen.CustomerSpec{}, fmt.Errorf("pick existing customer: %w", err)
		}
		if id == 0 {
			return gen.GuestSpec(), nil
		}
		return gen.ExistingSpec(id), nil
	case gen.ChanceNew:
		return gen.NewCustomerSpec(), nil
	default:
		return gen.GuestSpec(), nil
	}
}
