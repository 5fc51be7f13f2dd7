package gen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"
)

// ReviewGenerator attaches rated comments to randomly chosen products. The
// same author reviewing the same product twice is permitted, matching the
// store's observed behavior.
type ReviewGenerator struct {
	Catalog  Catalog
	Reviews  Reviews
	Resolver *CustomerResolver
	Faker    *gofakeit.Faker
	Rnd      *rand.Rand
}

// Generate creates one review dated within the last fromDays days. It fails
// with ErrNoProducts when the catalog is empty, since a review must
// reference an existing product.
func (g *ReviewGenerator) Generate(ctx context.Context, fromDays int, spec CustomerSpec) (uint, error) {
	productIDs, err := g.Catalog.ProductIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("load product catalog: %w", err)
	}
	if len(productIDs) == 0 {
		return 0, ErrNoProducts
	}

	who, err := g.Resolver.resolve(ctx, fromDays, spec)
	if err != nil {
		return 0, err
	}

	productID := productIDs[g.Rnd.Intn(len(productIDs))]
	reviewID, err := g.Reviews.CreateReview(ctx, ReviewDraft{
		ProductID:   productID,
		AuthorID:    who.customerID,
		AuthorName:  who.name,
		AuthorEmail: who.email,
		Content:     g.Faker.Paragraph(1, g.Rnd.Intn(4)+2, 10, " "),
		AuthorIP:    g.Faker.IPv4Address(),
		UserAgent:   g.Faker.UserAgent(),
		CreatedAt:   who.placement.GMT,
		Approved:    true,
	})
	if err != nil {
		return 0, fmt.Errorf("create review for product %d: %w", productID, err)
	}

	if err := g.Reviews.AttachRating(ctx, reviewID, g.Rnd.Intn(5)+1); err != nil {
		return 0, fmt.Errorf("attach rating to review %d: %w", reviewID, err)
	}
	return reviewID, nil
}
