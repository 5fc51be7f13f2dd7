package gen

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// ProductGenerator builds one catalog entry at a time: a unique themed
// title, SKU, descriptive copy, bounded price, and a best-effort unique
// image from the type's asset pool.
type ProductGenerator struct {
	Catalog Catalog
	Assets  AssetPool
	Seeds   SeedSource
	Faker   *gofakeit.Faker
	Rnd     *rand.Rand

	// MaxUniqueAttempts caps title/image retry loops; 0 uses
	// DefaultUniqueAttempts, negative retries forever.
	MaxUniqueAttempts int
}

// Generate creates one product of the given type and returns its id. Image
// attachment is best effort: a failure there is logged and the product
// still counts as created.
func (g *ProductGenerator) Generate(ctx context.Context, productType string) (uint, error) {
	attempts := g.MaxUniqueAttempts
	if attempts == 0 {
		attempts = DefaultUniqueAttempts
	}

	seed, err := Unique(
		func() (ProductSeed, error) { return g.candidate(productType), nil },
		func(s ProductSeed) (bool, error) { return g.Catalog.TitleExists(ctx, s.Title) },
		attempts,
	)
	if err != nil {
		return 0, fmt.Errorf("pick unique title: %w", err)
	}

	id, err := g.Catalog.CreateProduct(ctx, ProductDraft{
		Title:    seed.Title,
		Category: seed.Category,
		SKU:      MakeSKU(seed.Title, g.Faker),
		Content:  g.Faker.Paragraph(g.Rnd.Intn(4)+3, 5, 12, "\n\n"),
		Excerpt:  g.Faker.Paragraph(1, 3, 12, " "),
		Price:    randomPrice(g.Rnd),
	})
	if err != nil {
		return 0, fmt.Errorf("create product %q: %w", seed.Title, err)
	}

	if err := g.attachImage(ctx, id, productType); err != nil {
		log.Printf("product %d: image attachment skipped: %v", id, err)
	}
	return id, nil
}

// candidate draws a themed title/category pair, falling back to generic
// synthesized names when no seed catalog covers the type.
func (g *ProductGenerator) candidate(productType string) ProductSeed {
	if seed, ok := g.Seeds.RandomSeed(productType, g.Rnd); ok {
		return seed
	}
	return ProductSeed{
		Title:    g.Faker.ProductName(),
		Category: g.Faker.ProductCategory(),
	}
}

func (g *ProductGenerator) attachImage(ctx context.Context, productID uint, productType string) error {
	files, err := g.Assets.List(productType)
	if err != nil {
		return fmt.Errorf("list image pool: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no images available for type %q", productType)
	}

	attempts := g.MaxUniqueAttempts
	if attempts == 0 {
		attempts = DefaultUniqueAttempts
	}
	filename, err := Unique(
		func() (string, error) { return files[g.Rnd.Intn(len(files))], nil },
		func(name string) (bool, error) { return g.Catalog.ImageAttached(ctx, name) },
		attempts,
	)
	if err != nil {
		return fmt.Errorf("pick unique image: %w", err)
	}

	data, err := g.Assets.Read(productType, filename)
	if err != nil {
		return fmt.Errorf("read image %s: %w", filename, err)
	}
	if err := g.Catalog.AttachImage(ctx, productID, filename, data); err != nil {
		return fmt.Errorf("attach image %s: %w", filename, err)
	}
	return nil
}

// MakeSKU derives a SKU from a title: the first five non-space characters
// uppercased, followed by five random digits.
func MakeSKU(title string, faker *gofakeit.Faker) string {
	stripped := strings.ReplaceAll(title, " ", "")
	runes := []rune(stripped)
	if len(runes) > 5 {
		runes = runes[:5]
	}
	return strings.ToUpper(string(runes)) + faker.DigitN(5)
}

// randomPrice returns a value in [5, 125] rounded to 0, 1, or 2 decimal
// places at random.
func randomPrice(rnd *rand.Rand) float64 {
	decimals := rnd.Intn(3)
	scale := math.Pow10(decimals)
	value := 5 + rnd.Float64()*120
	return math.Round(value*scale) / scale
}
