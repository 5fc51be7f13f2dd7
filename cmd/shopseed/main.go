package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/olekukonko/tablewriter"

	"shop-seeder/internal/assets"
	"shop-seeder/internal/dataset"
	"shop-seeder/internal/db"
	"shop-seeder/internal/gen"
	"shop-seeder/internal/profile"
	"shop-seeder/internal/run"
	"shop-seeder/internal/store"
)

func main() {
	var (
		productCount  = flag.Int("products", 0, "number of products to generate")
		customerCount = flag.Int("customers", 0, "number of customers to generate")
		orderCount    = flag.Int("orders", 0, "number of orders to generate")
		reviewCount   = flag.Int("reviews", 0, "number of reviews to generate")
		fromDays      = flag.Int("from", 90, "days in the past to spread generated dates over")
		productType   = flag.String("type", "books", "product type to seed (books, food)")
		imageRoot     = flag.String("images", "./data/images", "root directory of seeded product images")
		profilePath   = flag.String("profile", "", "optional YAML weights profile")
		gmtOffset     = flag.Int("gmt-offset", 0, "store GMT offset in hours")
		seed          = flag.Int64("seed", 0, "deterministic seed (defaults to current time)")
	)
	flag.Parse()

	if *productCount+*customerCount+*orderCount+*reviewCount == 0 {
		log.Fatal("nothing to generate; pass -products, -customers, -orders and/or -reviews")
	}

	weights := gen.DefaultWeights()
	if *profilePath != "" {
		prof, err := profile.LoadFile(*profilePath)
		if err != nil {
			log.Fatalf("failed to load weights profile: %v", err)
		}
		weights = prof.Apply(weights)
		if prof.Name != "" {
			log.Printf("weights profile %q applied", prof.Name)
		}
	}

	seeds, err := dataset.Load()
	if err != nil {
		log.Fatalf("failed to load product seed catalogs: %v", err)
	}
	cities, err := dataset.Cities()
	if err != nil {
		log.Fatalf("failed to load city reference list: %v", err)
	}

	gdb, err := db.Open(db.FromEnv())
	if err != nil {
		log.Fatalf("failed to connect to MySQL: %v", err)
	}
	if err := store.EnsureSchema(gdb); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	st := store.New(gdb)

	src := *seed
	if src == 0 {
		src = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(src))
	faker := gofakeit.New(uint64(src))

	placer := gen.NewPlacer(*gmtOffset, rnd, nil)
	identity := gen.NewIdentitySynthesizer(faker, cities, rnd)
	customers := &gen.CustomerGenerator{Accounts: st, Identity: identity, Placer: placer}
	resolver := &gen.CustomerResolver{Accounts: st, Customers: customers, Identity: identity, Placer: placer}
	pool := assets.Dir{Root: *imageRoot}

	runner := &run.Runner{
		Products: &gen.ProductGenerator{
			Catalog: st,
			Assets:  pool,
			Seeds:   seeds,
			Faker:   faker,
			Rnd:     rnd,
		},
		Customers: customers,
		Orders: &gen.OrderGenerator{
			Catalog:  st,
			Orders:   st,
			Resolver: resolver,
			Faker:    faker,
			Rnd:      rnd,
			Weights:  weights,
		},
		Reviews: &gen.ReviewGenerator{
			Catalog:  st,
			Reviews:  st,
			Resolver: resolver,
			Faker:    faker,
			Rnd:      rnd,
		},
		Accounts: st,
		Assets:   pool,
		Weights:  weights,
		Rnd:      rnd,
	}

	ctx := context.Background()
	var results []run.Result

	if *productCount > 0 {
		res, err := runner.RunProducts(ctx, *productCount, *productType)
		collect(&results, res, err)
	}
	if *customerCount > 0 {
		res, err := runner.RunCustomers(ctx, *customerCount, *fromDays)
		collect(&results, res, err)
	}
	if *orderCount > 0 {
		res, err := runner.RunOrders(ctx, *orderCount, *fromDays)
		collect(&results, res, err)
	}
	if *reviewCount > 0 {
		res, err := runner.RunReviews(ctx, *reviewCount, *fromDays)
		collect(&results, res, err)
	}

	printSummary(results)
}

func collect(results *[]run.Result, res run.Result, err error) {
	if err != nil {
		log.Printf("%s run stopped early: %v", res.Entity, err)
	} else {
		log.Printf("%d/%d %s generated in %s", res.Created, res.Requested, res.Entity, res.Duration)
	}
	*results = append(*results, res)
}

func printSummary(results []run.Result) {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("Entity", "Requested", "Created", "Failed", "Duration")
	for _, res := range results {
		table.Append([]string{
			res.Entity,
			fmt.Sprintf("%d", res.Requested),
			fmt.Sprintf("%d", res.Created),
			fmt.Sprintf("%d", res.Failed()),
			res.Duration.Round(time.Millisecond).String(),
		})
	}
	if err := table.Render(); err != nil {
		log.Printf("failed to render summary: %v", err)
	}
}
