// Package dataset serves the embedded reference data: themed product seed
// catalogs per type and a list of real city/country pairs.
package dataset

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io/fs"
	"math/rand"
	"path"
	"sort"
	"strings"

	"shop-seeder/internal/gen"
)

//go:embed products/*.csv cities.csv
var files embed.FS

// Catalog holds the parsed product seed lists, keyed by type.
type Catalog struct {
	seeds map[string][]gen.ProductSeed
}

// Load parses every embedded product catalog.
func Load() (*Catalog, error) {
	entries, err := fs.Glob(files, "products/*.csv")
	if err != nil {
		return nil, err
	}

	c := &Catalog{seeds: make(map[string][]gen.ProductSeed)}
	for _, name := range entries {
		productType := strings.TrimSuffix(path.Base(name), ".csv")
		seeds, err := parseSeeds(name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		c.seeds[productType] = seeds
	}
	return c, nil
}

// RandomSeed implements gen.SeedSource.
func (c *Catalog) RandomSeed(productType string, rnd *rand.Rand) (gen.ProductSeed, bool) {
	seeds := c.seeds[productType]
	if len(seeds) == 0 {
		return gen.ProductSeed{}, false
	}
	return seeds[rnd.Intn(len(seeds))], true
}

// Has reports whether a seed catalog exists for the type.
func (c *Catalog) Has(productType string) bool {
	return len(c.seeds[productType]) > 0
}

// Types lists the available catalog types, sorted.
func (c *Catalog) Types() []string {
	types := make([]string, 0, len(c.seeds))
	for t := range c.seeds {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func parseSeeds(name string) ([]gen.ProductSeed, error) {
	f, err := files.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	seeds := make([]gen.ProductSeed, 0, len(records))
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		seeds = append(seeds, gen.ProductSeed{
			Category: ucfirst(strings.ToLower(strings.TrimSpace(rec[0]))),
			Title:    titleCase(strings.TrimSpace(rec[1])),
		})
	}
	return seeds, nil
}

// Cities returns the city/country reference list.
func Cities() ([]gen.CityRef, error) {
	f, err := files.Open("cities.csv")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	cities := make([]gen.CityRef, 0, len(records))
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		country := strings.TrimSpace(rec[1])
		if len(country) > 2 {
			country = country[:2]
		}
		cities = append(cities, gen.CityRef{
			City:    strings.TrimSpace(rec[0]),
			Country: country,
		})
	}
	return cities, nil
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = ucfirst(w)
	}
	return strings.Join(words, " ")
}
