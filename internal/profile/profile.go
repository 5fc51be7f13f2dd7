// Package profile loads an optional YAML file that overrides the engine's
// default weight tables, so a run can skew statuses, gateways, quantities,
// paid odds, or the customer-type mix without rebuilding.
package profile

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"shop-seeder/internal/gen"
)

// Profile is the YAML shape. Every section is optional; omitted sections
// keep the engine defaults.
type Profile struct {
	Name            string         `yaml:"name"`
	Statuses        map[string]int `yaml:"statuses"`
	Gateways        map[string]int `yaml:"gateways"`
	Quantities      map[int]int    `yaml:"quantities"`
	PaidOdds        map[string]int `yaml:"paid_odds"`
	CustomerChances map[string]int `yaml:"customer_chances"`
}

// LoadFile reads and validates a profile.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &p, nil
}

func (p *Profile) validate() error {
	for section, m := range map[string]map[string]int{
		"statuses":         p.Statuses,
		"gateways":         p.Gateways,
		"paid_odds":        p.PaidOdds,
		"customer_chances": p.CustomerChances,
	} {
		if err := checkWeights(section, m); err != nil {
			return err
		}
	}
	sum := 0
	for qty, w := range p.Quantities {
		if w < 0 {
			return fmt.Errorf("quantities: negative weight for %d", qty)
		}
		sum += w
	}
	if len(p.Quantities) > 0 && sum == 0 {
		return fmt.Errorf("quantities: weights sum to zero")
	}
	if _, ok := p.PaidOdds["paid"]; len(p.PaidOdds) > 0 && !ok {
		return fmt.Errorf("paid_odds: missing %q key", "paid")
	}
	return nil
}

func checkWeights(section string, m map[string]int) error {
	if len(m) == 0 {
		return nil
	}
	sum := 0
	for label, w := range m {
		if w < 0 {
			return fmt.Errorf("%s: negative weight for %q", section, label)
		}
		sum += w
	}
	if sum == 0 {
		return fmt.Errorf("%s: weights sum to zero", section)
	}
	return nil
}

// Apply overlays the profile onto a weight set and returns the result.
func (p *Profile) Apply(w gen.Weights) gen.Weights {
	if len(p.Statuses) > 0 {
		w.Statuses = overlay(w.Statuses, p.Statuses)
	}
	if len(p.Gateways) > 0 {
		w.Gateways = overlay(w.Gateways, p.Gateways)
	}
	if len(p.CustomerChances) > 0 {
		w.CustomerChances = overlay(w.CustomerChances, p.CustomerChances)
	}
	if len(p.Quantities) > 0 {
		w.Quantities = overlayInts(w.Quantities, p.Quantities)
	}
	if len(p.PaidOdds) > 0 {
		w.PaidOdds = gen.Weighted[bool]{
			{Value: true, Weight: p.PaidOdds["paid"]},
			{Value: false, Weight: p.PaidOdds["not_paid"]},
		}
	}
	return w
}

// overlay replaces weights of known labels in place and appends new labels
// in sorted order, keeping iteration deterministic.
func overlay(defaults gen.Weighted[string], m map[string]int) gen.Weighted[string] {
	rest := make(map[string]int, len(m))
	for k, v := range m {
		rest[k] = v
	}

	out := make(gen.Weighted[string], 0, len(defaults)+len(m))
	for _, c := range defaults {
		if weight, ok := rest[c.Value]; ok {
			c.Weight = weight
			delete(rest, c.Value)
		} else {
			c.Weight = 0
		}
		out = append(out, c)
	}

	extra := make([]string, 0, len(rest))
	for k := range rest {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	for _, k := range extra {
		out = append(out, gen.Choice[string]{Value: k, Weight: rest[k]})
	}
	return out
}

func overlayInts(defaults gen.Weighted[int], m map[int]int) gen.Weighted[int] {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make(gen.Weighted[int], 0, len(keys))
	for _, k := range keys {
		out = append(out, gen.Choice[int]{Value: k, Weight: m[k]})
	}
	return out
}
