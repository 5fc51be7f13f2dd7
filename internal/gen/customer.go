package gen

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// accountCredential is the fixed placeholder credential every generated
// account gets; generated stores are for testing and demos only.
const accountCredential = "shopseed"

// From bounds a registration date: either a day count back from now, or an
// already-resolved absolute timestamp passed through untouched.
type From struct {
	Days int
	At   time.Time
}

// FromDays places the registration at a random point within the last days.
func FromDays(days int) From { return From{Days: days} }

// FromTime pins the registration to an exact, caller-computed timestamp.
func FromTime(t time.Time) From { return From{At: t} }

// CustomerGenerator builds persisted customer accounts from synthesized
// identities.
type CustomerGenerator struct {
	Accounts Accounts
	Identity *IdentitySynthesizer
	Placer   *Placer
}

// Generate creates one customer account and returns its id. The billing and
// shipping address meta mirror the synthesized identity, with the
// registration timestamp recorded as the last-updated marker.
func (g *CustomerGenerator) Generate(ctx context.Context, from From) (uint, error) {
	registered := from.At
	if registered.IsZero() {
		registered = g.Placer.Place(from.Days).Local
	}

	id := g.Identity.Identity()
	cid, err := g.Accounts.CreateCustomer(ctx, CustomerDraft{
		Email:        strings.ToLower(id.Email),
		Username:     id.Username,
		Credential:   accountCredential,
		FirstName:    id.FirstName,
		LastName:     id.LastName,
		RegisteredAt: registered,
	})
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}

	addr := id.PostalAddress()
	if err := g.Accounts.SetAddressMeta(ctx, cid, addr, addr, registered); err != nil {
		return 0, fmt.Errorf("write customer %d address meta: %w", cid, err)
	}
	return cid, nil
}
