package gen

import (
	"context"
	"fmt"
)

// CustomerKind selects how an order or review is attributed.
type CustomerKind int

const (
	// CustomerGuest attributes the entity to a synthesized guest identity.
	CustomerGuest CustomerKind = iota
	// CustomerExisting references a persisted customer id; unknown ids
	// degrade silently to guest.
	CustomerExisting
	// CustomerNew creates a fresh customer account first.
	CustomerNew
)

// CustomerSpec is the resolved-customer request for one entity.
type CustomerSpec struct {
	Kind CustomerKind
	ID   uint
}

// GuestSpec requests guest attribution.
func GuestSpec() CustomerSpec { return CustomerSpec{Kind: CustomerGuest} }

// ExistingSpec requests attribution to a persisted customer id.
func ExistingSpec(id uint) CustomerSpec {
	return CustomerSpec{Kind: CustomerExisting, ID: id}
}

// NewCustomerSpec requests a freshly created customer.
func NewCustomerSpec() CustomerSpec { return CustomerSpec{Kind: CustomerNew} }

// party is a resolved attribution: a customer id (0 for guests), the
// addresses to stamp on the entity, and a timestamp placement that cannot
// precede the customer's registration.
type party struct {
	customerID uint
	name       string
	email      string
	billing    Address
	shipping   Address
	placement  Placement
}

// CustomerResolver carries the resolve-customer/clamp-window/compute-date
// sequence shared by order and review generation.
type CustomerResolver struct {
	Accounts  Accounts
	Customers *CustomerGenerator
	Identity  *IdentitySynthesizer
	Placer    *Placer
}

func (r *CustomerResolver) resolve(ctx context.Context, fromDays int, spec CustomerSpec) (party, error) {
	switch spec.Kind {
	case CustomerExisting:
		info, err := r.Accounts.Customer(ctx, spec.ID)
		if err != nil {
			return party{}, fmt.Errorf("look up customer %d: %w", spec.ID, err)
		}
		if info == nil {
			// Unknown id degrades to guest rather than failing the entity.
			return r.guest(fromDays), nil
		}
		return party{
			customerID: info.ID,
			name:       info.FirstName + " " + info.LastName,
			email:      info.Billing.Email,
			billing:    info.Billing,
			shipping:   info.Shipping,
			placement:  r.Placer.PlaceAfter(fromDays, info.RegisteredAt),
		}, nil

	case CustomerNew:
		placement := r.Placer.Place(fromDays)
		id, err := r.Customers.Generate(ctx, FromTime(placement.Backdated))
		if err != nil {
			return party{}, fmt.Errorf("create customer: %w", err)
		}
		info, err := r.Accounts.Customer(ctx, id)
		if err != nil {
			return party{}, fmt.Errorf("read back customer %d: %w", id, err)
		}
		if info == nil {
			return r.guest(fromDays), nil
		}
		return party{
			customerID: info.ID,
			name:       info.FirstName + " " + info.LastName,
			email:      info.Billing.Email,
			billing:    info.Billing,
			shipping:   info.Shipping,
			placement:  placement,
		}, nil

	default:
		return r.guest(fromDays), nil
	}
}

func (r *CustomerResolver) guest(fromDays int) party {
	id := r.Identity.Identity()
	addr := id.PostalAddress()
	return party{
		name:      id.FullName(),
		email:     id.Email,
		billing:   addr,
		shipping:  addr,
		placement: r.Placer.Place(fromDays),
	}
}
