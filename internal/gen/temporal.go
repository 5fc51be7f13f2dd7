package gen

import (
	"math/rand"
	"time"
)

// Placement is a synthesized timestamp for one entity. Local is the store's
// wall-clock time, GMT the offset-adjusted variant, and Backdated sits one
// to five minutes before Local so a customer created alongside an order
// registers strictly before it.
type Placement struct {
	Local     time.Time
	GMT       time.Time
	Backdated time.Time
}

// Placer computes timestamps spread over a trailing window of days.
type Placer struct {
	// GMTOffset is the store-wide offset in hours applied to the GMT variant.
	GMTOffset int

	rnd *rand.Rand
	now func() time.Time
}

// NewPlacer returns a Placer using the given rand source. now may be nil,
// in which case time.Now is used.
func NewPlacer(gmtOffset int, rnd *rand.Rand, now func() time.Time) *Placer {
	if now == nil {
		now = time.Now
	}
	return &Placer{GMTOffset: gmtOffset, rnd: rnd, now: now}
}

// Place returns a timestamp at now - rand(0,fromDays) days - rand(0,23)
// hours, together with its offset-adjusted and backdated variants.
func (p *Placer) Place(fromDays int) Placement {
	if fromDays < 0 {
		fromDays = 0
	}
	day := p.rnd.Intn(fromDays + 1)
	hour := p.rnd.Intn(24)
	minute := p.rnd.Intn(5) + 1

	local := p.now().
		Add(-time.Duration(day) * 24 * time.Hour).
		Add(-time.Duration(hour) * time.Hour)

	return Placement{
		Local:     local,
		GMT:       local.Add(-time.Duration(p.GMTOffset) * time.Hour),
		Backdated: local.Add(-time.Duration(minute) * time.Minute),
	}
}

// ClampDays narrows fromDays so a placement tied to an account registered at
// registeredAt cannot reach further back than the account itself. The
// registration age is counted in whole days, floored.
func (p *Placer) ClampDays(fromDays int, registeredAt time.Time) int {
	age := int(p.now().Sub(registeredAt).Hours() / 24)
	if age < 0 {
		age = 0
	}
	if fromDays > age {
		return age
	}
	return fromDays
}

// PlaceAfter places a timestamp in the clamped window and floors it to
// notBefore. Clamping by whole days still leaves the hour draw free to
// overshoot within the registration day; the floor closes that gap.
func (p *Placer) PlaceAfter(fromDays int, notBefore time.Time) Placement {
	pl := p.Place(p.ClampDays(fromDays, notBefore))
	if pl.Local.Before(notBefore) {
		pl.Local = notBefore
		pl.GMT = notBefore.Add(-time.Duration(p.GMTOffset) * time.Hour)
		pl.Backdated = notBefore
	}
	return pl
}
