package gen

import (
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"
)

// CityRef is one real city/country pair from the reference dataset, used so
// synthesized identities carry geographically plausible locations instead of
// purely invented ones.
type CityRef struct {
	City    string
	Country string
}

// Identity is an ephemeral synthesized person. It is not persisted unless a
// customer generator promotes it to an account.
type Identity struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Street    string
	City      string
	State     string
	Postcode  string
	Country   string
	Phone     string
}

// PostalAddress expands the identity into a full billing/shipping block.
func (i Identity) PostalAddress() Address {
	return Address{
		FirstName: i.FirstName,
		LastName:  i.LastName,
		Street:    i.Street,
		City:      i.City,
		State:     i.State,
		Postcode:  i.Postcode,
		Country:   i.Country,
		Email:     i.Email,
		Phone:     i.Phone,
	}
}

// FullName joins first and last name.
func (i Identity) FullName() string {
	return i.FirstName + " " + i.LastName
}

// IdentitySynthesizer produces synthetic people. No uniqueness is enforced
// here; callers needing unique emails or usernames must check persisted
// state themselves.
type IdentitySynthesizer struct {
	faker  *gofakeit.Faker
	cities []CityRef
	rnd    *rand.Rand
}

// NewIdentitySynthesizer wires a faker and the city/country reference list.
func NewIdentitySynthesizer(faker *gofakeit.Faker, cities []CityRef, rnd *rand.Rand) *IdentitySynthesizer {
	return &IdentitySynthesizer{faker: faker, cities: cities, rnd: rnd}
}

// Identity synthesizes a fresh person. City and country come from the
// reference dataset when one is loaded; everything else is faked.
func (s *IdentitySynthesizer) Identity() Identity {
	id := Identity{
		FirstName: s.faker.FirstName(),
		LastName:  s.faker.LastName(),
		Email:     s.faker.Email(),
		Username:  s.faker.Username(),
		Street:    s.faker.Street(),
		State:     s.faker.State(),
		Postcode:  s.faker.Zip(),
		Phone:     s.faker.Phone(),
		City:      s.faker.City(),
		Country:   s.faker.CountryAbr(),
	}
	if len(s.cities) > 0 {
		ref := s.cities[s.rnd.Intn(len(s.cities))]
		id.City = ref.City
		id.Country = ref.Country
	}
	return id
}
