package gen

// Customer resolution outcomes for one order/review.
const (
	ChanceExisting = "existing"
	ChanceNew      = "new"
	ChanceGuest    = "guest"
)

// Weights bundles every weighted decision the generators make. The defaults
// match the distributions observed in live stores; a profile file may
// override any table.
type Weights struct {
	Statuses        Weighted[string]
	Gateways        Weighted[string]
	Quantities      Weighted[int]
	PaidOdds        Weighted[bool]
	CustomerChances Weighted[string]
}

// DefaultWeights returns the stock distributions.
func DefaultWeights() Weights {
	return Weights{
		Statuses: Weighted[string]{
			{Value: "completed", Weight: 80},
			{Value: "processing", Weight: 5},
			{Value: "on-hold", Weight: 5},
			{Value: "failed", Weight: 10},
		},
		Gateways: Weighted[string]{
			{Value: "bacs", Weight: 20},
			{Value: "stripe", Weight: 40},
			{Value: "paypal", Weight: 30},
			{Value: "cod", Weight: 10},
		},
		Quantities: Weighted[int]{
			{Value: 1, Weight: 50},
			{Value: 2, Weight: 25},
			{Value: 3, Weight: 15},
			{Value: 4, Weight: 8},
			{Value: 5, Weight: 2},
		},
		PaidOdds: Weighted[bool]{
			{Value: true, Weight: 90},
			{Value: false, Weight: 10},
		},
		CustomerChances: Weighted[string]{
			{Value: ChanceExisting, Weight: 25},
			{Value: ChanceNew, Weight: 60},
			{Value: ChanceGuest, Weight: 15},
		},
	}
}
