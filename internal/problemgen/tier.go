package problemgen

// NumberRange is a closed integer interval [Min, Max].
type NumberRange struct {
	Min int
	Max int
}

// Contains reports whether n lies within the range.
func (r NumberRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Tier is a difficulty bracket defined by the ranges its operands are drawn from.
type Tier struct {
	ID          string
	Num1Range   NumberRange
	Num2Range   NumberRange
	Description string
}

// Tier IDs, easiest first.
const (
	TierSingleSingle = "single-single"
	TierSingleDouble = "single-double"
	TierDoubleSingle = "double-single"
	TierDoubleSmall  = "double-small"
	TierDoubleMedium = "double-medium"
	TierDoubleLarge  = "double-large"
)

var tiers = [...]Tier{
	{
		ID:          TierSingleSingle,
		Num1Range:   NumberRange{Min: 1, Max: 9},
		Num2Range:   NumberRange{Min: 1, Max: 9},
		Description: "Single digit + Single digit",
	},
	{
		ID:          TierSingleDouble,
		Num1Range:   NumberRange{Min: 1, Max: 9},
		Num2Range:   NumberRange{Min: 10, Max: 99},
		Description: "Single digit + Double digit",
	},
	{
		ID:          TierDoubleSingle,
		Num1Range:   NumberRange{Min: 10, Max: 99},
		Num2Range:   NumberRange{Min: 1, Max: 9},
		Description: "Double digit + Single digit",
	},
	{
		ID:          TierDoubleSmall,
		Num1Range:   NumberRange{Min: 10, Max: 39},
		Num2Range:   NumberRange{Min: 10, Max: 39},
		Description: "Double digit small + Double digit small",
	},
	{
		ID:          TierDoubleMedium,
		Num1Range:   NumberRange{Min: 40, Max: 69},
		Num2Range:   NumberRange{Min: 40, Max: 69},
		Description: "Double digit medium + Double digit medium",
	},
	{
		ID:          TierDoubleLarge,
		Num1Range:   NumberRange{Min: 70, Max: 99},
		Num2Range:   NumberRange{Min: 70, Max: 99},
		Description: "Double digit large + Double digit large",
	},
}

// AllTiers returns the tier catalog ordered from easiest to hardest.
// The returned slice is a copy.
func AllTiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers[:])
	return out
}

// TierByID returns the tier with the given ID.
func TierByID(id string) (Tier, bool) {
	for _, t := range tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}
