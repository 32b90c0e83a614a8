package cart

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/HarshaSuranjith/react-hooks-demo/reducer"
)

const centsPerUnit = 100

// Default price bounds for generated items, in cents.
const (
	DefaultMinPriceCents int64 = 10 * centsPerUnit
	DefaultMaxPriceCents int64 = 59 * centsPerUnit
)

// Factory builds AddItem payloads: a time-based id, a sequential name,
// quantity one and a random whole-unit price. It is the impure half of
// adding an item and is kept out of Reduce.
type Factory struct {
	minUnits int64
	maxUnits int64
	now      func() time.Time
	rng      *rand.Rand
	lastID   int64
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithClock sets the id clock.
func WithClock(now func() time.Time) FactoryOption {
	return func(f *Factory) { f.now = now }
}

// WithRand sets the price source.
func WithRand(rng *rand.Rand) FactoryOption {
	return func(f *Factory) { f.rng = rng }
}

// NewFactory creates a Factory drawing prices from [minCents, maxCents],
// rounded inward to whole currency units.
func NewFactory(minCents, maxCents int64, opts ...FactoryOption) (*Factory, error) {
	if err := reducer.FirstError(
		reducer.RequireNonNegative(minCents, ErrMsgPriceNonNegative),
		reducer.RequireRange(minCents, maxCents, ErrMsgPriceRangeInverted),
	); err != nil {
		return nil, err
	}

	minUnits := (minCents + centsPerUnit - 1) / centsPerUnit
	maxUnits := maxCents / centsPerUnit
	if minUnits > maxUnits {
		return nil, reducer.NewFailedPreconditionf("%s: [%d, %d]", ErrMsgPriceRangeEmpty, minCents, maxCents)
	}

	f := &Factory{
		minUnits: minUnits,
		maxUnits: maxUnits,
		now:      time.Now,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Next builds the item a user would add to state. Ids are unix
// milliseconds, bumped when two items are made within the same
// millisecond so each new item gets its own id.
func (f *Factory) Next(state State) Item {
	id := f.now().UnixMilli()
	if id <= f.lastID {
		id = f.lastID + 1
	}
	f.lastID = id

	units := f.minUnits + f.rng.Int64N(f.maxUnits-f.minUnits+1)
	return Item{
		ID:             id,
		Name:           fmt.Sprintf("Product %d", state.Len()+1),
		Quantity:       1,
		UnitPriceCents: units * centsPerUnit,
	}
}

// AddItem wraps Next in an AddItem action.
func (f *Factory) AddItem(state State) AddItem {
	return AddItem{Item: f.Next(state)}
}
