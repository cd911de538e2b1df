package jumper

import "math/rand"

// weighted is a candidate value with a relative selection weight.
type weighted[T any] struct {
	item   T
	weight int
}

// pickWeighted selects one entry by cumulative weighted roll.
// Entries with non-positive weight are never selected.
// Falls back to the first entry if all weights are zero.
func pickWeighted[T any](rng *rand.Rand, entries []weighted[T]) T {
	total := 0
	for _, e := range entries {
		if e.weight > 0 {
			total += e.weight
		}
	}
	if total <= 0 {
		return entries[0].item
	}

	roll := rng.Intn(total)
	for _, e := range entries {
		if e.weight <= 0 {
			continue
		}
		roll -= e.weight
		if roll < 0 {
			return e.item
		}
	}
	return entries[len(entries)-1].item
}

// randRange returns a uniform float64 in [min, max).
func randRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// rollPercent returns true with the given percent chance.
func rollPercent(rng *rand.Rand, chance int) bool {
	if chance <= 0 {
		return false
	}
	if chance >= 100 {
		return true
	}
	return rng.Intn(100) < chance
}
