package level

import "fmt"

// SpawnSelection decides which start object becomes the spawn point when a
// map has more than one.
type SpawnSelection int

const (
	// SpawnFirst picks the first start object in layer order.
	SpawnFirst SpawnSelection = iota
	// SpawnNearestOrigin picks the start object closest to the map origin.
	SpawnNearestOrigin
	// SpawnErrorOnMultiple rejects maps with more than one start object.
	SpawnErrorOnMultiple
)

func (s SpawnSelection) String() string {
	switch s {
	case SpawnFirst:
		return "first"
	case SpawnNearestOrigin:
		return "nearest-origin"
	case SpawnErrorOnMultiple:
		return "error-on-multiple"
	}
	return "unknown"
}

// ParseSpawnSelection maps a config name back to a policy.
func ParseSpawnSelection(name string) (SpawnSelection, error) {
	for _, s := range []SpawnSelection{SpawnFirst, SpawnNearestOrigin, SpawnErrorOnMultiple} {
		if s.String() == name {
			return s, nil
		}
	}
	return SpawnFirst, fmt.Errorf("unknown spawn selection %q", name)
}

// Select applies the policy to the candidate start objects.
func (s SpawnSelection) Select(candidates []Object) (Object, error) {
	if len(candidates) == 0 {
		return Object{}, ErrNoSpawnPoint
	}
	switch s {
	case SpawnNearestOrigin:
		best := candidates[0]
		bestDist := best.X*best.X + best.Y*best.Y
		for _, c := range candidates[1:] {
			if d := c.X*c.X + c.Y*c.Y; d < bestDist {
				best, bestDist = c, d
			}
		}
		return best, nil
	case SpawnErrorOnMultiple:
		if len(candidates) > 1 {
			return Object{}, fmt.Errorf("%w: found %d", ErrMultipleSpawnPoints, len(candidates))
		}
	}
	return candidates[0], nil
}
