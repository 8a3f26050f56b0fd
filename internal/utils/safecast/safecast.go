// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"

	"github.com/StreamDefi/precrime/types"
)

// Uint64ToUint32 safely converts an uint64 to uint32 using cast and checks for overflow
func Uint64ToUint32(value uint64) (uint32, error) {
	if value > math.MaxUint32 {
		return 0, fmt.Errorf("value %d exceeds uint32 range", value)
	}

	return cast.ToUint32E(value)
}

// Uint64ToInt64 safely converts a uint64 to int64 using cast and checks for overflow
func Uint64ToInt64(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("value %d exceeds int64 range", value)
	}

	return cast.ToInt64E(value)
}

// ToEID converts a flag or environment value to an endpoint id. Zero is rejected, no
// chain uses it.
func ToEID(value any) (types.EID, error) {
	n, err := cast.ToUint64E(value)
	if err != nil {
		return 0, fmt.Errorf("invalid eid %v: %w", value, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("invalid eid %v: must be positive", value)
	}

	eid, err := Uint64ToUint32(n)
	if err != nil {
		return 0, fmt.Errorf("invalid eid %v: %w", value, err)
	}

	return types.EID(eid), nil
}
