package types //nolint:revive,nolintlint // allow pkg name 'types'

import "strconv"

// EID is an endpoint id. Every chain connected to the messaging layer is addressed by
// exactly one EID.
type EID uint32

// String implements fmt.Stringer.
func (e EID) String() string {
	return strconv.FormatUint(uint64(e), 10)
}
