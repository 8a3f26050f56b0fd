package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StreamDefi/precrime/types"
)

func Test_UInt64ToUint32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    uint64
		want    uint32
		wantErr bool
	}{
		{name: "Valid uint64 within range", give: 42, want: 42},
		{name: "Max uint32", give: math.MaxUint32, want: math.MaxUint32},
		{name: "Uint64 exceeds uint32 max value", give: uint64(math.MaxUint32 + 1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Uint64ToUint32(tt.give)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_Uint64ToInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    uint64
		want    int64
		wantErr bool
	}{
		{name: "Valid uint64 within range", give: 1337, want: 1337},
		{name: "Uint64 exceeds int64 max value", give: uint64(math.MaxInt64) + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Uint64ToInt64(tt.give)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_ToEID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    any
		want    types.EID
		wantErr string
	}{
		{name: "uint64", give: uint64(30101), want: 30101},
		{name: "string", give: "30110", want: 30110},
		{name: "zero", give: uint64(0), wantErr: "invalid eid 0: must be positive"},
		{name: "too large", give: uint64(math.MaxUint32) + 1, wantErr: "invalid eid 4294967296: value 4294967296 exceeds uint32 range"},
		{name: "not a number", give: "arbitrum", wantErr: "invalid eid arbitrum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToEID(tt.give)

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
