package codec

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StreamDefi/precrime/types"
)

func mixedOutcomes(n int) []types.SimulationOutcome {
	outcomes := make([]types.SimulationOutcome, 0, n)
	for i := range n {
		g := common.HexToHash(fmt.Sprintf("0x%x", i+1))
		if i%2 == 0 {
			outcomes = append(outcomes, types.NewSuccessOutcome(g, []byte(fmt.Sprintf("ok-%d", i))))
		} else {
			outcomes = append(outcomes, types.NewFailureOutcome(g, []byte(fmt.Sprintf("revert-%d", i))))
		}
	}

	return outcomes
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		outcomes []types.SimulationOutcome
	}{
		{
			name:     "empty sequence",
			outcomes: []types.SimulationOutcome{},
		},
		{
			name:     "single success",
			outcomes: []types.SimulationOutcome{types.NewSuccessOutcome(common.HexToHash("0x01"), []byte{0xca, 0xfe})},
		},
		{
			name:     "single success without return data",
			outcomes: []types.SimulationOutcome{types.NewSuccessOutcome(common.HexToHash("0x01"), nil)},
		},
		{
			name:     "single failure",
			outcomes: []types.SimulationOutcome{types.NewFailureOutcome(common.HexToHash("0x02"), []byte("boom"))},
		},
		{
			name:     "mixed batch of 10",
			outcomes: mixedOutcomes(10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payload, err := Encode(tt.outcomes)
			require.NoError(t, err)
			assert.Equal(t, VersionV1, binary.BigEndian.Uint16(payload))

			got, err := Decode(payload)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.outcomes, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}

			// Encoding is deterministic.
			again, err := Encode(got)
			require.NoError(t, err)
			assert.Equal(t, payload, again)
		})
	}
}

func TestEncode_NilAndEmptyAreIdentical(t *testing.T) {
	t.Parallel()

	a, err := Encode(nil)
	require.NoError(t, err)
	b, err := Encode([]types.SimulationOutcome{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncode_RejectsInvalidOutcome(t *testing.T) {
	t.Parallel()

	_, err := Encode([]types.SimulationOutcome{{
		GUID:         common.HexToHash("0x01"),
		Succeeded:    true,
		RevertReason: []byte("x"),
	}})
	require.ErrorIs(t, err, types.ErrInvalidOutcome)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	valid, err := Encode(mixedOutcomes(3))
	require.NoError(t, err)

	withVersion := func(v uint16, body []byte) []byte {
		out := make([]byte, 2, 2+len(body))
		binary.BigEndian.PutUint16(out, v)
		return append(out, body...)
	}

	tests := []struct {
		name    string
		payload []byte
		wantErr error
	}{
		{name: "nil payload", payload: nil, wantErr: ErrEmptyResult},
		{name: "empty payload", payload: []byte{}, wantErr: ErrEmptyResult},
		{name: "one byte", payload: []byte{0x00}, wantErr: ErrMalformedResult},
		{name: "version only", payload: withVersion(VersionV1, nil), wantErr: ErrMalformedResult},
		{name: "unknown version", payload: withVersion(2, valid[2:]), wantErr: ErrUnknownVersion},
		{name: "version zero", payload: withVersion(0, valid[2:]), wantErr: ErrUnknownVersion},
		{name: "truncated", payload: valid[:len(valid)-1], wantErr: ErrMalformedResult},
		{name: "truncated to a word", payload: valid[:2+32], wantErr: ErrMalformedResult},
		{name: "trailing garbage", payload: append(append([]byte{}, valid...), 0x01), wantErr: ErrMalformedResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(tt.payload)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestDecode_UnknownVersionIsDistinguishable(t *testing.T) {
	t.Parallel()

	payload := []byte{0x00, 0x07, 0x00}
	_, err := Decode(payload)

	var versionErr *UnknownVersionError
	require.ErrorAs(t, err, &versionErr)
	assert.Equal(t, uint16(7), versionErr.Version)
	require.NotErrorIs(t, err, ErrMalformedResult)
	require.EqualError(t, err, "unknown simulation result version: 7")
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, err := Encode(mixedOutcomes(4))
	require.NoError(t, err)
	b, err := Encode(mixedOutcomes(4))
	require.NoError(t, err)
	c, err := Encode(mixedOutcomes(5))
	require.NoError(t, err)

	eq, err := Equal(a, b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = Equal(a, c)
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = Equal(a, nil)
	require.ErrorIs(t, err, ErrEmptyResult)
}
