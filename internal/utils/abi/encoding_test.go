package abi

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		giveABI    string
		giveValues []any
		want       string
		wantError  bool
	}{
		{
			name:       "success: encode single uint32",
			giveABI:    `[{"type":"uint32"}]`,
			giveValues: []any{uint32(30)},
			want:       "000000000000000000000000000000000000000000000000000000000000001e",
		},
		{
			name:       "success: encode address",
			giveABI:    `[{"type":"address"}]`,
			giveValues: []any{common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")},
			want:       "0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4",
		},
		{
			name:       "success: encode bytes",
			giveABI:    `[{"type":"bytes"}]`,
			giveValues: []any{[]byte{0xde, 0xad}},
			want: "0000000000000000000000000000000000000000000000000000000000000020" + // offset
				"0000000000000000000000000000000000000000000000000000000000000002" + // length
				"dead000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:      "failure: invalid ABI string",
			giveABI:   `[{"type":"invalid"}]`,
			wantError: true,
		},
		{
			name:       "failure: invalid values",
			giveABI:    `[{"type":"uint256"}]`,
			giveValues: []any{},
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ABIEncode(tt.giveABI, tt.giveValues...)
			if tt.wantError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(got))
		})
	}
}

func Test_Decode(t *testing.T) {
	t.Parallel()

	encoded, err := ABIEncode(`[{"type":"uint32"},{"type":"bytes32"}]`, uint32(7), [32]byte{1})
	require.NoError(t, err)

	got, err := ABIDecode(`[{"type":"uint32"},{"type":"bytes32"}]`, encoded)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint32(7), got[0])
	assert.Equal(t, [32]byte{1}, got[1])

	_, err = ABIDecode(`[{"type":"uint256"}]`, []byte{1, 2})
	require.Error(t, err)
}

func Test_EncodeError(t *testing.T) {
	t.Parallel()

	// Error(string) is the error solidity uses for require/revert messages.
	sel := ErrorSelector("Error(string)")
	assert.Equal(t, [4]byte{0x08, 0xc3, 0x79, 0xa0}, sel)

	data, err := EncodeError("Error(string)", `[{"type":"string"}]`, "boom")
	require.NoError(t, err)
	assert.True(t, HasSelector(data, sel))

	decoded, err := ABIDecode(`[{"type":"string"}]`, data[SelectorSize:])
	require.NoError(t, err)
	assert.Equal(t, "boom", decoded[0])

	noArgs, err := EncodeError("OnlySelf()", `[]`)
	require.NoError(t, err)
	assert.Len(t, noArgs, SelectorSize)

	_, err = EncodeError("Panic(uint256)", `[{"type":"uint256"}]`, "not a number")
	require.Error(t, err)

	assert.False(t, HasSelector([]byte{0x08, 0xc3}, sel))
	assert.True(t, HasSelector(append(sel[:], 1), sel))
}
