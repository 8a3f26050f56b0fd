package evm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abiutil "github.com/StreamDefi/precrime/internal/utils/abi"
)

type rpcDataError struct {
	data any
}

func (e rpcDataError) Error() string  { return "execution reverted" }
func (e rpcDataError) ErrorData() any { return e.data }

func TestExtractRevertData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want []byte
	}{
		{name: "nil error", err: nil, want: nil},
		{
			name: "json-rpc data error",
			err:  rpcDataError{data: "0xdeadbeef01"},
			want: []byte{0xde, 0xad, 0xbe, 0xef, 0x01},
		},
		{
			name: "wrapped json-rpc data error",
			err:  fmt.Errorf("call failed: %w", rpcDataError{data: "0xdeadbeef"}),
			want: []byte{0xde, 0xad, 0xbe, 0xef},
		},
		{
			name: "custom error message",
			err:  errors.New("execution reverted: custom error 0x70de1b4b: 0000 0001"),
			want: []byte{0x70, 0xde, 0x1b, 0x4b, 0x00, 0x00, 0x00, 0x01},
		},
		{
			name: "custom error without arguments",
			err:  errors.New("execution reverted: custom error 0x70de1b4b:"),
			want: []byte{0x70, 0xde, 0x1b, 0x4b},
		},
		{
			name: "hex in message",
			err:  errors.New("execution reverted 0x08c379a0"),
			want: []byte{0x08, 0xc3, 0x79, 0xa0},
		},
		{
			name: "data error without usable data falls back to message",
			err:  rpcDataError{data: 12},
			want: nil,
		},
		{name: "plain error", err: errors.New("connection refused"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ExtractRevertData(tt.err))
		})
	}
}

func TestSimulationResultError(t *testing.T) {
	t.Parallel()

	result := []byte{0x00, 0x01, 0xaa}
	err := NewSimulationResultError(result)

	assert.Equal(t, "execution reverted: SimulationResult", err.Error())
	assert.Equal(t, 3, err.ErrorCode())

	data := err.RevertData()
	assert.True(t, abiutil.HasSelector(data, SimulationResultSelector))
	assert.Equal(t, hexutil.Encode(data), err.ErrorData())

	got, decErr := decodeSimulationResult(ExtractRevertData(err))
	require.NoError(t, decErr)
	assert.Equal(t, result, got)
}

func TestDecodeSimulationResult_Malformed(t *testing.T) {
	t.Parallel()

	_, err := decodeSimulationResult(append(SimulationResultSelector[:], 0x01))
	require.ErrorContains(t, err, "failed to decode SimulationResult")
}

func TestCustomErrorData(t *testing.T) {
	t.Parallel()

	c := NewCustomErrorData([]byte{0x70, 0xde, 0x1b, 0x4b, 0x01})
	assert.Equal(t, [4]byte{0x70, 0xde, 0x1b, 0x4b}, c.Selector)
	assert.Equal(t, []byte{0x01}, c.Data)
	assert.Equal(t, "0x70de1b4b", c.HexSelector())
	assert.Equal(t, []byte{0x70, 0xde, 0x1b, 0x4b, 0x01}, c.Combined())

	short := NewCustomErrorData([]byte{0x01, 0x02})
	assert.Equal(t, [4]byte{}, short.Selector)
	assert.Equal(t, []byte{0x01, 0x02}, short.Data)

	var nilData *CustomErrorData
	assert.Empty(t, nilData.HexSelector())
	assert.Nil(t, nilData.Combined())
}
