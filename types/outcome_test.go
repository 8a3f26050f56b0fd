package types

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationOutcome_Constructors(t *testing.T) {
	t.Parallel()

	guid := common.HexToHash("0x01")

	ok := NewSuccessOutcome(guid, []byte{})
	assert.True(t, ok.Succeeded)
	assert.Nil(t, ok.ReturnData)
	assert.Nil(t, ok.Data())

	data := []byte{1, 2, 3}
	ok = NewSuccessOutcome(guid, data)
	data[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, []byte(ok.Data()))

	fail := NewFailureOutcome(guid, []byte("nope"))
	assert.False(t, fail.Succeeded)
	assert.Nil(t, fail.ReturnData)
	assert.Equal(t, []byte("nope"), []byte(fail.Data()))
}

func TestSimulationOutcome_Validate(t *testing.T) {
	t.Parallel()

	guid := common.HexToHash("0x01")

	tests := []struct {
		name    string
		outcome SimulationOutcome
		wantErr bool
	}{
		{name: "success", outcome: NewSuccessOutcome(guid, []byte{1})},
		{name: "failure", outcome: NewFailureOutcome(guid, []byte{1})},
		{name: "empty failure", outcome: NewFailureOutcome(guid, nil)},
		{
			name:    "success with revert reason",
			outcome: SimulationOutcome{GUID: guid, Succeeded: true, RevertReason: []byte{1}},
			wantErr: true,
		},
		{
			name:    "failure with return data",
			outcome: SimulationOutcome{GUID: guid, ReturnData: []byte{1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.outcome.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidOutcome)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
