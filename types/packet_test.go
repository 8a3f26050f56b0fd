package types

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPacket() InboundPacket {
	return InboundPacket{
		Origin: Origin{
			SrcEid: 30101,
			Sender: common.HexToHash("0x01"),
			Nonce:  1,
		},
		DstEid:   30110,
		Receiver: common.HexToAddress("0x02"),
		GUID:     common.HexToHash("0xabcd"),
		Value:    big.NewInt(10),
		Message:  []byte("hello"),
	}
}

func TestInboundPacket_Validate(t *testing.T) {
	t.Parallel()

	tooLarge := new(big.Int).Lsh(big.NewInt(1), 256)

	tests := []struct {
		name    string
		mutate  func(p *InboundPacket)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*InboundPacket) {},
		},
		{
			name:   "nil value is allowed",
			mutate: func(p *InboundPacket) { p.Value = nil },
		},
		{
			name:    "missing source eid",
			mutate:  func(p *InboundPacket) { p.Origin.SrcEid = 0 },
			wantErr: "invalid inbound packet: Key: 'InboundPacket.Origin.SrcEid' Error:Field validation for 'SrcEid' failed on the 'required' tag",
		},
		{
			name:    "missing destination eid",
			mutate:  func(p *InboundPacket) { p.DstEid = 0 },
			wantErr: "invalid inbound packet: Key: 'InboundPacket.DstEid' Error:Field validation for 'DstEid' failed on the 'required' tag",
		},
		{
			name:    "zero guid",
			mutate:  func(p *InboundPacket) { p.GUID = common.Hash{} },
			wantErr: "invalid inbound packet: guid must be set",
		},
		{
			name:    "negative value",
			mutate:  func(p *InboundPacket) { p.Value = big.NewInt(-1) },
			wantErr: "invalid inbound packet: value -1 is not a uint256",
		},
		{
			name:    "value overflows uint256",
			mutate:  func(p *InboundPacket) { p.Value = tooLarge },
			wantErr: "invalid inbound packet: value " + tooLarge.String() + " is not a uint256",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := validPacket()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidPacket)
				require.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestInboundPacket_MsgValue(t *testing.T) {
	t.Parallel()

	p := validPacket()
	v := p.MsgValue()
	assert.Equal(t, big.NewInt(10), v)

	// The returned value is a copy.
	v.SetInt64(99)
	assert.Equal(t, big.NewInt(10), p.Value)

	p.Value = nil
	assert.Equal(t, 0, p.MsgValue().Sign())
}

func TestInboundPacket_Clone(t *testing.T) {
	t.Parallel()

	p := validPacket()
	p.ExtraData = []byte{0x01}

	c := p.Clone()
	assert.Equal(t, p, c)

	c.Message[0] = 'X'
	c.ExtraData[0] = 0xff
	c.Value.SetInt64(99)

	assert.Equal(t, []byte("hello"), []byte(p.Message))
	assert.Equal(t, []byte{0x01}, []byte(p.ExtraData))
	assert.Equal(t, big.NewInt(10), p.Value)

	p.Value = nil
	assert.Nil(t, p.Clone().Value)
}

func TestTotalValue(t *testing.T) {
	t.Parallel()

	a := validPacket()
	b := validPacket()
	b.Value = nil
	c := validPacket()
	c.Value = big.NewInt(5)

	assert.Equal(t, big.NewInt(15), TotalValue([]InboundPacket{a, b, c}))
	assert.Equal(t, 0, TotalValue(nil).Sign())
}

func TestGUIDs(t *testing.T) {
	t.Parallel()

	a := validPacket()
	b := validPacket()
	b.GUID = common.HexToHash("0xbeef")

	assert.Equal(t, []common.Hash{a.GUID, b.GUID}, GUIDs([]InboundPacket{a, b}))
	assert.Empty(t, GUIDs(nil))
}

func TestAddressToPeer(t *testing.T) {
	t.Parallel()

	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	assert.Equal(t,
		common.HexToHash("0x0000000000000000000000001111111111111111111111111111111111111111"),
		AddressToPeer(addr),
	)
}
