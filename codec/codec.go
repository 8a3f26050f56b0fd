// Package codec serializes simulation outcomes into the payload handed to a judge.
//
// The payload is a two byte big endian version tag followed by the abi encoding of
// (bytes32 guid, bool succeeded, bytes data)[] in packet order. Encoding depends only
// on the outcomes, never on chain environment fields, so independent simulations of
// the same batch against the same state produce identical bytes.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"

	abiutil "github.com/StreamDefi/precrime/internal/utils/abi"
	"github.com/StreamDefi/precrime/types"
)

const (
	// VersionV1 is the only payload version produced by Encode.
	VersionV1 uint16 = 1

	versionSize = 2

	outcomesABI = `[{"name":"outcomes","type":"tuple[]","components":[` +
		`{"name":"guid","type":"bytes32"},` +
		`{"name":"succeeded","type":"bool"},` +
		`{"name":"data","type":"bytes"}]}]`
)

var (
	// ErrEmptyResult is returned when there is no payload to decode at all. Callers
	// treat it as "no result yet", not as a malformed result.
	ErrEmptyResult = errors.New("empty simulation result")

	// ErrMalformedResult is returned for truncated or otherwise undecodable payloads.
	ErrMalformedResult = errors.New("malformed simulation result")

	// ErrUnknownVersion is matched by every UnknownVersionError.
	ErrUnknownVersion = errors.New("unknown simulation result version")
)

var outcomesArgs = abiutil.MustParseArguments(outcomesABI)

// UnknownVersionError is returned when a payload carries a version tag this codec does
// not understand.
type UnknownVersionError struct {
	Version uint16
}

// NewUnknownVersionError creates a new UnknownVersionError.
func NewUnknownVersionError(version uint16) *UnknownVersionError {
	return &UnknownVersionError{Version: version}
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnknownVersion, e.Version)
}

// Is makes errors.Is(err, ErrUnknownVersion) hold.
func (e *UnknownVersionError) Is(target error) bool {
	return target == ErrUnknownVersion
}

// outcomeTuple mirrors the abi tuple. Field names must match the camel cased component
// names for go-ethereum to pack and convert it.
type outcomeTuple struct {
	Guid      [32]byte `json:"guid"` //nolint:revive,stylecheck // must match abi component
	Succeeded bool     `json:"succeeded"`
	Data      []byte   `json:"data"`
}

// Encode serializes outcomes. It rejects outcomes carrying data on the wrong branch.
func Encode(outcomes []types.SimulationOutcome) ([]byte, error) {
	tuples := make([]outcomeTuple, 0, len(outcomes))
	for _, o := range outcomes {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		data := o.Data()
		if data == nil {
			data = []byte{}
		}
		tuples = append(tuples, outcomeTuple{
			Guid:      o.GUID,
			Succeeded: o.Succeeded,
			Data:      data,
		})
	}

	body, err := outcomesArgs.Pack(tuples)
	if err != nil {
		return nil, fmt.Errorf("failed to encode outcomes: %w", err)
	}

	payload := make([]byte, versionSize, versionSize+len(body))
	binary.BigEndian.PutUint16(payload, VersionV1)

	return append(payload, body...), nil
}

// Decode parses a payload produced by Encode. It never returns partial results.
func Decode(payload []byte) ([]types.SimulationOutcome, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyResult
	}
	if len(payload) < versionSize {
		return nil, fmt.Errorf("%w: missing version tag", ErrMalformedResult)
	}

	if version := binary.BigEndian.Uint16(payload); version != VersionV1 {
		return nil, NewUnknownVersionError(version)
	}

	tuples, err := unpackOutcomes(payload[versionSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResult, err)
	}

	outcomes := make([]types.SimulationOutcome, 0, len(tuples))
	for _, t := range tuples {
		if t.Succeeded {
			outcomes = append(outcomes, types.NewSuccessOutcome(t.Guid, t.Data))
		} else {
			outcomes = append(outcomes, types.NewFailureOutcome(t.Guid, t.Data))
		}
	}

	// The abi decoder tolerates trailing bytes and odd offsets. Only the canonical
	// encoding is accepted so that equal payloads mean equal outcomes.
	canonical, err := Encode(outcomes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResult, err)
	}
	if !bytes.Equal(canonical, payload) {
		return nil, fmt.Errorf("%w: non-canonical encoding", ErrMalformedResult)
	}

	return outcomes, nil
}

func unpackOutcomes(body []byte) (tuples []outcomeTuple, err error) {
	values, err := outcomesArgs.Unpack(body)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("expected 1 value, got %d", len(values))
	}

	// abi.ConvertType panics when the shapes do not line up.
	defer func() {
		if r := recover(); r != nil {
			tuples, err = nil, fmt.Errorf("unexpected outcome layout: %v", r)
		}
	}()

	return *abi.ConvertType(values[0], new([]outcomeTuple)).(*[]outcomeTuple), nil
}

// Equal reports whether two payloads decode to the same outcomes. Both payloads must
// be decodable.
func Equal(a, b []byte) (bool, error) {
	if _, err := Decode(a); err != nil {
		return false, err
	}
	if _, err := Decode(b); err != nil {
		return false, err
	}

	return bytes.Equal(a, b), nil
}
