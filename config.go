package precrime

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/StreamDefi/precrime/types"
)

var validate = validator.New()

// Config describes the application a Simulator guards.
type Config struct {
	// LocalEid is the endpoint id of the chain the simulation runs on.
	LocalEid types.EID `json:"localEid" validate:"required"`

	// OApp is the application whose receipt logic is simulated. It never changes.
	OApp common.Address `json:"oApp" validate:"required"`

	// Owner administers peers and the associated judge.
	Owner common.Address `json:"owner" validate:"required"`

	// PreCrime is the initially associated judge. It may be left unset.
	PreCrime common.Address `json:"preCrime"`
}

// Validate checks the configuration is complete.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid simulator config: %w", err)
	}

	return nil
}
