package policy

import "github.com/katalvlaran/spikyball/datamodel"

// ErrUnknownPolicy is returned when ExpansionType names no known policy.
func ErrUnknownPolicy(name datamodel.ExpansionPolicy) error {
	return datamodel.NewConfigError("unknown expansion policy %q", name)
}
