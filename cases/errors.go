package cases

import "errors"

var (
	// ErrRoot is returned when the root directory itself cannot be listed.
	// It is the only error that aborts enumeration.
	ErrRoot = errors.New("cases: root directory unreadable")

	// ErrLabel is returned by ParseLabel for a label without leading digits.
	ErrLabel = errors.New("cases: label has no numeric prefix")

	// ErrTopology is returned when parsing an unknown topology or order name.
	ErrTopology = errors.New("cases: unknown topology")
)
