package slabs

import (
	"strings"

	"github.com/Spok95/stone-inventory/internal/errs"
)

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusReserved    Status = "RESERVED"
	StatusUnavailable Status = "UNAVAILABLE"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusAvailable, StatusReserved, StatusUnavailable:
		return st, nil
	default:
		return "", errs.UnknownStatus(s)
	}
}

// Transition is the single place the status policy lives. Every state is reachable from every state.
func Transition(current, requested Status) (Status, error) {
	if _, err := ParseStatus(string(requested)); err != nil {
		return current, err
	}
	return requested, nil
}

