package samples

import (
	"strings"

	"github.com/Spok95/stone-inventory/internal/errs"
)

// UnderflowPolicy decides what Decrement does at zero.
type UnderflowPolicy string

const (
	// UnderflowAllow lets the quantity go negative, like a write-off without checks.
	UnderflowAllow  UnderflowPolicy = "allow"
	UnderflowClamp  UnderflowPolicy = "clamp"
	UnderflowReject UnderflowPolicy = "reject"
)

func ParseUnderflowPolicy(s string) (UnderflowPolicy, error) {
	switch p := UnderflowPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return UnderflowAllow, nil
	case UnderflowAllow, UnderflowClamp, UnderflowReject:
		return p, nil
	default:
		return "", errs.Invalid("unknown sample underflow policy: %s", s)
	}
}

func increment(qty int) int { return qty + 1 }

func (p UnderflowPolicy) decrement(qty int) (int, error) {
	if qty > 0 {
		return qty - 1, nil
	}
	switch p {
	case UnderflowClamp:
		return 0, nil
	case UnderflowReject:
		return qty, errs.Invalid("sample quantity is already %d", qty)
	default:
		return qty - 1, nil
	}
}
