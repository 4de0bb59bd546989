package values

import (
	"strconv"
	"time"

	"github.com/wireconf/wireconf/internal/wireerr"
)

// Format produces the canonical textual representation of a scalar typed
// value, for use by the reverser. It must round-trip
// through Interpret for every kind Interpret supports; ChildNode has no
// textual form and is a ConsistencyError here — the reverser recurses
// into the child node instead of calling Format on it.
func Format(v TypedValue) (string, error) {
	switch tv := v.(type) {
	case VString:
		return string(tv), nil
	case VEnum:
		return tv.Member, nil
	case VInt:
		return strconv.FormatInt(int64(tv), 10), nil
	case VFloat:
		return strconv.FormatFloat(float64(tv), 'g', -1, 64), nil
	case VBool:
		return strconv.FormatBool(bool(tv)), nil
	case VSockAddr:
		return tv.Addr.String(), nil
	case VIPAddr:
		return tv.Addr.String(), nil
	case VPort:
		return strconv.FormatUint(uint64(tv), 10), nil
	case VPath:
		return string(tv), nil
	case VURI:
		return string(tv), nil
	case VDuration:
		return time.Duration(tv).String(), nil
	case VChildNode:
		return "", wireerr.New(wireerr.Consistency, "ChildNode has no scalar textual form")
	default:
		return "", wireerr.Newf(wireerr.Consistency, "unrecognized typed value %T", v)
	}
}
