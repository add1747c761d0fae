// Package identity canonicalizes entity references for comparison.
//
// Upstream records reference each other inconsistently: the same relation may
// arrive as a raw id string, a numeric id, an object-id value, or a fully
// populated nested object. Every comparison in this service goes through
// KeyOf/Equal so that mixed representations of the same record always compare
// equal, and no call site ever compares raw fields directly.
package identity

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shrawani1619/ykc-finserv-sub001/internal/types"
)

// Key is the canonical stringified form of an entity reference. The empty
// key denotes "no reference" and matches no non-empty key.
type Key string

// Empty is the key of an absent reference.
const Empty Key = ""

// IsEmpty reports whether the key denotes no reference.
func (k Key) IsEmpty() bool {
	return k == Empty
}

// String returns the key as a plain string.
func (k Key) String() string {
	return string(k)
}

// KeyOf normalizes any reference shape into a Key. It never fails;
// unresolvable inputs degrade to the empty key.
func KeyOf(ref any) Key {
	switch v := ref.(type) {
	case nil:
		return Empty
	case Key:
		return v
	case string:
		return Key(v)
	case types.EntityRef:
		return Key(v.ID)
	case *types.EntityRef:
		if v == nil {
			return Empty
		}
		return Key(v.ID)
	case map[string]any:
		if k := KeyOf(v["_id"]); !k.IsEmpty() {
			return k
		}
		return KeyOf(v["id"])
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Key(strconv.FormatInt(i, 10))
		}
		return Key(v.String())
	case int:
		return Key(strconv.Itoa(v))
	case int64:
		return Key(strconv.FormatInt(v, 10))
	case uint64:
		return Key(strconv.FormatUint(v, 10))
	case float64:
		// JSON decoding hands integral ids over as float64
		if v == float64(int64(v)) {
			return Key(strconv.FormatInt(int64(v), 10))
		}
		return Key(strconv.FormatFloat(v, 'f', -1, 64))
	case fmt.Stringer:
		return Key(v.String())
	default:
		return Key(fmt.Sprintf("%v", v))
	}
}

// Equal reports whether two references denote the same record. Both sides
// are stringified before comparison; two absent references never match.
func Equal(a, b any) bool {
	ka, kb := KeyOf(a), KeyOf(b)
	if ka.IsEmpty() || kb.IsEmpty() {
		return false
	}
	return ka == kb
}

// FirstKey returns the first non-empty key among refs, or the empty key.
// This is the fallback chain used when a record carries several alternate
// owner fields (populated object, flat id, legacy id).
func FirstKey(refs ...any) Key {
	for _, ref := range refs {
		if k := KeyOf(ref); !k.IsEmpty() {
			return k
		}
	}
	return Empty
}
