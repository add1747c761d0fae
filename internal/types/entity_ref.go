package types

import (
	"encoding/json"
	"strconv"
)

// EntityRef is a reference to another entity as it appears on the wire.
// Upstream payloads are inconsistent: the same field may carry a bare id
// string, a numeric id, a populated object ({_id|id, name, ...}), or nothing
// at all. EntityRef accepts every shape and keeps the id plus, when present,
// the populated display name.
type EntityRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *EntityRef) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*r = EntityRef{}
		return nil
	}

	// Bare string id
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.ID = s
		r.Name = ""
		return nil
	}

	// Numeric id
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		r.ID = numberString(n)
		r.Name = ""
		return nil
	}

	// Populated object; legacy rows use "_id", newer ones "id"
	var obj struct {
		MongoID json.RawMessage `json:"_id"`
		ID      json.RawMessage `json:"id"`
		Name    string          `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Unresolvable shapes degrade to the empty reference rather than
		// failing the whole payload.
		*r = EntityRef{}
		return nil
	}

	idRaw := obj.MongoID
	if len(idRaw) == 0 {
		idRaw = obj.ID
	}
	if len(idRaw) > 0 {
		var inner EntityRef
		if err := inner.UnmarshalJSON(idRaw); err == nil {
			r.ID = inner.ID
		}
	} else {
		r.ID = ""
	}
	r.Name = obj.Name
	return nil
}

// MarshalJSON implements the json.Marshaler interface. A reference always
// marshals back to its id; the populated form is an inbound-only shape.
func (r EntityRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// IsZero reports whether the reference denotes nothing.
func (r EntityRef) IsZero() bool {
	return r.ID == ""
}

// String returns the id.
func (r EntityRef) String() string {
	return r.ID
}

// numberString renders a JSON number as an id string, collapsing integral
// floats ("42.0" and 42 must key identically).
func numberString(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil {
		if f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return n.String()
}
