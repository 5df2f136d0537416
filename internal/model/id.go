package model

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

// ID is an opaque entity identifier. New entities get UUIDs; data written
// by earlier versions of the system used millisecond-timestamp numbers, so
// the decoder accepts either a JSON string or a JSON number.
type ID string

// NewID returns a fresh unique identifier.
func NewID() ID { return ID(uuid.NewString()) }

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	// Legacy numeric id.
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}
