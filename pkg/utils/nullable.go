package utils

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"reflect"
)

// NullableInt64 is a JSON integer that remembers whether its key was sent.
// An explicit null is present with a nil Value; an absent key is not present.
type NullableInt64 struct {
	Value   *int64
	Present bool
}

// Int64 returns a present, non-null value.
func Int64(v int64) NullableInt64 {
	return NullableInt64{Value: &v, Present: true}
}

func (n *NullableInt64) UnmarshalJSON(data []byte) error {
	n.Present = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

func (n NullableInt64) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}

// NullInt64 converts the value into its column form.
func (n NullableInt64) NullInt64() sql.NullInt64 {
	if n.Value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n.Value, Valid: true}
}

// presence lets `validate:"required"` check that the key was sent rather
// than that the value is non-null.
func presence(field reflect.Value) interface{} {
	if n, ok := field.Interface().(NullableInt64); ok {
		return n.Present
	}
	return nil
}
