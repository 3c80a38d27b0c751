// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSON marshals v into a JSON column value. Marshal failures yield an
// empty object so a bad value never blocks a write.
func toJSON(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(data)
}

// fromJSON decodes a JSON column into out, tolerating the two corrupted
// shapes found in legacy rows: a doubly-encoded JSON string and garbage
// bytes. On failure out is left at its zero value and no error is raised.
func fromJSON(data datatypes.JSON, out interface{}) {
	if len(data) == 0 {
		return
	}

	raw := []byte(data)

	// Some legacy rows store the JSON doubly encoded ("{\"a\":1}").
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		raw = []byte(asString)
	}

	_ = json.Unmarshal(raw, out)
}
