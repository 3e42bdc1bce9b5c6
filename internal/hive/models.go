package hive

import (
	"bytes"
	"encoding/json"
)

// Mode is the heating operating state as the API spells it.
type Mode string

const (
	ModeOff      Mode = "OFF"
	ModeManual   Mode = "MANUAL"
	ModeSchedule Mode = "SCHEDULE"
)

// ProductTypeHeating is the listing discriminator of the heating node.
const ProductTypeHeating = "heating"

// Credentials are the account username and password used to log in.
type Credentials struct {
	Username string
	Password string
}

// loginRequest is the body of POST global/login. The include flags ask the
// API to embed devices, products, actions and homes in the response.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Devices  bool   `json:"devices"`
	Products bool   `json:"products"`
	Actions  bool   `json:"actions"`
	Homes    bool   `json:"homes"`
}

type loginResponse struct {
	Token string          `json:"token"`
	Error json.RawMessage `json:"error,omitempty"`
}

// Product is one record of the product listing. Only the discriminator and id
// are decoded eagerly; the full record is kept as raw JSON.
type Product struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	raw json.RawMessage
}

// UnmarshalJSON decodes id and type and keeps a copy of the raw record.
func (p *Product) UnmarshalJSON(data []byte) error {
	var head struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	p.ID = head.ID
	p.Type = head.Type
	p.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Raw returns the record exactly as the API sent it.
func (p Product) Raw() json.RawMessage {
	return p.raw
}

// Listing is the product listing returned by GET products.
type Listing []Product

// HeatingDevice is the decoded heating node.
type HeatingDevice struct {
	ID    string       `json:"id" yaml:"id"`
	Type  string       `json:"type" yaml:"type"`
	State HeatingState `json:"state" yaml:"state"`
	Props HeatingProps `json:"props" yaml:"props"`
}

// HeatingState is the settable part of the heating node.
type HeatingState struct {
	Mode   Mode    `json:"mode" yaml:"mode"`
	Target float64 `json:"target" yaml:"target"`
}

// HeatingProps is the reported part of the heating node.
type HeatingProps struct {
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Working     bool    `json:"working" yaml:"working"`
}

// HeatingUpdate is the body of POST nodes/heating/{id}.
// Only non-empty fields are sent.
type HeatingUpdate struct {
	Target *float64 `json:"target,omitempty"`
	Mode   Mode     `json:"mode,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (u HeatingUpdate) IsEmpty() bool {
	return u.Target == nil && u.Mode == ""
}

// errorReason extracts the "error" field of a JSON object body.
// Returns "" when the body is not an object or has no error field.
func errorReason(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ""
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return ""
	}
	raw, ok := obj["error"]
	if !ok {
		return ""
	}
	return describeError(raw)
}

// describeError renders an "error" value. The API uses both plain strings and
// objects with a "reason" field.
func describeError(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}

	var obj struct {
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Reason != "" {
		return obj.Reason
	}

	if text := string(bytes.TrimSpace(raw)); text != "" && text != "null" {
		return text
	}
	return "unknown error"
}
