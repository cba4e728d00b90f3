// Package wire converts payloads between the application format used by
// library consumers (camelCase keys) and the wire format expected by the
// Dribbble API (snake_case keys, form-encoded values).
//
// The transforms are pure functions over generic key-value payloads:
//
//	wire.ToWire(wire.Payload{"clientId": "abc", "state": ""})
//	// Payload{"client_id": "abc"} — empty values are dropped
//
//	wire.FromWire(wire.Payload{"access_token": "xyz"})
//	// Payload{"accessToken": "xyz"}
//
// Only top-level keys are converted; values, including nested objects, pass
// through unchanged.
package wire
