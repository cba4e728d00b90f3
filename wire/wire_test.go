package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWire_ConvertsKeysToSnakeCase(t *testing.T) {
	got := ToWire(Payload{
		"clientId":    "abc",
		"redirectUri": "https://app/cb",
		"perPage":     30,
	})

	assert.Equal(t, Payload{
		"client_id":    "abc",
		"redirect_uri": "https://app/cb",
		"per_page":     30,
	}, got)
}

func TestToWire_DropsZeroValues(t *testing.T) {
	got := ToWire(Payload{
		"clientId": "x",
		"state":    "",
		"page":     0,
		"flag":     false,
		"missing":  nil,
		"data":     []byte(nil),
	})

	assert.Equal(t, Payload{"client_id": "x"}, got)
}

func TestToWire_EmptyPayload(t *testing.T) {
	assert.Empty(t, ToWire(Payload{}))
	assert.Empty(t, ToWire(nil))
}

func TestFromWire_ConvertsKeysToCamelCase(t *testing.T) {
	got := FromWire(Payload{
		"access_token": "xyz",
		"token_type":   "bearer",
		"scope":        "public",
	})

	assert.Equal(t, Payload{
		"accessToken": "xyz",
		"tokenType":   "bearer",
		"scope":       "public",
	}, got)
}

func TestFromWire_KeepsValuesIncludingZero(t *testing.T) {
	// Inbound conversion renames keys only; nothing is filtered and nested
	// objects are left untouched.
	nested := map[string]any{"shot_id": 1}
	got := FromWire(Payload{
		"likes_count": 0,
		"attachment":  nested,
	})

	require.Len(t, got, 2)
	assert.Equal(t, 0, got["likesCount"])
	assert.Equal(t, nested, got["attachment"])
}

func TestFromWire_EmptyPayload(t *testing.T) {
	assert.Empty(t, FromWire(Payload{}))
}

func TestRoundTrip_PreservesKeySetAndValues(t *testing.T) {
	in := Payload{
		"clientId":     "abc",
		"clientSecret": "shh",
		"redirectUri":  "https://app/cb",
		"page":         2,
	}

	got := FromWire(ToWire(in))

	assert.Equal(t, in, got)
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"clientId", "client_id"},
		{"perPage", "per_page"},
		{"code", "code"},
		{"already_snake", "already_snake"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SnakeCase(tt.in), "SnakeCase(%q)", tt.in)
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"client_id", "clientId"},
		{"access_token", "accessToken"},
		{"code", "code"},
		{"alreadyCamel", "alreadyCamel"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CamelCase(tt.in), "CamelCase(%q)", tt.in)
	}
}

func TestValues_StringifiesForEncoding(t *testing.T) {
	vals := Values(Payload{
		"client_id": "abc",
		"page":      2,
		"file":      []byte("payload"),
	})

	assert.Equal(t, "abc", vals.Get("client_id"))
	assert.Equal(t, "2", vals.Get("page"))
	assert.Equal(t, "payload", vals.Get("file"))
}
