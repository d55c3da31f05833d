// Package seal implements the reversible byte cipher used for catalog
// seed snapshots: JSON xored with a repeating key, then base64. It is
// an obfuscation format, not a security boundary.
package seal

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

func xorKey(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ key[i%len(key)]
	}
	return out
}

// Encode marshals v and seals it with key.
func Encode(v any, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("seal key is empty")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed marshal payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(xorKey(raw, []byte(key))), nil
}

// Decode unseals data into v. A tampered or foreign payload surfaces
// as a JSON error, never as a partial decode.
func Decode(data string, key string, v any) error {
	if key == "" {
		return fmt.Errorf("seal key is empty")
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("failed decode payload: %w", err)
	}
	if err := json.Unmarshal(xorKey(raw, []byte(key)), v); err != nil {
		return fmt.Errorf("failed unmarshal payload: %w", err)
	}
	return nil
}
