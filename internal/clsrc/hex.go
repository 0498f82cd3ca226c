package clsrc

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// hexSeparator separates the two-digit byte groups of Hexify output.
const hexSeparator = ":"

// Hexify encodes data as lowercase two-digit hex groups joined by colons,
// e.g. "AB" becomes "41:42". Empty input yields an empty string.
func Hexify(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	buf := make([]byte, 0, len(data)*3-1)
	for i := range data {
		if i > 0 {
			buf = append(buf, hexSeparator...)
		}

		buf = append(buf, hex.EncodeToString(data[i:i+1])...)
	}

	return string(buf)
}

// Unhexify reverses Hexify.
func Unhexify(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}

	groups := strings.Split(text, hexSeparator)
	out := make([]byte, 0, len(groups))

	for i, group := range groups {
		if len(group) != 2 {
			return nil, fmt.Errorf("decoding byte %d: group %q is not two hex digits", i, group)
		}

		b, err := hex.DecodeString(group)
		if err != nil {
			return nil, fmt.Errorf("decoding byte %d: %w", i, err)
		}

		out = append(out, b[0])
	}

	return out, nil
}

// Digest returns the lowercase hex MD5 of data.
func Digest(data []byte) string {
	sum := md5.Sum(data)

	return hex.EncodeToString(sum[:])
}
