package wire

import "fmt"

// decodeCharacterString decodes a length-prefixed character-string at off
// and returns the string and the offset just past it.
func decodeCharacterString(msg []byte, off int) (string, int, error) {
	if off >= len(msg) {
		return "", 0, fmt.Errorf("character-string at offset %d: %w", off, ErrTruncated)
	}
	length := int(msg[off])
	off++
	if off+length > len(msg) {
		return "", 0, fmt.Errorf("character-string at offset %d declares %d bytes: %w", off-1, length, ErrTruncated)
	}
	return string(msg[off : off+length]), off + length, nil
}

// appendCharacterString writes s as a length byte followed by its bytes.
func appendCharacterString(buf []byte, s string) ([]byte, error) {
	if len(s) > 255 {
		return nil, fmt.Errorf("string of %d bytes: %w", len(s), ErrStringTooLong)
	}
	buf = append(buf, byte(len(s)))
	return append(buf, s...), nil
}
