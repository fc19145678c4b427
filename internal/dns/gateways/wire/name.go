package wire

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

const (
	// pointerTag marks the two length-byte bits that introduce a
	// compression pointer. The patterns 10 and 01 are reserved.
	pointerTag = 0xC0

	// maxPointer is the largest offset a 14-bit compression pointer can hold.
	maxPointer = 1<<14 - 1
)

// decodeName decodes a domain name from msg starting at off, following
// compression pointers against the full message buffer. It returns the name
// in absolute form (trailing dot) and the offset just past the bytes owned
// by this name occurrence: the literal labels up to and including either the
// root label or the first 2-byte pointer. Bytes visited by following a
// pointer belong to an earlier name and are not consumed again.
func decodeName(msg []byte, off int) (string, int, error) {
	var name strings.Builder
	pos := off
	resume := -1 // fixed once the first pointer is taken
	for {
		if pos >= len(msg) {
			return "", 0, fmt.Errorf("name at offset %d: %w", off, ErrTruncated)
		}
		length := int(msg[pos])
		switch length & pointerTag {
		case 0x00:
			if length == 0 {
				// Root label terminates the name.
				pos++
				if resume < 0 {
					resume = pos
				}
				if name.Len() > domain.MaxNameLength {
					return "", 0, fmt.Errorf("name at offset %d: %w", off, ErrNameTooLong)
				}
				if name.Len() == 0 {
					return ".", resume, nil
				}
				return name.String(), resume, nil
			}
			pos++
			if pos+length > len(msg) {
				return "", 0, fmt.Errorf("label at offset %d: %w", pos-1, ErrTruncated)
			}
			label := msg[pos : pos+length]
			for _, b := range label {
				if b > 0x7f {
					return "", 0, fmt.Errorf("label at offset %d: %w", pos-1, ErrNotASCII)
				}
			}
			name.Write(label)
			name.WriteByte('.')
			pos += length
		case pointerTag:
			if pos+2 > len(msg) {
				return "", 0, fmt.Errorf("pointer at offset %d: %w", pos, ErrTruncated)
			}
			target := int(binary.BigEndian.Uint16(msg[pos:pos+2]) &^ (pointerTag << 8))
			// Targets at or past the pointer would allow forward references,
			// self-reference, and unbounded loops.
			if target >= pos {
				return "", 0, fmt.Errorf("pointer at offset %d to offset %d: %w", pos, target, ErrBadPointer)
			}
			if resume < 0 {
				resume = pos + 2
			}
			pos = target
		default:
			return "", 0, fmt.Errorf("label at offset %d: %w", pos, ErrReservedBits)
		}
	}
}

// encodeName serializes an absolute domain name without compression. The
// name must end with the root label (trailing dot), which naturally encodes
// as the terminating zero length byte.
func encodeName(name string) ([]byte, error) {
	if !isASCII(name) {
		return nil, fmt.Errorf("name %q: %w", name, ErrNotASCII)
	}
	if !strings.HasSuffix(name, ".") {
		return nil, fmt.Errorf("uncompressed name %q must end with the root label: %w", name, ErrBadName)
	}
	if name == "." {
		return []byte{0}, nil
	}
	return appendLabels(nil, name, strings.Split(name, "."))
}

// encodeCompressedName serializes a name whose suffix is replaced by a
// 2-byte pointer to an earlier occurrence at offset ptr. The compression
// pointer replaces the terminator, so the name must not end with the root
// label.
func encodeCompressedName(name string, ptr uint16) ([]byte, error) {
	if !isASCII(name) {
		return nil, fmt.Errorf("name %q: %w", name, ErrNotASCII)
	}
	if strings.HasSuffix(name, ".") {
		return nil, fmt.Errorf("compressed name %q must not end with the root label: %w", name, ErrBadName)
	}
	if ptr > maxPointer {
		return nil, fmt.Errorf("offset %d: %w", ptr, ErrPointerTooLarge)
	}
	buf, err := appendLabels(nil, name, strings.Split(name, "."))
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint16(buf, pointerTag<<8|ptr), nil
}

// appendLabels writes each label as a length byte followed by its bytes. A
// trailing empty label (from the trailing dot of an absolute name) writes
// the zero-length root label.
func appendLabels(buf []byte, name string, labels []string) ([]byte, error) {
	for i, label := range labels {
		if label == "" && i != len(labels)-1 {
			return nil, fmt.Errorf("name %q has an empty interior label: %w", name, ErrBadName)
		}
		if len(label) > domain.MaxLabelLength {
			return nil, fmt.Errorf("label %q: %w", label, ErrLabelTooLong)
		}
		buf = append(buf, byte(len(label)))
		buf = append(buf, label...)
	}
	if len(buf) > domain.MaxNameLength {
		return nil, fmt.Errorf("name %q: %w", name, ErrNameTooLong)
	}
	return buf, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
