package wire

import "errors"

// Sentinel errors for the three failure classes of the codec. Call sites
// wrap these with the field name and offset of the failure, so callers can
// both match with errors.Is and log a useful reason before dropping the
// message. No error is recoverable: each one aborts the current message.
var (
	// ErrTruncated indicates fewer bytes remained than a field declared.
	ErrTruncated = errors.New("unexpected end of message")

	// ErrReservedBits indicates a reserved header bit or label-length bit
	// pattern was set.
	ErrReservedBits = errors.New("reserved bits set")

	// ErrBadValue indicates a value outside its defined enumeration
	// (opcode, response code, type, class).
	ErrBadValue = errors.New("value outside defined range")

	// ErrBadPointer indicates a compression pointer that does not target a
	// strictly earlier offset of the message.
	ErrBadPointer = errors.New("compression pointer must target an earlier offset")

	// ErrNameTooLong indicates a decoded or supplied name exceeding 255 bytes.
	ErrNameTooLong = errors.New("name exceeds 255 bytes")

	// ErrLabelTooLong indicates a label exceeding 63 bytes.
	ErrLabelTooLong = errors.New("label exceeds 63 bytes")

	// ErrNotASCII indicates a name containing non-ASCII bytes.
	ErrNotASCII = errors.New("name is not ASCII")

	// ErrBadName indicates an encoding precondition on a name was violated:
	// a compressed name ending in the root label, or an uncompressed name
	// missing it.
	ErrBadName = errors.New("name form does not match compression mode")

	// ErrPointerTooLarge indicates a pointer offset that does not fit in 14 bits.
	ErrPointerTooLarge = errors.New("pointer offset exceeds 14 bits")

	// ErrStringTooLong indicates a character-string exceeding 255 bytes.
	ErrStringTooLong = errors.New("character-string exceeds 255 bytes")

	// ErrLength indicates record data whose length does not match its
	// declared RDLENGTH.
	ErrLength = errors.New("record data length mismatch")
)
