package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// decodeQuestion decodes one question entry at off and returns the question
// and the offset just past it. The qtype and qclass fields accept the base
// resource record enumerations plus the question-only wildcard values.
func decodeQuestion(msg []byte, off int) (domain.Question, int, error) {
	name, off, err := decodeName(msg, off)
	if err != nil {
		return domain.Question{}, 0, fmt.Errorf("question name: %w", err)
	}
	if off+4 > len(msg) {
		return domain.Question{}, 0, fmt.Errorf("question type and class need 4 bytes, have %d: %w", len(msg)-off, ErrTruncated)
	}
	qtype := domain.QType(binary.BigEndian.Uint16(msg[off : off+2]))
	if !qtype.IsValid() {
		return domain.Question{}, 0, fmt.Errorf("question type %d: %w", qtype, ErrBadValue)
	}
	qclass := domain.QClass(binary.BigEndian.Uint16(msg[off+2 : off+4]))
	if !qclass.IsValid() {
		return domain.Question{}, 0, fmt.Errorf("question class %d: %w", qclass, ErrBadValue)
	}
	q, err := domain.NewQuestion(name, qtype, qclass)
	if err != nil {
		return domain.Question{}, 0, fmt.Errorf("question: %w", err)
	}
	return q, off + 4, nil
}

// appendQuestion serializes one question entry. The question name is always
// written uncompressed.
func appendQuestion(buf []byte, q domain.Question) ([]byte, error) {
	if !q.Type.IsValid() {
		return nil, fmt.Errorf("question type %d: %w", q.Type, ErrBadValue)
	}
	if !q.Class.IsValid() {
		return nil, fmt.Errorf("question class %d: %w", q.Class, ErrBadValue)
	}
	name, err := encodeName(q.Name)
	if err != nil {
		return nil, fmt.Errorf("question name: %w", err)
	}
	buf = append(buf, name...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(q.Type))
	return binary.BigEndian.AppendUint16(buf, uint16(q.Class)), nil
}
