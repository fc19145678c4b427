// Package wire encodes and decodes complete DNS messages to and from the
// wire format of RFC 1035: the 12-byte header, the question section, and
// resource records with type-tagged data payloads, including the backward
// pointer name compression scheme.
//
// The codec is pure and holds no shared mutable state: every call operates
// only on its own buffer, so a single codec may be used concurrently from
// any number of goroutines. Every decode error is fatal to that message;
// callers log the reason and drop the datagram or connection.
package wire

import (
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/common/log"
	"github.com/rgdns/rgdns/internal/dns/domain"
)

// MessageCodec converts between domain messages and their wire form.
type MessageCodec interface {
	// EncodeMessage serializes a message, recomputing the header's section
	// counts from the actual section lengths.
	EncodeMessage(m domain.Message) ([]byte, error)

	// DecodeMessage parses one complete DNS message from data.
	DecodeMessage(data []byte) (domain.Message, error)
}

// codec implements MessageCodec with debug logging of raw messages.
type codec struct {
	logger log.Logger
}

// NewCodec creates a MessageCodec using the provided logger.
func NewCodec(logger log.Logger) *codec {
	return &codec{logger: logger}
}

// EncodeMessage serializes a message to wire format.
func (c *codec) EncodeMessage(m domain.Message) ([]byte, error) {
	data, err := encodeMessage(m)
	if err != nil {
		return nil, err
	}
	c.logger.Debug(map[string]any{
		"id":         m.Header.ID,
		"questions":  len(m.Questions),
		"answers":    len(m.Answers),
		"authority":  len(m.Authority),
		"additional": len(m.Additional),
		"size":       len(data),
		"raw":        fmt.Sprintf("%x", data),
	}, "Encoded DNS message")
	return data, nil
}

// DecodeMessage parses one complete DNS message from data.
func (c *codec) DecodeMessage(data []byte) (domain.Message, error) {
	m, err := decodeMessage(data)
	if err != nil {
		return domain.Message{}, err
	}
	c.logger.Debug(map[string]any{
		"id":         m.Header.ID,
		"rcode":      m.Header.RCode.String(),
		"questions":  len(m.Questions),
		"answers":    len(m.Answers),
		"authority":  len(m.Authority),
		"additional": len(m.Additional),
		"size":       len(data),
	}, "Decoded DNS message")
	return m, nil
}

var _ MessageCodec = &codec{}
