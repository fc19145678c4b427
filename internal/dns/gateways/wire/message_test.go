package wire

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

func mustQuestion(t *testing.T, name string, qtype domain.QType) domain.Question {
	t.Helper()
	q, err := domain.NewQuestion(name, qtype, domain.QClass(domain.RRClassIN))
	require.NoError(t, err)
	return q
}

func mustRecord(t *testing.T, name string, rrtype domain.RRType, ttl int32, data domain.RData) domain.ResourceRecord {
	t.Helper()
	rr, err := domain.NewResourceRecord(name, rrtype, domain.RRClassIN, ttl, data)
	require.NoError(t, err)
	return rr
}

func TestMessageRoundTrip(t *testing.T) {
	m := domain.Message{
		Header: domain.Header{
			ID:                 0x4D2E,
			Response:           true,
			Opcode:             domain.OpcodeStandardQuery,
			Authoritative:      true,
			RecursionDesired:   true,
			RecursionAvailable: true,
			RCode:              domain.RCodeNoError,
		},
		Questions: []domain.Question{
			mustQuestion(t, "example.com.", domain.QType(domain.RRTypeA)),
			mustQuestion(t, "example.com.", domain.QType(domain.RRTypeMX)),
		},
		Answers: []domain.ResourceRecord{
			mustRecord(t, "example.com.", domain.RRTypeA, 300, domain.AData{Addr: net.IP{93, 184, 216, 34}}),
			mustRecord(t, "example.com.", domain.RRTypeMX, 300, domain.MXData{Preference: 10, Exchange: "mx1.example.com."}),
		},
		Authority: []domain.ResourceRecord{
			mustRecord(t, "example.com.", domain.RRTypeNS, 86400, domain.NSData{NS: "ns1.example.com."}),
		},
		Additional: []domain.ResourceRecord{
			mustRecord(t, "ns1.example.com.", domain.RRTypeA, 86400, domain.AData{Addr: net.IP{198, 51, 100, 1}}),
			mustRecord(t, "example.com.", domain.RRTypeTXT, 60, domain.TXTData{Strings: []string{"hello"}}),
		},
	}

	buf, err := encodeMessage(m)
	require.NoError(t, err)

	decoded, err := decodeMessage(buf)
	require.NoError(t, err)

	// The encoder recomputes the counts, so fill them in before comparing.
	m.Header.QDCount = 2
	m.Header.ANCount = 2
	m.Header.NSCount = 1
	m.Header.ARCount = 2
	assert.Equal(t, m, decoded)
}

func TestEncodeMessageRecomputesCounts(t *testing.T) {
	// A stale header claiming the wrong counts must not reach the wire.
	m := domain.Message{
		Header: domain.Header{
			ID:      9,
			QDCount: 40,
			ANCount: 12,
		},
		Questions: []domain.Question{
			mustQuestion(t, "example.com.", domain.QType(domain.RRTypeA)),
		},
	}

	buf, err := encodeMessage(m)
	require.NoError(t, err)

	decoded, err := decodeMessage(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), decoded.Header.QDCount)
	assert.Equal(t, uint16(0), decoded.Header.ANCount)
	require.Len(t, decoded.Questions, 1)
	assert.Empty(t, decoded.Answers)
}

func TestDecodeMessageCompressed(t *testing.T) {
	// A hand-built response whose answer reuses the question name through a
	// pointer to offset 12, the classic layout produced by most servers.
	var msg []byte
	msg = append(msg,
		0x12, 0x34, // id
		0x81, 0x80, // response, RD, RA
		0x00, 0x01, // qdcount
		0x00, 0x01, // ancount
		0x00, 0x00, // nscount
		0x00, 0x00, // arcount
	)
	msg = append(msg, 6, 'g', 'o', 'o', 'g', 'l', 'e', 3, 'c', 'o', 'm', 0)
	msg = append(msg, 0x00, 0x01, 0x00, 0x01) // question A IN
	msg = append(msg, 0xC0, 0x0C)             // answer name: pointer to 12
	msg = append(msg, 0x00, 0x01, 0x00, 0x01) // A IN
	msg = append(msg, 0x00, 0x00, 0x00, 0x3C) // ttl 60
	msg = append(msg, 0x00, 0x04)             // rdlength
	msg = append(msg, 142, 250, 64, 78)

	m, err := decodeMessage(msg)
	require.NoError(t, err)

	assert.Equal(t, uint16(0x1234), m.Header.ID)
	assert.True(t, m.Header.Response)
	require.Len(t, m.Questions, 1)
	assert.Equal(t, "google.com.", m.Questions[0].Name)
	require.Len(t, m.Answers, 1)
	assert.Equal(t, "google.com.", m.Answers[0].Name)
	assert.Equal(t, int32(60), m.Answers[0].TTL)
	assert.Equal(t, domain.AData{Addr: net.IP{142, 250, 64, 78}}, m.Answers[0].Data)
}

func TestDecodeMessageErrors(t *testing.T) {
	valid := func() []byte {
		m, err := domain.NewQueryMessage(1, true, mustQuestion(t, "example.com.", domain.QType(domain.RRTypeA)))
		require.NoError(t, err)
		buf, err := encodeMessage(m)
		require.NoError(t, err)
		return buf
	}

	t.Run("short header", func(t *testing.T) {
		_, err := decodeMessage([]byte{0x12, 0x34})
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("question count overstates content", func(t *testing.T) {
		buf := valid()
		buf[5] = 2 // qdcount
		_, err := decodeMessage(buf)
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("answer count overstates content", func(t *testing.T) {
		buf := valid()
		buf[7] = 1 // ancount
		_, err := decodeMessage(buf)
		assert.ErrorIs(t, err, ErrTruncated)
	})
}

func TestMessageDecodeIsolation(t *testing.T) {
	// Decoding must not share state across messages: the same buffer decodes
	// identically twice, and a mutated copy does not affect the original.
	m, err := domain.NewQueryMessage(77, true, mustQuestion(t, "example.com.", domain.QType(domain.RRTypeSOA)))
	require.NoError(t, err)

	buf, err := encodeMessage(m)
	require.NoError(t, err)

	first, err := decodeMessage(buf)
	require.NoError(t, err)
	second, err := decodeMessage(buf)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
