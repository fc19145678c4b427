package wire

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

func TestResourceRecordWireLayout(t *testing.T) {
	rr, err := domain.NewResourceRecord("a.io.", domain.RRTypeA, domain.RRClassIN, 300, domain.AData{Addr: net.IP{192, 0, 2, 1}})
	require.NoError(t, err)

	buf, err := appendResourceRecord(nil, rr)
	require.NoError(t, err)

	want := []byte{
		1, 'a', 2, 'i', 'o', 0, // name
		0x00, 0x01, // type A
		0x00, 0x01, // class IN
		0x00, 0x00, 0x01, 0x2C, // ttl 300
		0x00, 0x04, // rdlength
		192, 0, 2, 1, // rdata
	}
	assert.Equal(t, want, buf)
}

func TestResourceRecordRoundTrip(t *testing.T) {
	rr, err := domain.NewResourceRecord("mail.example.com.", domain.RRTypeMX, domain.RRClassIN, 86400,
		domain.MXData{Preference: 10, Exchange: "mx1.example.com."})
	require.NoError(t, err)

	buf, err := appendResourceRecord(nil, rr)
	require.NoError(t, err)

	decoded, next, err := decodeResourceRecord(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, len(buf), next)
	assert.Equal(t, rr, decoded)
}

func TestDecodeResourceRecordCompressedDataName(t *testing.T) {
	// A CNAME payload whose target is a bare pointer back to the record's
	// own name earlier in the buffer.
	var msg []byte
	msg = append(msg, 3, 'w', 'w', 'w', 3, 'f', 'o', 'o', 2, 'i', 'o', 0)
	recordAt := len(msg)
	msg = append(msg, 0xC0, 0x04) // record name: foo.io.
	msg = append(msg, 0x00, 0x05) // type CNAME
	msg = append(msg, 0x00, 0x01) // class IN
	msg = append(msg, 0x00, 0x00, 0x0E, 0x10) // ttl 3600
	msg = append(msg, 0x00, 0x02) // rdlength
	msg = append(msg, 0xC0, 0x00) // target: www.foo.io.

	rr, next, err := decodeResourceRecord(msg, recordAt)
	require.NoError(t, err)
	assert.Equal(t, len(msg), next)
	assert.Equal(t, "foo.io.", rr.Name)
	assert.Equal(t, domain.RRTypeCNAME, rr.Type)
	assert.Equal(t, int32(3600), rr.TTL)
	assert.Equal(t, domain.CNAMEData{Target: "www.foo.io."}, rr.Data)
}

func TestDecodeResourceRecordErrors(t *testing.T) {
	name := []byte{1, 'a', 0}

	build := func(rest ...byte) []byte {
		return append(append([]byte{}, name...), rest...)
	}

	tests := []struct {
		testName string
		msg      []byte
		wantErr  error
	}{
		{
			testName: "fixed fields truncated",
			msg:      build(0x00, 0x01, 0x00, 0x01),
			wantErr:  ErrTruncated,
		},
		{
			testName: "unknown type",
			msg:      build(0x00, 0x63, 0x00, 0x01, 0, 0, 0, 0, 0x00, 0x00),
			wantErr:  ErrBadValue,
		},
		{
			testName: "question-only type in record",
			msg:      build(0x00, 0xFF, 0x00, 0x01, 0, 0, 0, 0, 0x00, 0x00),
			wantErr:  ErrBadValue,
		},
		{
			testName: "unknown class",
			msg:      build(0x00, 0x01, 0x00, 0x05, 0, 0, 0, 0, 0x00, 0x04, 1, 2, 3, 4),
			wantErr:  ErrBadValue,
		},
		{
			testName: "rdlength past buffer",
			msg:      build(0x00, 0x01, 0x00, 0x01, 0, 0, 0, 0, 0x00, 0x04, 1, 2),
			wantErr:  ErrTruncated,
		},
		{
			testName: "rdlength larger than payload",
			msg:      build(0x00, 0x01, 0x00, 0x01, 0, 0, 0, 0, 0x00, 0x05, 1, 2, 3, 4, 9),
			wantErr:  ErrLength,
		},
		{
			testName: "rdlength smaller than payload",
			msg:      build(0x00, 0x01, 0x00, 0x01, 0, 0, 0, 0, 0x00, 0x03, 1, 2, 3),
			wantErr:  ErrLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			_, _, err := decodeResourceRecord(tt.msg, 0)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAppendResourceRecordRejectsInvalidRecord(t *testing.T) {
	// Mismatched type and payload never reach the wire.
	rr := domain.ResourceRecord{
		Name:  "example.com.",
		Type:  domain.RRTypeA,
		Class: domain.RRClassIN,
		TTL:   60,
		Data:  domain.TXTData{Strings: []string{"hello"}},
	}
	_, err := appendResourceRecord(nil, rr)
	assert.Error(t, err)
}
