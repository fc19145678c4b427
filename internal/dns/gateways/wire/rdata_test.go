package wire

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// Every record type must survive the trip through its wire form with the
// payload bounded to exactly the declared length.
func TestRDataRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data domain.RData
	}{
		{"A", domain.AData{Addr: net.IP{203, 0, 113, 7}}},
		{"NS", domain.NSData{NS: "ns1.example.com."}},
		{"MD", domain.MDData{Mail: "mail.example.com."}},
		{"MF", domain.MFData{Mail: "relay.example.com."}},
		{"CNAME", domain.CNAMEData{Target: "canonical.example.com."}},
		{"SOA", domain.SOAData{
			MName:   "ns1.example.com.",
			RName:   "hostmaster.example.com.",
			Serial:  2024010101,
			Refresh: 7200,
			Retry:   3600,
			Expire:  1209600,
			Minimum: 300,
		}},
		{"MB", domain.MBData{Mailbox: "mb.example.com."}},
		{"MG", domain.MGData{Mailbox: "mg.example.com."}},
		{"MR", domain.MRData{NewName: "renamed.example.com."}},
		{"NULL", domain.NULLData{Data: []byte{0xDE, 0xAD, 0xBE, 0xEF}}},
		{"WKS", domain.WKSData{Addr: net.IP{192, 0, 2, 1}, Protocol: 6, Bitmap: []byte{0x00, 0x40, 0x01}}},
		{"PTR", domain.PTRData{Target: "host.example.com."}},
		{"HINFO", domain.HINFOData{CPU: "VAX-11/780", OS: "UNIX"}},
		{"MINFO", domain.MINFOData{RMailbox: "owner.example.com.", EMailbox: "errors.example.com."}},
		{"MX", domain.MXData{Preference: 10, Exchange: "mx1.example.com."}},
		{"TXT", domain.TXTData{Strings: []string{"v=spf1 include:example.com -all", "second"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := encodeRData(tt.data)
			require.NoError(t, err)

			decoded, err := decodeRData(buf, 0, len(buf), tt.data.RRType())
			require.NoError(t, err)
			assert.Equal(t, tt.data, decoded)
		})
	}
}

func TestDecodeRDataRejectsLooseBounds(t *testing.T) {
	// A well-formed payload inside a larger declared length must fail
	// rather than silently skip the excess.
	buf, err := encodeRData(domain.MXData{Preference: 5, Exchange: "mx.example.com."})
	require.NoError(t, err)

	padded := append(append([]byte{}, buf...), 0x00)
	_, err = decodeRData(padded, 0, len(padded), domain.RRTypeMX)
	assert.ErrorIs(t, err, ErrLength)
}

func TestDecodeRDataEmptyNULL(t *testing.T) {
	data, err := decodeRData(nil, 0, 0, domain.RRTypeNULL)
	require.NoError(t, err)
	assert.Equal(t, domain.NULLData{Data: []byte{}}, data)
}

func TestDecodeRDataUnknownType(t *testing.T) {
	_, err := decodeRData([]byte{1, 2, 3, 4}, 0, 4, domain.RRType(17))
	assert.ErrorIs(t, err, ErrBadValue)
}

func TestDecodeSOADataTruncatedCounter(t *testing.T) {
	buf, err := encodeRData(domain.SOAData{
		MName:   "ns1.example.com.",
		RName:   "hostmaster.example.com.",
		Serial:  1,
		Refresh: 2,
		Retry:   3,
		Expire:  4,
		Minimum: 5,
	})
	require.NoError(t, err)

	// Cut off in the middle of the last counter.
	short := buf[:len(buf)-2]
	_, err = decodeRData(short, 0, len(short), domain.RRTypeSOA)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeDataNameStaysInPayload(t *testing.T) {
	// The name's bytes run past the declared payload end even though the
	// buffer itself is long enough.
	buf, err := encodeName("long-enough-name.example.com.")
	require.NoError(t, err)

	_, _, err = decodeDataName(buf, 0, len(buf)-3)
	assert.ErrorIs(t, err, ErrLength)
}

func TestDecodeTXTDataBoundedSegments(t *testing.T) {
	// The final segment claims more bytes than the payload holds even
	// though the message continues past it.
	msg := []byte{3, 'a', 'b', 'c', 5, 'd', 'e', 0, 0, 0}
	_, err := decodeRData(msg, 0, 7, domain.RRTypeTXT)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeHINFOData(t *testing.T) {
	msg := []byte{3, 'x', '8', '6', 5, 'l', 'i', 'n', 'u', 'x'}
	data, err := decodeRData(msg, 0, len(msg), domain.RRTypeHINFO)
	require.NoError(t, err)
	assert.Equal(t, domain.HINFOData{CPU: "x86", OS: "linux"}, data)
}
