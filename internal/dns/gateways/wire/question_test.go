package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

func TestQuestionRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		question domain.Question
	}{
		{"A IN", domain.Question{Name: "example.com.", Type: domain.QType(domain.RRTypeA), Class: domain.QClass(domain.RRClassIN)}},
		{"wildcard", domain.Question{Name: "example.com.", Type: domain.QTypeALL, Class: domain.QClassANY}},
		{"zone transfer", domain.Question{Name: "example.com.", Type: domain.QTypeAXFR, Class: domain.QClass(domain.RRClassIN)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := appendQuestion(nil, tt.question)
			require.NoError(t, err)

			q, next, err := decodeQuestion(buf, 0)
			require.NoError(t, err)
			assert.Equal(t, len(buf), next)
			assert.Equal(t, tt.question, q)
		})
	}
}

func TestDecodeQuestionCompressedName(t *testing.T) {
	// Question name given as a bare pointer to a name earlier in the buffer.
	var msg []byte
	msg = append(msg, 3, 'f', 'o', 'o', 3, 'c', 'o', 'm', 0)
	questionAt := len(msg)
	msg = append(msg, 0xC0, 0x00) // name
	msg = append(msg, 0x00, 0x01) // type A
	msg = append(msg, 0x00, 0x01) // class IN

	q, next, err := decodeQuestion(msg, questionAt)
	require.NoError(t, err)
	assert.Equal(t, "foo.com.", q.Name)
	assert.Equal(t, len(msg), next)
}

func TestDecodeQuestionErrors(t *testing.T) {
	name := []byte{3, 'f', 'o', 'o', 0}

	tests := []struct {
		testName string
		msg      []byte
		wantErr  error
	}{
		{"missing type and class", name, ErrTruncated},
		{"type zero", append(append([]byte{}, name...), 0x00, 0x00, 0x00, 0x01), ErrBadValue},
		{"reserved qtype", append(append([]byte{}, name...), 0x00, 0xFB, 0x00, 0x01), ErrBadValue},
		{"class zero", append(append([]byte{}, name...), 0x00, 0x01, 0x00, 0x00), ErrBadValue},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			_, _, err := decodeQuestion(tt.msg, 0)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAppendQuestionRejectsBadFields(t *testing.T) {
	_, err := appendQuestion(nil, domain.Question{Name: "example.com.", Type: 999, Class: domain.QClass(domain.RRClassIN)})
	assert.ErrorIs(t, err, ErrBadValue)

	_, err = appendQuestion(nil, domain.Question{Name: "example.com", Type: domain.QType(domain.RRTypeA), Class: domain.QClass(domain.RRClassIN)})
	assert.Error(t, err)
}
