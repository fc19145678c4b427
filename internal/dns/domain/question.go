package domain

import (
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/common/utils"
)

// QType represents the type field of a question entry. It is a superset of
// RRType: any resource record type is a valid QType, plus four values that
// may only appear in questions.
type QType uint16

// Question-only QType constants (RFC 1035 section 3.2.3).
const (
	QTypeAXFR  QType = 252 // AXFR - request for a zone transfer
	QTypeMAILB QType = 253 // MAILB - request for mailbox records (MB/MG/MR)
	QTypeMAILA QType = 254 // MAILA - request for mail agent records (obsolete)
	QTypeALL   QType = 255 // * - request for all records
)

// IsValid returns true if the QType is a valid RRType or one of the four
// question-only values.
func (t QType) IsValid() bool {
	if RRType(t).IsValid() {
		return true
	}
	return t >= QTypeAXFR && t <= QTypeALL
}

// String returns the textual representation of the QType.
func (t QType) String() string {
	switch t {
	case QTypeAXFR:
		return "AXFR"
	case QTypeMAILB:
		return "MAILB"
	case QTypeMAILA:
		return "MAILA"
	case QTypeALL:
		return "*"
	default:
		return RRType(t).String()
	}
}

// QClass represents the class field of a question entry. It is a superset of
// RRClass with one question-only wildcard value.
type QClass uint16

// QClassANY matches records of any class. It may only appear in questions.
const QClassANY QClass = 255

// IsValid returns true if the QClass is a valid RRClass or the ANY wildcard.
func (c QClass) IsValid() bool {
	return RRClass(c).IsValid() || c == QClassANY
}

// String returns the textual representation of the QClass.
func (c QClass) String() string {
	if c == QClassANY {
		return "*"
	}
	return RRClass(c).String()
}

// Question represents one entry of the question section of a DNS message.
type Question struct {
	Name  string
	Type  QType
	Class QClass
}

// NewQuestion constructs a Question and validates its fields. The name must
// be a well-formed absolute domain name.
func NewQuestion(name string, qtype QType, qclass QClass) (Question, error) {
	q := Question{
		Name:  name,
		Type:  qtype,
		Class: qclass,
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks whether the Question fields are structurally valid.
func (q Question) Validate() error {
	if err := ValidateName(q.Name); err != nil {
		return fmt.Errorf("invalid question name: %w", err)
	}
	if !IsAbsoluteName(q.Name) {
		return fmt.Errorf("question name %q must be absolute", q.Name)
	}
	if !q.Type.IsValid() {
		return fmt.Errorf("unsupported question type: %d", q.Type)
	}
	if !q.Class.IsValid() {
		return fmt.Errorf("unsupported question class: %d", q.Class)
	}
	return nil
}

// CacheKey returns a cache key string derived from the question's name,
// type, and class. The name is canonicalized so lookups are
// case-insensitive.
func (q Question) CacheKey() string {
	return fmt.Sprintf("%s|%d|%d", utils.CanonicalDNSName(q.Name), q.Type, q.Class)
}
