package domain

import "fmt"

// ResourceRecord represents a DNS resource record as it appears in the
// answer, authority, and additional sections of a message. The Data payload
// is a tagged union whose variant must match the declared Type; constructing
// a mismatched pair is rejected, not carried.
type ResourceRecord struct {
	Name  string
	Type  RRType
	Class RRClass
	TTL   int32
	Data  RData
}

// NewResourceRecord constructs a ResourceRecord and validates it.
func NewResourceRecord(name string, rrtype RRType, class RRClass, ttl int32, data RData) (ResourceRecord, error) {
	rr := ResourceRecord{
		Name:  name,
		Type:  rrtype,
		Class: class,
		TTL:   ttl,
		Data:  data,
	}
	if err := rr.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	return rr, nil
}

// Validate checks whether the ResourceRecord fields are valid and that the
// data variant matches the declared type.
func (rr ResourceRecord) Validate() error {
	if err := ValidateName(rr.Name); err != nil {
		return fmt.Errorf("invalid record name: %w", err)
	}
	if !IsAbsoluteName(rr.Name) {
		return fmt.Errorf("record name %q must be absolute", rr.Name)
	}
	if !rr.Type.IsValid() {
		return fmt.Errorf("invalid RRType: %d", rr.Type)
	}
	if !rr.Class.IsValid() {
		return fmt.Errorf("invalid RRClass: %d", rr.Class)
	}
	if rr.Data == nil {
		return fmt.Errorf("record data must not be nil")
	}
	if rr.Data.RRType() != rr.Type {
		return fmt.Errorf("record type %s does not match data type %s", rr.Type, rr.Data.RRType())
	}
	if err := rr.Data.Validate(); err != nil {
		return fmt.Errorf("invalid %s record data: %w", rr.Type, err)
	}
	return nil
}
