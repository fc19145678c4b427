package domain

import "fmt"

// Message represents one complete DNS message: a header followed by four
// ordered sections. The counts recorded in the header are recomputed from
// the section lengths whenever the message is encoded, so a stale header
// cannot misreport them on the wire.
type Message struct {
	Header     Header
	Questions  []Question
	Answers    []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
}

// NewQueryMessage constructs a query message carrying a single question.
func NewQueryMessage(id uint16, recursionDesired bool, q Question) (Message, error) {
	if err := q.Validate(); err != nil {
		return Message{}, err
	}
	return Message{
		Header: Header{
			ID:               id,
			Opcode:           OpcodeStandardQuery,
			RecursionDesired: recursionDesired,
			QDCount:          1,
		},
		Questions: []Question{q},
	}, nil
}

// NewResponseMessage constructs a response message echoing the questions of
// the query it answers.
func NewResponseMessage(query Message, rcode RCode, answers []ResourceRecord) (Message, error) {
	if !rcode.IsValid() {
		return Message{}, fmt.Errorf("invalid response code: %d", rcode)
	}
	return Message{
		Header: Header{
			ID:                 query.Header.ID,
			Response:           true,
			Opcode:             query.Header.Opcode,
			RecursionDesired:   query.Header.RecursionDesired,
			RecursionAvailable: true,
			RCode:              rcode,
			QDCount:            uint16(len(query.Questions)),
			ANCount:            uint16(len(answers)),
		},
		Questions: query.Questions,
		Answers:   answers,
	}, nil
}

// Validate checks the header and every entry of every section.
func (m Message) Validate() error {
	if err := m.Header.Validate(); err != nil {
		return fmt.Errorf("invalid header: %w", err)
	}
	for i, q := range m.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("invalid question %d: %w", i, err)
		}
	}
	sections := []struct {
		name    string
		records []ResourceRecord
	}{
		{"answer", m.Answers},
		{"authority", m.Authority},
		{"additional", m.Additional},
	}
	for _, s := range sections {
		for i, rr := range s.records {
			if err := rr.Validate(); err != nil {
				return fmt.Errorf("invalid %s record %d: %w", s.name, i, err)
			}
		}
	}
	return nil
}
