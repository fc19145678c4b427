package wire

import (
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// decodeMessage decodes one complete DNS message. Every sub-parse receives
// the entire original buffer so compression pointers can target any earlier
// offset; only the shared cursor advances.
func decodeMessage(msg []byte) (domain.Message, error) {
	header, off, err := decodeHeader(msg, 0)
	if err != nil {
		return domain.Message{}, err
	}

	questions := make([]domain.Question, 0, header.QDCount)
	for i := 0; i < int(header.QDCount); i++ {
		var q domain.Question
		q, off, err = decodeQuestion(msg, off)
		if err != nil {
			return domain.Message{}, fmt.Errorf("question %d: %w", i, err)
		}
		questions = append(questions, q)
	}

	sections := []struct {
		name  string
		count uint16
	}{
		{"answer", header.ANCount},
		{"authority", header.NSCount},
		{"additional", header.ARCount},
	}
	records := make([][]domain.ResourceRecord, len(sections))
	for s, section := range sections {
		records[s] = make([]domain.ResourceRecord, 0, section.count)
		for i := 0; i < int(section.count); i++ {
			var rr domain.ResourceRecord
			rr, off, err = decodeResourceRecord(msg, off)
			if err != nil {
				return domain.Message{}, fmt.Errorf("%s record %d: %w", section.name, i, err)
			}
			records[s] = append(records[s], rr)
		}
	}

	return domain.Message{
		Header:     header,
		Questions:  questions,
		Answers:    records[0],
		Authority:  records[1],
		Additional: records[2],
	}, nil
}

// encodeMessage serializes one complete DNS message. The header's section
// counts are recomputed from the actual section lengths rather than trusted
// from the caller's header.
func encodeMessage(m domain.Message) ([]byte, error) {
	header := m.Header
	var err error
	header.QDCount, err = sectionCount("question", len(m.Questions))
	if err != nil {
		return nil, err
	}
	header.ANCount, err = sectionCount("answer", len(m.Answers))
	if err != nil {
		return nil, err
	}
	header.NSCount, err = sectionCount("authority", len(m.Authority))
	if err != nil {
		return nil, err
	}
	header.ARCount, err = sectionCount("additional", len(m.Additional))
	if err != nil {
		return nil, err
	}

	buf, err := appendHeader(nil, header)
	if err != nil {
		return nil, err
	}
	for i, q := range m.Questions {
		buf, err = appendQuestion(buf, q)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}
	for _, section := range []struct {
		name    string
		records []domain.ResourceRecord
	}{
		{"answer", m.Answers},
		{"authority", m.Authority},
		{"additional", m.Additional},
	} {
		for i, rr := range section.records {
			buf, err = appendResourceRecord(buf, rr)
			if err != nil {
				return nil, fmt.Errorf("%s record %d: %w", section.name, i, err)
			}
		}
	}
	return buf, nil
}

func sectionCount(name string, n int) (uint16, error) {
	if n > 65535 {
		return 0, fmt.Errorf("%s section holds %d entries (max 65535): %w", name, n, ErrLength)
	}
	return uint16(n), nil
}
