package wire

import (
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// decodeHINFOData decodes the payload of a HINFO record: two
// character-strings naming the CPU and the operating system.
func decodeHINFOData(msg []byte, off, end int) (domain.HINFOData, int, error) {
	cpu, off, err := decodeCharacterString(msg[:end], off)
	if err != nil {
		return domain.HINFOData{}, 0, fmt.Errorf("HINFO cpu: %w", err)
	}
	os, off, err := decodeCharacterString(msg[:end], off)
	if err != nil {
		return domain.HINFOData{}, 0, fmt.Errorf("HINFO os: %w", err)
	}
	return domain.HINFOData{CPU: cpu, OS: os}, off, nil
}

// appendHINFOData writes both character-strings.
func appendHINFOData(buf []byte, d domain.HINFOData) ([]byte, error) {
	buf, err := appendCharacterString(buf, d.CPU)
	if err != nil {
		return nil, fmt.Errorf("HINFO cpu: %w", err)
	}
	buf, err = appendCharacterString(buf, d.OS)
	if err != nil {
		return nil, fmt.Errorf("HINFO os: %w", err)
	}
	return buf, nil
}
