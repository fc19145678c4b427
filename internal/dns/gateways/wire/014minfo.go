package wire

import (
	"fmt"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// decodeMINFOData decodes the payload of a MINFO record: the responsible
// mailbox and the error mailbox, both possibly compressed.
func decodeMINFOData(msg []byte, off, end int) (domain.MINFOData, int, error) {
	rmailbox, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.MINFOData{}, 0, fmt.Errorf("MINFO rmailbox: %w", err)
	}
	emailbox, off, err := decodeDataName(msg, off, end)
	if err != nil {
		return domain.MINFOData{}, 0, fmt.Errorf("MINFO emailbox: %w", err)
	}
	return domain.MINFOData{RMailbox: rmailbox, EMailbox: emailbox}, off, nil
}

// appendMINFOData writes both names uncompressed.
func appendMINFOData(buf []byte, d domain.MINFOData) ([]byte, error) {
	rmailbox, err := encodeName(d.RMailbox)
	if err != nil {
		return nil, fmt.Errorf("MINFO rmailbox: %w", err)
	}
	emailbox, err := encodeName(d.EMailbox)
	if err != nil {
		return nil, fmt.Errorf("MINFO emailbox: %w", err)
	}
	buf = append(buf, rmailbox...)
	return append(buf, emailbox...), nil
}
