package wire

import "github.com/rgdns/rgdns/internal/dns/domain"

// decodeNULLData copies the payload of a NULL record verbatim. Anything up
// to 65535 bytes is legal.
func decodeNULLData(msg []byte, off, end int) (domain.NULLData, int, error) {
	data := make([]byte, end-off)
	copy(data, msg[off:end])
	return domain.NULLData{Data: data}, end, nil
}
