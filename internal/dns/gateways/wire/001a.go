package wire

import (
	"fmt"
	"net"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// decodeAData decodes the payload of an A record, which is exactly the four
// octets of an IPv4 address.
func decodeAData(msg []byte, off, end int) (domain.AData, int, error) {
	if end-off != net.IPv4len {
		return domain.AData{}, 0, fmt.Errorf("A record address must be %d bytes, got %d: %w", net.IPv4len, end-off, ErrLength)
	}
	addr := make(net.IP, net.IPv4len)
	copy(addr, msg[off:end])
	return domain.AData{Addr: addr}, end, nil
}

// appendAData writes the four address octets.
func appendAData(buf []byte, d domain.AData) ([]byte, error) {
	addr := d.Addr.To4()
	if addr == nil {
		return nil, fmt.Errorf("A record address %v is not IPv4: %w", d.Addr, ErrBadValue)
	}
	return append(buf, addr...), nil
}
