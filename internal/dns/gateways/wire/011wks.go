package wire

import (
	"fmt"
	"net"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// decodeWKSData decodes the payload of a WKS record: a 4-byte IPv4 address,
// a protocol number, and a service bitmap spanning the rest of the payload.
func decodeWKSData(msg []byte, off, end int) (domain.WKSData, int, error) {
	if end-off < net.IPv4len+1 {
		return domain.WKSData{}, 0, fmt.Errorf("WKS record needs at least %d bytes, got %d: %w", net.IPv4len+1, end-off, ErrTruncated)
	}
	addr := make(net.IP, net.IPv4len)
	copy(addr, msg[off:off+net.IPv4len])
	off += net.IPv4len
	protocol := msg[off]
	off++
	bitmap := make([]byte, end-off)
	copy(bitmap, msg[off:end])
	return domain.WKSData{Addr: addr, Protocol: protocol, Bitmap: bitmap}, end, nil
}

// appendWKSData writes the address octets, the protocol, and the bitmap.
func appendWKSData(buf []byte, d domain.WKSData) ([]byte, error) {
	addr := d.Addr.To4()
	if addr == nil {
		return nil, fmt.Errorf("WKS record address %v is not IPv4: %w", d.Addr, ErrBadValue)
	}
	buf = append(buf, addr...)
	buf = append(buf, d.Protocol)
	return append(buf, d.Bitmap...), nil
}
