// Package transport provides the UDP and TCP server transports of rg-dnsd.
// Transports own the sockets and the framing; decoded messages are handed
// to the service layer as domain objects.
package transport

import "context"

import "github.com/rgdns/rgdns/internal/dns/services/proxy"

// ServerTransport defines the interface for DNS server transport
// implementations. UDP and TCP implement it today; other transports can
// provide the same request handling contract to the service layer.
type ServerTransport interface {
	// Start begins listening for requests and handling them via the
	// provided responder. It returns once the transport is accepting.
	Start(ctx context.Context, handler proxy.Responder) error

	// Stop gracefully shuts down the transport, closing sockets and
	// cleaning up resources.
	Stop() error

	// Address returns the network address the transport is bound to.
	Address() string
}
