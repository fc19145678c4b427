package transport

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/rgdns/rgdns/internal/dns/common/log"
	"github.com/rgdns/rgdns/internal/dns/gateways/wire"
	"github.com/rgdns/rgdns/internal/dns/services/proxy"
)

// maxUDPMessage is the conventional DNS datagram size limit.
const maxUDPMessage = 512

// UDPTransport implements ServerTransport for DNS over UDP: one best-effort
// datagram per message. It handles socket management and wire conversion
// while delegating DNS logic to the service layer.
type UDPTransport struct {
	addr   string
	conn   *net.UDPConn
	codec  wire.MessageCodec
	logger log.Logger

	// Synchronization for graceful shutdown
	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
}

// NewUDPTransport creates a new UDP transport instance.
func NewUDPTransport(addr string, codec wire.MessageCodec, logger log.Logger) *UDPTransport {
	return &UDPTransport{
		addr:   addr,
		codec:  codec,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// Start binds the UDP socket and starts the datagram handling loop.
func (t *UDPTransport) Start(ctx context.Context, handler proxy.Responder) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return fmt.Errorf("UDP transport already running")
	}

	udpAddr, err := net.ResolveUDPAddr("udp", t.addr)
	if err != nil {
		return fmt.Errorf("failed to resolve UDP address %s: %w", t.addr, err)
	}

	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("failed to bind UDP socket on %s: %w", t.addr, err)
	}

	t.conn = conn
	t.running = true

	t.logger.Info(map[string]any{
		"transport": "udp",
		"address":   t.addr,
	}, "DNS transport started")

	go t.listenLoop(ctx, handler)

	return nil
}

// Stop gracefully shuts down the UDP transport.
func (t *UDPTransport) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return nil
	}

	close(t.stopCh)

	var closeErr error
	if t.conn != nil {
		closeErr = t.conn.Close()
		if closeErr != nil {
			t.logger.Warn(map[string]any{
				"error": closeErr.Error(),
			}, "Error closing UDP connection")
		}
	}

	t.running = false

	t.logger.Info(map[string]any{
		"transport": "udp",
		"address":   t.addr,
	}, "DNS transport stopped")

	return closeErr
}

// Address returns the network address the transport is bound to.
func (t *UDPTransport) Address() string {
	return t.addr
}

// listenLoop continuously receives datagrams and handles them.
func (t *UDPTransport) listenLoop(ctx context.Context, handler proxy.Responder) {
	buffer := make([]byte, maxUDPMessage)

	for {
		select {
		case <-ctx.Done():
			t.logger.Debug(nil, "UDP transport stopping due to context cancellation")
			return
		case <-t.stopCh:
			t.logger.Debug(nil, "UDP transport stopping due to stop signal")
			return
		default:
			n, clientAddr, err := t.conn.ReadFromUDP(buffer)
			if err != nil {
				t.mu.RLock()
				running := t.running
				t.mu.RUnlock()

				if !running {
					return // Normal shutdown
				}

				t.logger.Warn(map[string]any{
					"error": err.Error(),
				}, "Failed to read UDP packet")
				continue
			}

			packet := make([]byte, n)
			copy(packet, buffer[:n])
			go t.handlePacket(ctx, packet, clientAddr, handler)
		}
	}
}

// handlePacket processes a single UDP datagram.
func (t *UDPTransport) handlePacket(ctx context.Context, data []byte, clientAddr *net.UDPAddr, handler proxy.Responder) {
	query, err := t.codec.DecodeMessage(data)
	if err != nil {
		t.logger.Warn(map[string]any{
			"client": clientAddr.String(),
			"error":  err.Error(),
			"size":   len(data),
		}, "Failed to decode DNS query")
		return
	}

	response, err := handler.HandleQuery(ctx, query, clientAddr)
	if err != nil {
		t.logger.Error(map[string]any{
			"client": clientAddr.String(),
			"id":     query.Header.ID,
			"error":  err.Error(),
		}, "Failed to handle DNS query")
		return
	}

	responseData, err := t.codec.EncodeMessage(response)
	if err != nil {
		t.logger.Error(map[string]any{
			"client": clientAddr.String(),
			"id":     query.Header.ID,
			"error":  err.Error(),
		}, "Failed to encode DNS response")
		return
	}

	_, err = t.conn.WriteToUDP(responseData, clientAddr)
	if err != nil {
		t.logger.Error(map[string]any{
			"client": clientAddr.String(),
			"id":     response.Header.ID,
			"error":  err.Error(),
		}, "Failed to send DNS response")
		return
	}

	t.logger.Debug(map[string]any{
		"client":  clientAddr.String(),
		"id":      response.Header.ID,
		"rcode":   response.Header.RCode.String(),
		"answers": len(response.Answers),
		"size":    len(responseData),
	}, "Sent DNS response")
}

var _ ServerTransport = &UDPTransport{}
