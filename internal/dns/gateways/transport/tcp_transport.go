package transport

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/rgdns/rgdns/internal/dns/common/log"
	"github.com/rgdns/rgdns/internal/dns/gateways/wire"
	"github.com/rgdns/rgdns/internal/dns/services/proxy"
)

// ReadFrame reads one length-delimited DNS message from r. Messages over
// TCP are prefixed by a 2-byte big-endian length; exactly one such buffer
// is delivered per message.
func ReadFrame(r io.Reader) ([]byte, error) {
	var prefix [2]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, err
	}
	length := binary.BigEndian.Uint16(prefix[:])
	if length == 0 {
		return nil, fmt.Errorf("zero-length TCP frame")
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("TCP frame declares %d bytes: %w", length, io.ErrUnexpectedEOF)
		}
		return nil, err
	}
	return buf, nil
}

// WriteFrame writes one DNS message to w with the 2-byte big-endian length
// prefix.
func WriteFrame(w io.Writer, data []byte) error {
	if len(data) > 65535 {
		return fmt.Errorf("message of %d bytes exceeds TCP frame limit", len(data))
	}
	frame := make([]byte, 2+len(data))
	binary.BigEndian.PutUint16(frame, uint16(len(data)))
	copy(frame[2:], data)
	_, err := w.Write(frame)
	return err
}

// TCPTransport implements ServerTransport for DNS over TCP with the 2-byte
// length framing. Reads are serialized per connection: one message is fully
// read and answered before the next begins; separate connections proceed in
// parallel.
type TCPTransport struct {
	addr   string
	ln     net.Listener
	codec  wire.MessageCodec
	logger log.Logger

	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewTCPTransport creates a new TCP transport instance.
func NewTCPTransport(addr string, codec wire.MessageCodec, logger log.Logger) *TCPTransport {
	return &TCPTransport{
		addr:   addr,
		codec:  codec,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// Start binds the TCP listener and starts the accept loop.
func (t *TCPTransport) Start(ctx context.Context, handler proxy.Responder) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return fmt.Errorf("TCP transport already running")
	}

	ln, err := net.Listen("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("failed to bind TCP listener on %s: %w", t.addr, err)
	}

	t.ln = ln
	t.running = true

	t.logger.Info(map[string]any{
		"transport": "tcp",
		"address":   t.addr,
	}, "DNS transport started")

	go t.acceptLoop(ctx, handler)

	return nil
}

// Stop gracefully shuts down the TCP transport and waits for in-flight
// connections to finish.
func (t *TCPTransport) Stop() error {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return nil
	}
	close(t.stopCh)
	closeErr := t.ln.Close()
	t.running = false
	t.mu.Unlock()

	t.wg.Wait()

	t.logger.Info(map[string]any{
		"transport": "tcp",
		"address":   t.addr,
	}, "DNS transport stopped")

	return closeErr
}

// Address returns the network address the transport is bound to.
func (t *TCPTransport) Address() string {
	return t.addr
}

// acceptLoop accepts connections and handles each in its own goroutine.
func (t *TCPTransport) acceptLoop(ctx context.Context, handler proxy.Responder) {
	for {
		conn, err := t.ln.Accept()
		if err != nil {
			t.mu.RLock()
			running := t.running
			t.mu.RUnlock()

			if !running {
				return // Normal shutdown
			}

			t.logger.Warn(map[string]any{
				"error": err.Error(),
			}, "Failed to accept TCP connection")
			continue
		}

		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			t.handleConn(ctx, conn, handler)
		}()
	}
}

// handleConn reads length-delimited messages from one connection in order,
// answering each before reading the next.
func (t *TCPTransport) handleConn(ctx context.Context, conn net.Conn, handler proxy.Responder) {
	defer conn.Close()
	clientAddr := conn.RemoteAddr()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.stopCh:
			return
		default:
		}

		data, err := ReadFrame(conn)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.logger.Warn(map[string]any{
					"client": clientAddr.String(),
					"error":  err.Error(),
				}, "Failed to read TCP frame")
			}
			return
		}

		query, err := t.codec.DecodeMessage(data)
		if err != nil {
			// A message we cannot parse poisons the stream; drop the
			// connection rather than guess at the next frame boundary.
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

		if err := WriteFrame(conn, responseData); err != nil {
			t.logger.Error(map[string]any{
				"client": clientAddr.String(),
				"id":     response.Header.ID,
				"error":  err.Error(),
			}, "Failed to send DNS response")
			return
		}
	}
}

var _ ServerTransport = &TCPTransport{}
