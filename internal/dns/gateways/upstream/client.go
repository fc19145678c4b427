// Package upstream forwards DNS queries to configured upstream servers over
// UDP. It tries each server once in order and carries no retry or backoff
// policy beyond that.
package upstream

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/rgdns/rgdns/internal/dns/common/log"
	"github.com/rgdns/rgdns/internal/dns/domain"
	"github.com/rgdns/rgdns/internal/dns/gateways/wire"
)

// maxUDPMessage is the conventional DNS datagram size limit.
const maxUDPMessage = 512

// Client forwards queries to upstream DNS servers.
type Client struct {
	servers []string // upstream servers in ip:port form
	timeout time.Duration
	codec   wire.MessageCodec
	logger  log.Logger
}

// NewClient creates an upstream client for the given servers. A zero
// timeout defaults to five seconds per attempt.
func NewClient(servers []string, timeout time.Duration, codec wire.MessageCodec, logger log.Logger) *Client {
	if len(servers) == 0 {
		servers = []string{"1.1.1.1:53", "1.0.0.1:53"}
	}
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		servers: servers,
		timeout: timeout,
		codec:   codec,
		logger:  logger,
	}
}

// Exchange encodes the query, sends it to each configured server in order,
// and returns the first response that decodes and matches the query's
// transaction ID.
func (c *Client) Exchange(ctx context.Context, query domain.Message) (domain.Message, error) {
	data, err := c.codec.EncodeMessage(query)
	if err != nil {
		return domain.Message{}, fmt.Errorf("failed to encode query: %w", err)
	}

	var lastErr error
	for _, server := range c.servers {
		response, err := c.exchangeServer(ctx, server, data, query.Header.ID)
		if err == nil {
			return response, nil
		}
		c.logger.Debug(map[string]any{
			"server": server,
			"error":  err.Error(),
		}, "Upstream server attempt failed")
		lastErr = err
	}
	return domain.Message{}, fmt.Errorf("all upstream servers failed, last error: %w", lastErr)
}

// exchangeServer performs one query exchange against a single server.
func (c *Client) exchangeServer(ctx context.Context, server string, data []byte, id uint16) (domain.Message, error) {
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "udp", server)
	if err != nil {
		return domain.Message{}, fmt.Errorf("failed to connect to %s: %w", server, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return domain.Message{}, fmt.Errorf("failed to set deadline: %w", err)
	}

	if _, err := conn.Write(data); err != nil {
		return domain.Message{}, fmt.Errorf("failed to send query to %s: %w", server, err)
	}

	buffer := make([]byte, maxUDPMessage)
	n, err := conn.Read(buffer)
	if err != nil {
		return domain.Message{}, fmt.Errorf("failed to read response from %s: %w", server, err)
	}

	response, err := c.codec.DecodeMessage(buffer[:n])
	if err != nil {
		return domain.Message{}, fmt.Errorf("failed to decode response from %s: %w", server, err)
	}
	if !response.Header.Response {
		return domain.Message{}, fmt.Errorf("message from %s is not a response", server)
	}
	if response.Header.ID != id {
		return domain.Message{}, fmt.Errorf("response ID mismatch from %s: expected %d, got %d", server, id, response.Header.ID)
	}
	return response, nil
}
