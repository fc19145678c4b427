package proxy

import (
	"context"
	"net"
	"time"

	"github.com/rgdns/rgdns/internal/dns/domain"
)

// UpstreamClient forwards an encoded query to upstream servers and returns
// the decoded response.
type UpstreamClient interface {
	Exchange(ctx context.Context, query domain.Message) (domain.Message, error)
}

// ResponseCache stores decoded responses keyed by question.
type ResponseCache interface {
	Get(key string) (domain.Message, bool)
	Set(key string, m domain.Message, ttl time.Duration)
}

// QueryJournal records query names. Record reports whether the name was
// seen for the first time.
type QueryJournal interface {
	Record(name string) (bool, error)
}

// Responder processes one decoded DNS query and produces the response.
// Transports handle all network protocol details; the responder only sees
// domain objects.
type Responder interface {
	HandleQuery(ctx context.Context, query domain.Message, clientAddr net.Addr) (domain.Message, error)
}
