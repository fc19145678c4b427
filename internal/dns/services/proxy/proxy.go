// Package proxy implements the service layer of rg-dnsd: it validates
// decoded queries, consults the response cache, forwards cache misses to
// the configured upstream servers, and journals queried names. It performs
// no resolution of its own.
package proxy

import (
	"context"
	"net"
	"time"

	"github.com/rgdns/rgdns/internal/dns/common/log"
	"github.com/rgdns/rgdns/internal/dns/common/utils"
	"github.com/rgdns/rgdns/internal/dns/domain"
)

// Proxy ties the transport layer to the upstream client. It is safe for
// concurrent use; all state lives in the injected collaborators.
type Proxy struct {
	logger   log.Logger
	upstream UpstreamClient
	cache    ResponseCache
	journal  QueryJournal
}

// Options holds the collaborators a Proxy is built from. Cache and Journal
// may be nil to disable the respective behavior.
type Options struct {
	Logger   log.Logger
	Upstream UpstreamClient
	Cache    ResponseCache
	Journal  QueryJournal
}

// New constructs a Proxy from its options.
func New(opts Options) *Proxy {
	return &Proxy{
		logger:   opts.Logger,
		upstream: opts.Upstream,
		cache:    opts.Cache,
		journal:  opts.Journal,
	}
}

// HandleQuery processes one decoded DNS query and returns the response to
// send. Malformed or unsupported queries yield FORMERR/NOTIMP responses;
// upstream failures yield SERVFAIL. The returned message always echoes the
// query's transaction ID.
func (p *Proxy) HandleQuery(ctx context.Context, query domain.Message, clientAddr net.Addr) (domain.Message, error) {
	if query.Header.Response {
		p.logger.Warn(map[string]any{
			"client": clientAddr.String(),
			"id":     query.Header.ID,
		}, "Dropping message with response flag set")
		return domain.NewResponseMessage(query, domain.RCodeFormatError, nil)
	}
	if query.Header.Opcode != domain.OpcodeStandardQuery {
		return domain.NewResponseMessage(query, domain.RCodeNotImplemented, nil)
	}
	if len(query.Questions) != 1 {
		p.logger.Warn(map[string]any{
			"client":    clientAddr.String(),
			"id":        query.Header.ID,
			"questions": len(query.Questions),
		}, "Expected exactly one question")
		return domain.NewResponseMessage(query, domain.RCodeFormatError, nil)
	}
	q := query.Questions[0]

	p.recordName(q.Name)

	key := q.CacheKey()
	if p.cache != nil {
		if cached, found := p.cache.Get(key); found {
			cached.Header.ID = query.Header.ID
			p.logger.Debug(map[string]any{
				"name": q.Name,
				"type": q.Type.String(),
			}, "Answered from cache")
			return cached, nil
		}
	}

	response, err := p.upstream.Exchange(ctx, query)
	if err != nil {
		p.logger.Error(map[string]any{
			"client": clientAddr.String(),
			"name":   q.Name,
			"type":   q.Type.String(),
			"error":  err.Error(),
		}, "Upstream exchange failed")
		return domain.NewResponseMessage(query, domain.RCodeServerFailure, nil)
	}

	if p.cache != nil {
		if ttl := cacheTTL(response); ttl > 0 {
			p.cache.Set(key, response, ttl)
		}
	}
	return response, nil
}

// recordName journals a queried name, logging first sightings with their
// registrable apex domain.
func (p *Proxy) recordName(name string) {
	if p.journal == nil {
		return
	}
	first, err := p.journal.Record(name)
	if err != nil {
		p.logger.Warn(map[string]any{
			"name":  name,
			"error": err.Error(),
		}, "Failed to journal query name")
		return
	}
	if first {
		p.logger.Info(map[string]any{
			"name": utils.CanonicalDNSName(name),
			"apex": utils.ApexDomain(name),
		}, "First sighting of query name")
	}
}

// cacheTTL returns how long a response may be cached: the smallest answer
// TTL, or zero when the response is not a cacheable positive answer.
func cacheTTL(m domain.Message) time.Duration {
	if m.Header.RCode != domain.RCodeNoError || len(m.Answers) == 0 {
		return 0
	}
	min := m.Answers[0].TTL
	for _, rr := range m.Answers[1:] {
		if rr.TTL < min {
			min = rr.TTL
		}
	}
	if min <= 0 {
		return 0
	}
	return time.Duration(min) * time.Second
}

var _ Responder = &Proxy{}
