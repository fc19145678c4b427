package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rgdns/rgdns/internal/dns/common/log"
	"github.com/rgdns/rgdns/internal/dns/config"
	"github.com/rgdns/rgdns/internal/dns/gateways/transport"
	"github.com/rgdns/rgdns/internal/dns/gateways/upstream"
	"github.com/rgdns/rgdns/internal/dns/gateways/wire"
	"github.com/rgdns/rgdns/internal/dns/repos/journal"
	"github.com/rgdns/rgdns/internal/dns/repos/msgcache"
	"github.com/rgdns/rgdns/internal/dns/services/proxy"
)

const (
	// Version information
	version = "0.1.0-dev"
	appName = "rg-dnsd"

	// Default timeouts
	defaultUpstreamTimeout = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Application holds all the components of the DNS proxy
type Application struct {
	config  *config.AppConfig
	udp     *transport.UDPTransport
	tcp     *transport.TCPTransport
	proxy   *proxy.Proxy
	journal *journal.Journal
}

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Configure global logging
	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"version":    version,
		"env":        cfg.Env,
		"log_level":  cfg.LogLevel,
		"port":       cfg.Port,
		"cache_size": cfg.CacheSize,
		"journal":    cfg.JournalPath,
		"servers":    cfg.Servers,
	}, "Starting RG-DNS proxy")

	// Build application with all dependencies
	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info(map[string]any{"signal": sig.String()}, "Shutdown signal received")
		cancel()
	}()

	// Start the proxy
	if err := app.Run(ctx); err != nil {
		log.Fatal(map[string]any{"error": err}, "Server failed")
	}

	log.Info(nil, "RG-DNS proxy stopped gracefully")
}

// buildApplication constructs all components and wires them together
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	// Initialize logger (already configured globally)
	logger := log.GetLogger()

	// Create DNS wire codec
	codec := wire.NewCodec(logger)

	// Create upstream response cache
	var responseCache proxy.ResponseCache
	if cfg.DisableCache {
		log.Info(map[string]any{"disabled": true}, "DNS response caching disabled")
	} else {
		// Safely convert uint to int with bounds check
		cacheSize := cfg.CacheSize
		if cacheSize > uint(^uint(0)>>1) {
			return nil, fmt.Errorf("cache size too large: %d (max %d)", cacheSize, ^uint(0)>>1)
		}
		cache, err := msgcache.New(int(cacheSize))
		if err != nil {
			return nil, fmt.Errorf("failed to create response cache: %w", err)
		}
		responseCache = cache
		log.Info(map[string]any{
			"type": "LRU",
			"size": cfg.CacheSize,
		}, "DNS response cache configured")
	}

	// Create first-seen query journal
	var queryJournal proxy.QueryJournal
	var journalStore *journal.Journal
	if cfg.JournalPath != "" {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open query journal: %w", err)
		}
		journalStore = j
		queryJournal = j
		log.Info(map[string]any{"path": cfg.JournalPath}, "Query journal opened")
	}

	// Create upstream client
	upstreamClient := upstream.NewClient(cfg.Servers, defaultUpstreamTimeout, codec, logger)
	log.Info(map[string]any{
		"servers": cfg.Servers,
		"timeout": defaultUpstreamTimeout,
	}, "Upstream DNS client configured")

	// Build service layer
	proxyService := proxy.New(proxy.Options{
		Logger:   logger,
		Upstream: upstreamClient,
		Cache:    responseCache,
		Journal:  queryJournal,
	})

	// Build transport layer
	addr := fmt.Sprintf(":%d", cfg.Port)
	udpTransport := transport.NewUDPTransport(addr, codec, logger)
	tcpTransport := transport.NewTCPTransport(addr, codec, logger)

	return &Application{
		config:  cfg,
		udp:     udpTransport,
		tcp:     tcpTransport,
		proxy:   proxyService,
		journal: journalStore,
	}, nil
}

// Run starts both transports and blocks until context is cancelled
func (app *Application) Run(ctx context.Context) error {
	if err := app.udp.Start(ctx, app.proxy); err != nil {
		return fmt.Errorf("failed to start UDP transport: %w", err)
	}
	log.Info(map[string]any{
		"address":   app.udp.Address(),
		"transport": "UDP",
	}, "DNS proxy listening")

	if err := app.tcp.Start(ctx, app.proxy); err != nil {
		if stopErr := app.udp.Stop(); stopErr != nil {
			log.Warn(map[string]any{"error": stopErr}, "Error stopping UDP transport")
		}
		return fmt.Errorf("failed to start TCP transport: %w", err)
	}
	log.Info(map[string]any{
		"address":   app.tcp.Address(),
		"transport": "TCP",
	}, "DNS proxy listening")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info(nil, "Shutdown initiated")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	// Stop transports gracefully
	done := make(chan struct{})
	go func() {
		if err := app.udp.Stop(); err != nil {
			log.Warn(map[string]any{"error": err}, "Error during UDP shutdown")
		}
		if err := app.tcp.Stop(); err != nil {
			log.Warn(map[string]any{"error": err}, "Error during TCP shutdown")
		}
		if app.journal != nil {
			if err := app.journal.Close(); err != nil {
				log.Warn(map[string]any{"error": err}, "Error closing query journal")
			}
		}
		close(done)
	}()

	select {
	case <-done:
		log.Info(nil, "Graceful shutdown completed")
		return nil
	case <-shutdownCtx.Done():
		log.Warn(map[string]any{"timeout": defaultShutdownTimeout}, "Shutdown timeout exceeded")
		return fmt.Errorf("shutdown timeout")
	}
}
