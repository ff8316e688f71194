// Package mongodb implements the storage interfaces against MongoDB.
//
// All read paths share one lazily established client. Connection state is a
// tri-state (disconnected, connecting, connected): concurrent callers of
// Ensure await a single shared dial attempt, and any operation failure resets
// the state so the next logical call dials again instead of reusing a
// poisoned handle.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fakturo-lab/fakturo/internal/core/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// DialFunc establishes and verifies a client. Injectable for tests.
type DialFunc func(ctx context.Context, uri string) (*mongo.Client, error)

// Conn memoizes a single MongoDB client, sharing one in-flight dial attempt
// between concurrent callers.
type Conn struct {
	uri  string
	dial DialFunc

	mu      sync.Mutex
	client  *mongo.Client
	attempt *connectAttempt
}

type connectAttempt struct {
	done   chan struct{}
	client *mongo.Client
	err    error
}

// NewConn creates a connection manager for the given URI. No dial happens
// until the first Ensure call.
func NewConn(uri string) *Conn {
	return &Conn{uri: uri, dial: defaultDial}
}

func defaultDial(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	return client, nil
}

// Ensure returns the shared client, dialing on first use. When a dial is
// already in flight the caller awaits that attempt rather than starting a
// second one. A failed attempt clears the in-flight marker and is not
// retried inline; the next Ensure call starts over.
func (c *Conn) Ensure(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	if c.client != nil {
		client := c.client
		c.mu.Unlock()
		return client, nil
	}
	attempt := c.attempt
	if attempt == nil {
		attempt = &connectAttempt{done: make(chan struct{})}
		c.attempt = attempt
		// The dial outlives any single request: later callers share its result.
		go c.connect(attempt)
	}
	c.mu.Unlock()

	select {
	case <-attempt.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if attempt.err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, attempt.err)
	}
	return attempt.client, nil
}

func (c *Conn) connect(attempt *connectAttempt) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := c.dial(ctx, c.uri)

	c.mu.Lock()
	c.attempt = nil
	if err == nil {
		attempt.client = client
		c.client = client
	} else {
		attempt.err = err
	}
	c.mu.Unlock()
	close(attempt.done)

	if err != nil {
		slog.Error("[Mongo] Connection attempt failed", "error", err)
		return
	}
	slog.Info("[Mongo] Connected")
}

// Reset downgrades the connection to disconnected. Called after any store
// operation failure; the handle may be poisoned, so the next Ensure dials
// fresh. The old client is torn down in the background to avoid blocking the
// failing request.
func (c *Conn) Reset() {
	c.mu.Lock()
	client := c.client
	c.client = nil
	c.mu.Unlock()

	if client != nil {
		slog.Warn("[Mongo] Connection reset after operation failure")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}()
	}
}

// State reports the current lifecycle state: "disconnected", "connecting" or
// "connected".
func (c *Conn) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.client != nil:
		return "connected"
	case c.attempt != nil:
		return "connecting"
	default:
		return "disconnected"
	}
}

// Close tears down the client. Should be called during graceful shutdown.
func (c *Conn) Close(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.client = nil
	c.mu.Unlock()

	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	slog.Info("[Mongo] Connection closed gracefully")
	return nil
}
