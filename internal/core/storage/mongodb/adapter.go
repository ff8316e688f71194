package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fakturo-lab/fakturo/internal/core/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	colInvoices = "invoices"
	colClients  = "clients"
	colFolders  = "folders"

	queryMaxTime = 10 * time.Second
)

// Adapter implements the storage read interfaces for MongoDB. It shares one
// lazily established connection across every read path and resets it after
// any operation failure so the next call redials.
type Adapter struct {
	conn   *Conn
	dbName string
}

// NewAdapter creates an adapter for the given URI and database. The first
// store operation triggers the dial; index bootstrap happens as part of that
// first successful connect.
func NewAdapter(uri, dbName string) *Adapter {
	a := &Adapter{dbName: dbName}
	conn := NewConn(uri)
	baseDial := conn.dial
	conn.dial = func(ctx context.Context, u string) (*mongo.Client, error) {
		client, err := baseDial(ctx, u)
		if err != nil {
			return nil, err
		}
		if err := a.ensureIndexes(ctx, client); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return client, nil
	}
	a.conn = conn
	return a
}

// Conn exposes the connection manager for observability and tests.
func (a *Adapter) Conn() *Conn {
	return a.conn
}

func (a *Adapter) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	client, err := a.conn.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(a.dbName).Collection(name), nil
}

// fail wraps an operation error and downgrades connection state so the next
// logical call retries with a fresh handle. Context cancellation is the
// caller abandoning the request, not a poisoned connection.
func (a *Adapter) fail(op string, err error) error {
	if !errors.Is(err, context.Canceled) && !errors.Is(err, storage.ErrUnavailable) {
		a.conn.Reset()
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (a *Adapter) ensureIndexes(ctx context.Context, client *mongo.Client) error {
	db := client.Database(a.dbName)

	invoiceIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "invoiceNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "invoiceDate", Value: 1}}},
		{Keys: bson.D{{Key: "folder", Value: 1}}},
		{Keys: bson.D{{Key: "client", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(colInvoices).Indexes().CreateMany(ctx, invoiceIndexes); err != nil {
		return fmt.Errorf("create invoice indexes: %w", err)
	}

	clientIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(colClients).Indexes().CreateMany(ctx, clientIndexes); err != nil {
		return fmt.Errorf("create client indexes: %w", err)
	}

	// Folder names are unique case-insensitively; strength 2 ignores case.
	folderIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}),
		},
	}
	if _, err := db.Collection(colFolders).Indexes().CreateMany(ctx, folderIndexes); err != nil {
		return fmt.Errorf("create folder indexes: %w", err)
	}

	slog.Info("[Mongo] Indexes ensured", "database", a.dbName)
	return nil
}

// Ping verifies store connectivity for health checks. It does not trigger a
// dial when disconnected; an unhealthy report is cheaper than a blocking
// connect inside the health endpoint.
func (a *Adapter) Ping(ctx context.Context) error {
	a.conn.mu.Lock()
	client := a.conn.client
	a.conn.mu.Unlock()
	if client == nil {
		return storage.ErrUnavailable
	}
	return client.Ping(ctx, nil)
}

// Close tears down the connection.
func (a *Adapter) Close(ctx context.Context) error {
	return a.conn.Close(ctx)
}
