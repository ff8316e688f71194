package mongodb

import (
	"context"
	"errors"

	"github.com/fakturo-lab/fakturo/internal/core/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClientAdapter implements storage.ClientStore over the shared connection.
type ClientAdapter struct {
	a *Adapter
}

// Clients returns the client store backed by this adapter.
func (a *Adapter) Clients() *ClientAdapter {
	return &ClientAdapter{a: a}
}

// FindWithInvoiceCounts returns one page of clients, each carrying the
// live-joined number of invoices referencing it.
func (s *ClientAdapter) FindWithInvoiceCounts(ctx context.Context, q storage.ClientQuery) ([]storage.ClientWithInvoiceCount, error) {
	col, err := s.a.collection(ctx, colClients)
	if err != nil {
		return nil, err
	}

	pipeline := clientsWithCountsPipeline(buildClientFilter(q.Search), q.Skip(), int64(q.Limit))
	cursor, err := col.Aggregate(ctx, pipeline, options.Aggregate().SetMaxTime(queryMaxTime))
	if err != nil {
		return nil, s.a.fail("aggregate clients", err)
	}
	defer cursor.Close(ctx)

	var docs []clientWithCountDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, s.a.fail("decode clients", err)
	}

	clients := make([]storage.ClientWithInvoiceCount, 0, len(docs))
	for _, doc := range docs {
		clients = append(clients, doc.toDomain())
	}
	return clients, nil
}

// Count returns the total number of clients matching the query.
func (s *ClientAdapter) Count(ctx context.Context, q storage.ClientQuery) (int64, error) {
	col, err := s.a.collection(ctx, colClients)
	if err != nil {
		return 0, err
	}

	total, err := col.CountDocuments(ctx, buildClientFilter(q.Search), options.Count().SetMaxTime(queryMaxTime))
	if err != nil {
		return 0, s.a.fail("count clients", err)
	}
	return total, nil
}

// FindByID returns one client, storage.ErrInvalidID on a malformed id, or
// storage.ErrNotFound when no document matches.
func (s *ClientAdapter) FindByID(ctx context.Context, id string) (*storage.Client, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	col, err := s.a.collection(ctx, colClients)
	if err != nil {
		return nil, err
	}

	var doc clientDoc
	if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, s.a.fail("find client by id", err)
	}

	client := doc.toDomain()
	return &client, nil
}

// FindAll returns a minimal projection of every client, for pickers.
func (s *ClientAdapter) FindAll(ctx context.Context) ([]storage.Client, error) {
	col, err := s.a.collection(ctx, colClients)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetProjection(bson.M{"name": 1, "email": 1, "address": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetMaxTime(queryMaxTime)

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, s.a.fail("find all clients", err)
	}
	defer cursor.Close(ctx)

	var docs []clientDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, s.a.fail("decode all clients", err)
	}

	clients := make([]storage.Client, 0, len(docs))
	for _, doc := range docs {
		clients = append(clients, doc.toDomain())
	}
	return clients, nil
}
