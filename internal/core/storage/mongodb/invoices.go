package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/fakturo-lab/fakturo/internal/core/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InvoiceAdapter implements storage.InvoiceStore. It shares the parent
// adapter's connection rather than opening a second one.
type InvoiceAdapter struct {
	a *Adapter
}

// Invoices returns the invoice store backed by this adapter.
func (a *Adapter) Invoices() *InvoiceAdapter {
	return &InvoiceAdapter{a: a}
}

// Find returns one page of invoices matching the query, newest first.
func (s *InvoiceAdapter) Find(ctx context.Context, q storage.InvoiceQuery) ([]storage.Invoice, error) {
	filter, err := buildInvoiceFilter(q)
	if err != nil {
		return nil, err
	}

	col, err := s.a.collection(ctx, colInvoices)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit)).
		SetMaxTime(queryMaxTime)

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, s.a.fail("find invoices", err)
	}
	return s.decodeInvoices(ctx, cursor)
}

// Count returns the total number of invoices matching the query.
func (s *InvoiceAdapter) Count(ctx context.Context, q storage.InvoiceQuery) (int64, error) {
	filter, err := buildInvoiceFilter(q)
	if err != nil {
		return 0, err
	}

	col, err := s.a.collection(ctx, colInvoices)
	if err != nil {
		return 0, err
	}

	total, err := col.CountDocuments(ctx, filter, options.Count().SetMaxTime(queryMaxTime))
	if err != nil {
		return 0, s.a.fail("count invoices", err)
	}
	return total, nil
}

// FindByID returns one invoice, storage.ErrInvalidID on a malformed id, or
// storage.ErrNotFound when no document matches.
func (s *InvoiceAdapter) FindByID(ctx context.Context, id string) (*storage.Invoice, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	col, err := s.a.collection(ctx, colInvoices)
	if err != nil {
		return nil, err
	}

	var doc invoiceDoc
	if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, s.a.fail("find invoice by id", err)
	}

	invoice := doc.toDomain()
	return &invoice, nil
}

// Recent returns the latest invoices by creation time.
func (s *InvoiceAdapter) Recent(ctx context.Context, limit int) ([]storage.Invoice, error) {
	col, err := s.a.collection(ctx, colInvoices)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetMaxTime(queryMaxTime)

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, s.a.fail("find recent invoices", err)
	}
	return s.decodeInvoices(ctx, cursor)
}

// Search runs the bounded quick search, newest first.
func (s *InvoiceAdapter) Search(ctx context.Context, q storage.SearchQuery) ([]storage.Invoice, error) {
	col, err := s.a.collection(ctx, colInvoices)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(q.Limit)).
		SetMaxTime(queryMaxTime)

	cursor, err := col.Find(ctx, buildQuickSearchFilter(q.Term), opts)
	if err != nil {
		return nil, s.a.fail("search invoices", err)
	}
	return s.decodeInvoices(ctx, cursor)
}

// StatsFacets runs the seven-branch dashboard aggregation in one pass.
func (s *InvoiceAdapter) StatsFacets(ctx context.Context, period storage.StatsPeriod) (*storage.StatsFacets, error) {
	col, err := s.a.collection(ctx, colInvoices)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Aggregate(ctx, statsPipeline(period), options.Aggregate().SetMaxTime(queryMaxTime))
	if err != nil {
		return nil, s.a.fail("aggregate stats", err)
	}
	defer cursor.Close(ctx)

	var docs []facetDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, s.a.fail("decode stats", err)
	}
	if len(docs) == 0 {
		// $facet always yields one document; guard anyway.
		return &storage.StatsFacets{}, nil
	}
	return docs[0].toFacets(), nil
}

// MonthlyRevenue groups paid invoices in [from, to) by calendar month.
func (s *InvoiceAdapter) MonthlyRevenue(ctx context.Context, from, to time.Time) ([]storage.MonthBucket, error) {
	col, err := s.a.collection(ctx, colInvoices)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Aggregate(ctx, monthlyRevenuePipeline(from, to), options.Aggregate().SetMaxTime(queryMaxTime))
	if err != nil {
		return nil, s.a.fail("aggregate monthly revenue", err)
	}
	defer cursor.Close(ctx)

	var docs []monthBucketDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, s.a.fail("decode monthly revenue", err)
	}

	buckets := make([]storage.MonthBucket, 0, len(docs))
	for _, doc := range docs {
		buckets = append(buckets, doc.toDomain())
	}
	return buckets, nil
}

// CountByStatus counts invoices per status.
func (s *InvoiceAdapter) CountByStatus(ctx context.Context) (map[storage.InvoiceStatus]int64, error) {
	col, err := s.a.collection(ctx, colInvoices)
	if err != nil {
		return nil, err
	}

	cursor, err := col.Aggregate(ctx, statusCountPipeline(), options.Aggregate().SetMaxTime(queryMaxTime))
	if err != nil {
		return nil, s.a.fail("aggregate status counts", err)
	}
	defer cursor.Close(ctx)

	var docs []statusCountDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, s.a.fail("decode status counts", err)
	}

	counts := make(map[storage.InvoiceStatus]int64, len(docs))
	for _, doc := range docs {
		counts[storage.InvoiceStatus(doc.Status)] = doc.Count
	}
	return counts, nil
}

func (s *InvoiceAdapter) decodeInvoices(ctx context.Context, cursor *mongo.Cursor) ([]storage.Invoice, error) {
	defer cursor.Close(ctx)

	var docs []invoiceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, s.a.fail("decode invoices", err)
	}

	invoices := make([]storage.Invoice, 0, len(docs))
	for _, doc := range docs {
		invoices = append(invoices, doc.toDomain())
	}
	return invoices, nil
}
