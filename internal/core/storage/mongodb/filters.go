package mongodb

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fakturo-lab/fakturo/internal/core/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectIDFromHex validates and parses a document id. A malformed id becomes
// storage.ErrInvalidID before any store round-trip, so driver-level cast
// errors can never surface.
func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	return oid, nil
}

// buildInvoiceFilter translates search and scope parameters into a native
// filter. Scope clauses (folder, status) combine with the search clause using
// AND; the search clause itself is an OR across invoice number (prefix) and
// client name/email (substring), all case-insensitive with regex
// metacharacters escaped.
func buildInvoiceFilter(q storage.InvoiceQuery) (bson.M, error) {
	filter := bson.M{}

	if q.FolderID != "" {
		oid, err := objectIDFromHex(q.FolderID)
		if err != nil {
			return nil, err
		}
		filter["folder"] = oid
	}

	if q.Status != "" {
		if !storage.ValidStatus(q.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", storage.ErrInvalidQuery, q.Status)
		}
		filter["status"] = string(q.Status)
	}

	if search := strings.TrimSpace(q.Search); search != "" {
		escaped := regexp.QuoteMeta(search)
		filter["$or"] = bson.A{
			bson.M{"invoiceNumber": primitive.Regex{Pattern: "^" + escaped, Options: "i"}},
			bson.M{"clientName": primitive.Regex{Pattern: escaped, Options: "i"}},
			bson.M{"clientEmail": primitive.Regex{Pattern: escaped, Options: "i"}},
		}
	}

	return filter, nil
}

// buildClientFilter matches clients by name or email substring. An empty
// search matches all documents.
func buildClientFilter(search string) bson.M {
	search = strings.TrimSpace(search)
	if search == "" {
		return bson.M{}
	}
	escaped := regexp.QuoteMeta(search)
	return bson.M{"$or": bson.A{
		bson.M{"name": primitive.Regex{Pattern: escaped, Options: "i"}},
		bson.M{"email": primitive.Regex{Pattern: escaped, Options: "i"}},
	}}
}

// buildQuickSearchFilter matches the quick-search term against the client
// name by prefix (index-friendly) and the invoice number by substring.
func buildQuickSearchFilter(term string) bson.M {
	escaped := regexp.QuoteMeta(strings.TrimSpace(term))
	return bson.M{"$or": bson.A{
		bson.M{"clientName": primitive.Regex{Pattern: "^" + escaped, Options: "i"}},
		bson.M{"invoiceNumber": primitive.Regex{Pattern: escaped, Options: "i"}},
	}}
}
