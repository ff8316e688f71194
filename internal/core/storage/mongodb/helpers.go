package mongodb

import (
	"time"

	"github.com/fakturo-lab/fakturo/internal/core/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documents are decoded into driver-typed structs first (ObjectIDs stay
// ObjectIDs) and converted to domain types afterwards, so the bson layer
// never leaks past this package.

type invoiceDoc struct {
	ID            primitive.ObjectID `bson:"_id"`
	InvoiceNumber string             `bson:"invoiceNumber"`
	Client        primitive.ObjectID `bson:"client,omitempty"`
	ClientName    string             `bson:"clientName"`
	ClientEmail   string             `bson:"clientEmail"`
	Folder        primitive.ObjectID `bson:"folder,omitempty"`
	Status        string             `bson:"status"`
	Total         float64            `bson:"total"`
	InvoiceDate   time.Time          `bson:"invoiceDate"`
	DueDate       time.Time          `bson:"dueDate"`
	PaidAt        *time.Time         `bson:"paidAt,omitempty"`
	LineItems     []storage.LineItem `bson:"lineItems,omitempty"`
	Notes         string             `bson:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d invoiceDoc) toDomain() storage.Invoice {
	return storage.Invoice{
		ID:            d.ID.Hex(),
		InvoiceNumber: d.InvoiceNumber,
		ClientID:      hexOrEmpty(d.Client),
		ClientName:    d.ClientName,
		ClientEmail:   d.ClientEmail,
		FolderID:      hexOrEmpty(d.Folder),
		Status:        storage.InvoiceStatus(d.Status),
		Total:         d.Total,
		InvoiceDate:   d.InvoiceDate,
		DueDate:       d.DueDate,
		PaidAt:        d.PaidAt,
		LineItems:     d.LineItems,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type clientDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Address   string             `bson:"address,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d clientDoc) toDomain() storage.Client {
	return storage.Client{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Address:   d.Address,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type clientWithCountDoc struct {
	clientDoc    `bson:",inline"`
	InvoiceCount int64 `bson:"invoiceCount"`
}

func (d clientWithCountDoc) toDomain() storage.ClientWithInvoiceCount {
	return storage.ClientWithInvoiceCount{
		Client:       d.clientDoc.toDomain(),
		InvoiceCount: d.InvoiceCount,
	}
}

type folderDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d folderDoc) toDomain() storage.Folder {
	return storage.Folder{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

// facetDoc decodes the $facet stats result. Every branch is an array;
// an empty array means no documents matched, which reads as zero.
type facetDoc struct {
	TotalRevenue    []revenueRow `bson:"totalRevenue"`
	CurrentRevenue  []revenueRow `bson:"currentRevenue"`
	PreviousRevenue []revenueRow `bson:"previousRevenue"`
	TotalCount      []countRow   `bson:"totalCount"`
	CurrentCount    []countRow   `bson:"currentCount"`
	PreviousCount   []countRow   `bson:"previousCount"`
	CurrentPaid     []countRow   `bson:"currentPaid"`
}

type revenueRow struct {
	Total float64 `bson:"total"`
}

type countRow struct {
	Count int64 `bson:"count"`
}

func firstRevenue(rows []revenueRow) float64 {
	if len(rows) == 0 {
		return 0
	}
	return rows[0].Total
}

func firstCount(rows []countRow) int64 {
	if len(rows) == 0 {
		return 0
	}
	return rows[0].Count
}

func (d facetDoc) toFacets() *storage.StatsFacets {
	return &storage.StatsFacets{
		TotalRevenue:     firstRevenue(d.TotalRevenue),
		CurrentRevenue:   firstRevenue(d.CurrentRevenue),
		PreviousRevenue:  firstRevenue(d.PreviousRevenue),
		TotalInvoices:    firstCount(d.TotalCount),
		CurrentInvoices:  firstCount(d.CurrentCount),
		PreviousInvoices: firstCount(d.PreviousCount),
		CurrentPaid:      firstCount(d.CurrentPaid),
	}
}

type monthBucketDoc struct {
	ID struct {
		Year  int `bson:"year"`
		Month int `bson:"month"`
	} `bson:"_id"`
	Revenue float64 `bson:"revenue"`
	Count   int64   `bson:"count"`
}

func (d monthBucketDoc) toDomain() storage.MonthBucket {
	return storage.MonthBucket{
		Year:         d.ID.Year,
		Month:        time.Month(d.ID.Month),
		Revenue:      d.Revenue,
		InvoiceCount: d.Count,
	}
}

type statusCountDoc struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}
