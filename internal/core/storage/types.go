package storage

import "time"

// InvoiceStatus is the fixed status vocabulary for invoices.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

// AllStatuses lists every invoice status in reporting order.
// Breakdown reports left-join against this list so that a status with zero
// invoices still appears in the output.
var AllStatuses = []InvoiceStatus{StatusDraft, StatusPending, StatusPaid, StatusOverdue}

// ValidStatus reports whether s is one of the enumerated statuses.
func ValidStatus(s InvoiceStatus) bool {
	switch s {
	case StatusDraft, StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// LineItem is a single invoice line. Amount is quantity * rate, computed at
// write time; the engine reads it as stored.
type LineItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	Rate        float64 `bson:"rate" json:"rate"`
	Amount      float64 `bson:"amount" json:"amount"`
}

// Invoice is the aggregation subject. Total is authoritative as stored; the
// engine never recomputes it from line items.
type Invoice struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	InvoiceNumber string        `bson:"invoiceNumber" json:"invoiceNumber"`
	ClientID      string        `bson:"client,omitempty" json:"clientId,omitempty"`
	ClientName    string        `bson:"clientName" json:"clientName"`
	ClientEmail   string        `bson:"clientEmail" json:"clientEmail"`
	FolderID      string        `bson:"folder,omitempty" json:"folderId,omitempty"`
	Status        InvoiceStatus `bson:"status" json:"status"`
	Total         float64       `bson:"total" json:"total"`
	InvoiceDate   time.Time     `bson:"invoiceDate" json:"invoiceDate"`
	DueDate       time.Time     `bson:"dueDate" json:"dueDate"`
	PaidAt        *time.Time    `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	LineItems     []LineItem    `bson:"lineItems,omitempty" json:"lineItems,omitempty"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Client is referenced by invoices.
type Client struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ClientWithInvoiceCount is a client listing item carrying the live-joined
// number of invoices referencing the client.
type ClientWithInvoiceCount struct {
	Client       `bson:",inline"`
	InvoiceCount int64 `bson:"invoiceCount" json:"invoiceCount"`
}

// Folder groups invoices for scoping.
type Folder struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StatsPeriod holds the four anchor dates for the stats aggregation, derived
// from a reference date at monthly granularity. The previous period is the
// half-open range [PrevStart, CurrentStart); the current period is the closed
// range [CurrentStart, CurrentEnd].
type StatsPeriod struct {
	CurrentStart time.Time
	CurrentEnd   time.Time
	PrevStart    time.Time
}

// StatsPeriodFor derives the stats anchors from a reference date.
func StatsPeriodFor(ref time.Time) StatsPeriod {
	year, month, _ := ref.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	return StatsPeriod{
		CurrentStart: first,
		// Day 0 of the next month is the last day of this month.
		CurrentEnd: time.Date(year, month+1, 0, 23, 59, 59, int(time.Second-time.Nanosecond), ref.Location()),
		PrevStart:  time.Date(year, month-1, 1, 0, 0, 0, 0, ref.Location()),
	}
}

// StatsFacets is the raw result of the multi-branch stats aggregation.
// Absent branches are zero, never an error.
type StatsFacets struct {
	TotalRevenue     float64
	CurrentRevenue   float64
	PreviousRevenue  float64
	TotalInvoices    int64
	CurrentInvoices  int64
	PreviousInvoices int64
	CurrentPaid      int64
}

// MonthBucket is one (year, month) group of paid invoices.
type MonthBucket struct {
	Year         int
	Month        time.Month
	Revenue      float64
	InvoiceCount int64
}
