package mongodb

// Aggregation pipelines for the reporting read paths. Each dashboard shape is
// computed in one aggregation pass; the stats pipeline fans out into
// independent $facet branches so the collection is scanned once.

import (
	"time"

	"github.com/fakturo-lab/fakturo/internal/core/storage"
	"go.mongodb.org/mongo-driver/bson"
)

// revenueBranch sums the total of matching documents into a single group.
func revenueBranch(match bson.M) []bson.M {
	return []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$total"}}},
	}
}

// countBranch counts matching documents. An empty match counts everything.
func countBranch(match bson.M) []bson.M {
	branch := make([]bson.M, 0, 2)
	if len(match) > 0 {
		branch = append(branch, bson.M{"$match": match})
	}
	return append(branch, bson.M{"$count": "count"})
}

// statsPipeline computes all seven dashboard stat branches in one pass.
// A branch matching no documents yields an empty array, decoded as zero.
func statsPipeline(p storage.StatsPeriod) []bson.M {
	currentRange := bson.M{"$gte": p.CurrentStart, "$lte": p.CurrentEnd}
	previousRange := bson.M{"$gte": p.PrevStart, "$lt": p.CurrentStart}

	return []bson.M{{
		"$facet": bson.M{
			"totalRevenue":    revenueBranch(bson.M{"status": string(storage.StatusPaid)}),
			"currentRevenue":  revenueBranch(bson.M{"status": string(storage.StatusPaid), "invoiceDate": currentRange}),
			"previousRevenue": revenueBranch(bson.M{"status": string(storage.StatusPaid), "invoiceDate": previousRange}),
			"totalCount":      countBranch(nil),
			"currentCount":    countBranch(bson.M{"invoiceDate": currentRange}),
			"previousCount":   countBranch(bson.M{"invoiceDate": previousRange}),
			"currentPaid":     countBranch(bson.M{"status": string(storage.StatusPaid), "invoiceDate": currentRange}),
		},
	}}
}

// monthlyRevenuePipeline groups paid invoices in [from, to) by calendar
// month. Months with no invoices produce no group; the service gap-fills.
func monthlyRevenuePipeline(from, to time.Time) []bson.M {
	return []bson.M{
		{"$match": bson.M{
			"status":      string(storage.StatusPaid),
			"invoiceDate": bson.M{"$gte": from, "$lt": to},
		}},
		{"$group": bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$invoiceDate"},
				"month": bson.M{"$month": "$invoiceDate"},
			},
			"revenue": bson.M{"$sum": "$total"},
			"count":   bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id.year": 1, "_id.month": 1}},
	}
}

// statusCountPipeline counts invoices per status.
func statusCountPipeline() []bson.M {
	return []bson.M{
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}},
	}
}

// clientsWithCountsPipeline pages clients and joins each one's invoice count.
// The invoices array from the lookup is collapsed to its size and dropped so
// the page payload stays small.
func clientsWithCountsPipeline(filter bson.M, skip, limit int64) []bson.M {
	return []bson.M{
		{"$match": filter},
		{"$sort": bson.M{"createdAt": -1}},
		{"$skip": skip},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         colInvoices,
			"localField":   "_id",
			"foreignField": "client",
			"as":           "invoices",
		}},
		{"$addFields": bson.M{"invoiceCount": bson.M{"$size": "$invoices"}}},
		{"$project": bson.M{"invoices": 0}},
	}
}
