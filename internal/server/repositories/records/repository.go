// Package records implements the generic record store: typed JSON documents
// in named collections, written with a single insert and read back with
// field-equality queries.
package records

import (
	"context"
	"encoding/json"
)

// Collection names a record collection. The mapping from record kind to
// collection is this explicit constant set, not derived from type names;
// it is the only place collection names exist.
type Collection string

const (
	CollectionProject         Collection = "project"
	CollectionScorecardMetric Collection = "scorecardmetric"
	CollectionActionPlanItem  Collection = "actionplanitem"
	CollectionTimelineItem    Collection = "timelineitem"
	CollectionTask            Collection = "task"
	CollectionComment         Collection = "comment"
	CollectionDocument        Collection = "document"
)

// Collections returns every known collection in a stable order.
func Collections() []Collection {
	return []Collection{
		CollectionProject,
		CollectionScorecardMetric,
		CollectionActionPlanItem,
		CollectionTimelineItem,
		CollectionTask,
		CollectionComment,
		CollectionDocument,
	}
}

// Record is a stored document together with its store-assigned id.
type Record struct {
	ID   string
	Data json.RawMessage
}

// Repository is the generic insert/query primitive the governance services
// are built on.
type Repository interface {
	// Insert stores data in the collection and returns the assigned id.
	Insert(ctx context.Context, c Collection, data json.RawMessage) (string, error)

	// Query returns the records of the collection whose documents match
	// every field of the equality filter, in insertion order. A nil or
	// empty filter matches everything; limit 0 means no limit.
	Query(ctx context.Context, c Collection, filter map[string]string, limit int) ([]Record, error)
}
