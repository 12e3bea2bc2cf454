package seed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Sink is the single persistence primitive the writer needs: a bulk insert
// returning the ids assigned to each document, in submission order.
type Sink interface {
	InsertMany(ctx context.Context, docs []interface{}) ([]primitive.ObjectID, error)
}

// InsertBatches splits docs into groups of at most batchSize and submits
// each group as one bulk insert, bounding per-call payload size. The
// returned ids are the concatenation of every batch's ids. The first
// failing batch aborts; earlier batches stay committed.
func InsertBatches(ctx context.Context, sink Sink, docs []interface{}, batchSize int) ([]primitive.ObjectID, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for start := 0; start < len(docs); start += batchSize {
		end := start + batchSize
		if end > len(docs) {
			end = len(docs)
		}

		batchIDs, err := sink.InsertMany(ctx, docs[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to insert batch starting at %d: %w", start, err)
		}
		ids = append(ids, batchIDs...)
	}
	return ids, nil
}

// Docs boxes a typed slice for submission to a Sink.
func Docs[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}

// CollectionSink adapts a mongo collection to Sink.
type CollectionSink struct {
	Coll *mongo.Collection
}

func (s CollectionSink) InsertMany(ctx context.Context, docs []interface{}) ([]primitive.ObjectID, error) {
	res, err := s.Coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(res.InsertedIDs))
	for _, raw := range res.InsertedIDs {
		id, ok := raw.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted id type %T", raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
