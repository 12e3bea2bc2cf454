package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSink struct {
	batches [][]interface{}
	failAt  int // 1-based call index that returns an error, 0 = never
}

func (f *fakeSink) InsertMany(_ context.Context, docs []interface{}) ([]primitive.ObjectID, error) {
	f.batches = append(f.batches, docs)
	if f.failAt > 0 && len(f.batches) == f.failAt {
		return nil, errors.New("insert failed")
	}
	ids := make([]primitive.ObjectID, len(docs))
	for i := range ids {
		ids[i] = primitive.NewObjectID()
	}
	return ids, nil
}

func docsOfSize(n int) []interface{} {
	docs := make([]int, n)
	for i := range docs {
		docs[i] = i
	}
	return Docs(docs)
}

func TestInsertBatchesChunking(t *testing.T) {
	sink := &fakeSink{}

	ids, err := InsertBatches(context.Background(), sink, docsOfSize(23), 10)
	require.NoError(t, err)
	require.Len(t, ids, 23)

	require.Len(t, sink.batches, 3, "23 docs at batch size 10 is ceil(23/10) calls")
	require.Len(t, sink.batches[0], 10)
	require.Len(t, sink.batches[1], 10)
	require.Len(t, sink.batches[2], 3)
}

func TestInsertBatchesExactMultiple(t *testing.T) {
	sink := &fakeSink{}

	ids, err := InsertBatches(context.Background(), sink, docsOfSize(20), 10)
	require.NoError(t, err)
	require.Len(t, ids, 20)
	require.Len(t, sink.batches, 2)
}

func TestInsertBatchesSingleBatch(t *testing.T) {
	sink := &fakeSink{}

	ids, err := InsertBatches(context.Background(), sink, docsOfSize(4), 10)
	require.NoError(t, err)
	require.Len(t, ids, 4)
	require.Len(t, sink.batches, 1)
}

func TestInsertBatchesEmpty(t *testing.T) {
	sink := &fakeSink{}

	ids, err := InsertBatches(context.Background(), sink, nil, 10)
	require.NoError(t, err)
	require.Empty(t, ids)
	require.Empty(t, sink.batches)
}

func TestInsertBatchesInvalidSize(t *testing.T) {
	_, err := InsertBatches(context.Background(), &fakeSink{}, docsOfSize(5), 0)
	require.Error(t, err)
}

func TestInsertBatchesStopsOnError(t *testing.T) {
	sink := &fakeSink{failAt: 2}

	_, err := InsertBatches(context.Background(), sink, docsOfSize(25), 10)
	require.Error(t, err)
	require.Len(t, sink.batches, 2, "no further batches after a failure")
}
