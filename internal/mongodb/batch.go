package mongodb

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultBatchLimit = 500

// BatchLimit returns the maximum number of write operations accepted in one
// CommitBatch call. Overridable via MONGODB_BATCH_LIMIT.
func BatchLimit() int {
	if raw := os.Getenv("MONGODB_BATCH_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return defaultBatchLimit
}

// WriteOp is a single planned document mutation. Every op built here is
// replay-safe: $set merges named fields, $addToSet adds values only when
// absent.
type WriteOp struct {
	Collection string
	Id         string
	update     bson.M
}

// MergeSetOp merges the given fields onto the document, leaving all other
// fields untouched.
func MergeSetOp(collection, id string, fields bson.M) WriteOp {
	return WriteOp{
		Collection: collection,
		Id:         id,
		update:     bson.M{"$set": fields},
	}
}

// SetUnionOp appends values to an array field, skipping values already
// present.
func SetUnionOp(collection, id, field string, values []string) WriteOp {
	return WriteOp{
		Collection: collection,
		Id:         id,
		update: bson.M{
			"$addToSet": bson.M{field: bson.M{"$each": values}},
		},
	}
}

// WithSetUnion adds a set-union on another array field to the same op, so
// merging scalars and growing sets on one document stays a single mutation.
func (op WriteOp) WithSetUnion(field string, values []string) WriteOp {
	addToSet, ok := op.update["$addToSet"].(bson.M)
	if !ok {
		addToSet = bson.M{}
		op.update["$addToSet"] = addToSet
	}
	addToSet[field] = bson.M{"$each": values}
	return op
}

func (op WriteOp) model() mongo.WriteModel {
	return mongo.NewUpdateOneModel().
		SetFilter(bson.M{"_id": op.Id}).
		SetUpdate(op.update)
}

// CommitBatch applies the ops in order. Consecutive ops against the same
// collection are submitted as one ordered bulk write; a collection switch
// flushes the run before the next op is attempted.
func (db *DB) CommitBatch(ctx context.Context, ops []WriteOp) error {
	if len(ops) == 0 {
		return nil
	}
	if len(ops) > BatchLimit() {
		return fmt.Errorf("batch of %d ops exceeds the store limit of %d", len(ops), BatchLimit())
	}

	opts := options.BulkWrite().SetOrdered(true)

	start := 0
	for i := 1; i <= len(ops); i++ {
		if i < len(ops) && ops[i].Collection == ops[start].Collection {
			continue
		}

		models := make([]mongo.WriteModel, 0, i-start)
		for _, op := range ops[start:i] {
			models = append(models, op.model())
		}

		coll := db.Collection(ops[start].Collection)
		if _, err := coll.BulkWrite(ctx, models, opts); err != nil {
			return fmt.Errorf("bulk write on %s: %w", ops[start].Collection, err)
		}
		start = i
	}

	return nil
}
