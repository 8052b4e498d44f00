package mongodb

import (
	"context"
	"errors"
	"fmt"

	"wordlearning/internal/domain"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// WordRepo implements repository.WordRepository on a MongoDB collection
type WordRepo struct {
	coll *mongo.Collection
}

// NewWordRepo creates a new word repository
func NewWordRepo(coll *mongo.Collection) *WordRepo {
	return &WordRepo{coll: coll}
}

// ListWords returns every document in natural order
func (r *WordRepo) ListWords(ctx context.Context) ([]domain.Word, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return lo.Map(docs, func(doc bson.M, _ int) domain.Word {
		return fromDocument(doc)
	}), nil
}

// GetWord returns the word with the given id
func (r *WordRepo) GetWord(ctx context.Context, id string) (*domain.Word, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidWordID
	}

	var doc bson.M
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}

	w := fromDocument(doc)
	return &w, nil
}

// InsertWord stores a new word and returns it with its assigned id
func (r *WordRepo) InsertWord(ctx context.Context, word domain.Word) (*domain.Word, error) {
	res, err := r.coll.InsertOne(ctx, toDocument(word))
	if err != nil {
		return nil, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	word.ID = oid.Hex()
	return &word, nil
}

// ReplaceWord overwrites every field of an existing word except its id.
// It never inserts.
func (r *WordRepo) ReplaceWord(ctx context.Context, id string, word domain.Word) (*domain.Word, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidWordID
	}

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var doc bson.M
	err = r.coll.FindOneAndReplace(ctx, bson.M{"_id": oid}, toDocument(word), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}

	w := fromDocument(doc)
	return &w, nil
}

// DeleteWord removes a word and reports how many documents went away
func (r *WordRepo) DeleteWord(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidWordID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Ping checks the server is reachable
func (r *WordRepo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

// toDocument never carries an _id: the server assigns it on insert and keeps it on replace
func toDocument(w domain.Word) bson.M {
	return bson.M(w.Fields())
}

func fromDocument(doc bson.M) domain.Word {
	fields := make(map[string]any, len(doc))
	for k, v := range doc {
		fields[k] = v
	}

	switch id := doc[domain.FieldID].(type) {
	case primitive.ObjectID:
		fields[domain.FieldID] = id.Hex()
	case string:
	default:
		delete(fields, domain.FieldID)
	}

	return domain.WordFromFields(fields)
}
