// Package mongostore implements docstore on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/task-manager/pkg/docstore"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect creates a client for uri bound to the named database.
// The client uses the Stable API v1 in strict mode. Connect does not block
// on server selection; call Ping to verify the deployment is reachable.
func Connect(ctx context.Context, uri, database string) (docstore.Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	return &store{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (s *store) Collection(name string) docstore.Collection {
	return &collection{coll: s.db.Collection(name)}
}

func (s *store) Ping(ctx context.Context) error {
	return s.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (s *store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type collection struct {
	coll *mongo.Collection
}

func (c *collection) Find(ctx context.Context, filter docstore.Filter) ([]docstore.Document, error) {
	cur, err := c.coll.Find(ctx, toBSON(filter))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.coll.Name(), err)
	}

	docs := make([]docstore.Document, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.coll.Name(), err)
	}
	return docs, nil
}

func (c *collection) FindOne(ctx context.Context, filter docstore.Filter) (docstore.Document, error) {
	var doc docstore.Document
	if err := c.coll.FindOne(ctx, toBSON(filter)).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc, nil
}

func (c *collection) InsertOne(ctx context.Context, doc docstore.Document) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, docstore.ErrDuplicateKey
		}
		return primitive.NilObjectID, fmt.Errorf("insert %s: %w", c.coll.Name(), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert %s: unexpected id type %T", c.coll.Name(), res.InsertedID)
	}
	return id, nil
}

func (c *collection) UpdateOne(ctx context.Context, filter docstore.Filter, set docstore.Document) (docstore.UpdateResult, error) {
	res, err := c.coll.UpdateOne(ctx, toBSON(filter), bson.M{"$set": bson.M(set)})
	if err != nil {
		return docstore.UpdateResult{}, fmt.Errorf("update %s: %w", c.coll.Name(), err)
	}
	return docstore.UpdateResult{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}, nil
}

func (c *collection) FindOneAndUpdate(ctx context.Context, filter docstore.Filter, set docstore.Document) (docstore.Document, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc docstore.Document
	err := c.coll.
		FindOneAndUpdate(ctx, toBSON(filter), bson.M{"$set": bson.M(set)}, opts).
		Decode(&doc)
	if err != nil {
		return nil, translate(err)
	}
	return doc, nil
}

func (c *collection) DeleteOne(ctx context.Context, filter docstore.Filter) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", c.coll.Name(), err)
	}
	return res.DeletedCount, nil
}

func toBSON(filter docstore.Filter) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return docstore.ErrNoDocuments
	}
	return err
}
