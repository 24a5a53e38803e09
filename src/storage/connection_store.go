package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/royhasan/StudyMate-Server/src/models"
)

// ErrDuplicateKey reports a unique-index conflict on insert.
var ErrDuplicateKey = errors.New("duplicate key")

type ConnectionStore struct {
	coll *mongo.Collection
}

func NewConnectionStore(db *mongo.Database) *ConnectionStore {
	return &ConnectionStore{coll: db.Collection("Connections")}
}

// EnsureIndexes creates the unique (partnerId, senderEmail) index so the
// insert itself is the atomic duplicate arbiter.
func (s *ConnectionStore) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "partnerId", Value: 1},
			{Key: "senderEmail", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := s.coll.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("create connection indexes: %w", err)
	}
	return nil
}

func (s *ConnectionStore) Insert(ctx context.Context, conn *models.Connection) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, conn)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateKey
		}
		return primitive.NilObjectID, fmt.Errorf("insert connection: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// FindByPair returns nil, nil when no request exists for the pair.
func (s *ConnectionStore) FindByPair(ctx context.Context, partnerID primitive.ObjectID, senderEmail string) (*models.Connection, error) {
	filter := bson.M{
		"partnerId":   partnerID,
		"senderEmail": senderEmail,
	}

	var conn models.Connection
	err := s.coll.FindOne(ctx, filter).Decode(&conn)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find connection by pair: %w", err)
	}
	return &conn, nil
}

func (s *ConnectionStore) Find(ctx context.Context, senderEmail string) ([]models.Connection, error) {
	filter := bson.M{}
	if senderEmail != "" {
		filter["senderEmail"] = senderEmail
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find connections: %w", err)
	}
	defer cursor.Close(ctx)

	var connections []models.Connection
	if err := cursor.All(ctx, &connections); err != nil {
		return nil, fmt.Errorf("decode connections: %w", err)
	}
	return connections, nil
}

func (s *ConnectionStore) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("update connection: %w", err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *ConnectionStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete connection: %w", err)
	}
	return result.DeletedCount, nil
}
