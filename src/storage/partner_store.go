package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/royhasan/StudyMate-Server/src/models"
)

// PartnerQuery narrows and orders a partner listing.
type PartnerQuery struct {
	// SubjectSearch is matched as a case-insensitive regex against subject.
	SubjectSearch string
	// SortExperience is "asc" or "desc" over experienceLevel; anything
	// else leaves the listing unordered.
	SortExperience string
}

type PartnerStore struct {
	coll *mongo.Collection
}

func NewPartnerStore(db *mongo.Database) *PartnerStore {
	return &PartnerStore{coll: db.Collection("Partners")}
}

func (s *PartnerStore) Insert(ctx context.Context, partner *models.Partner) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, partner)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert partner: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// FindByID returns nil, nil when no partner matches.
func (s *PartnerStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error) {
	var partner models.Partner
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&partner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find partner by id: %w", err)
	}
	return &partner, nil
}

func (s *PartnerStore) Find(ctx context.Context, query PartnerQuery) ([]models.Partner, error) {
	filter := bson.M{}
	if query.SubjectSearch != "" {
		filter["subject"] = bson.M{"$regex": query.SubjectSearch, "$options": "i"}
	}

	opts := options.Find()
	switch query.SortExperience {
	case "asc":
		opts.SetSort(bson.D{{Key: "experienceLevel", Value: 1}})
	case "desc":
		opts.SetSort(bson.D{{Key: "experienceLevel", Value: -1}})
	}

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find partners: %w", err)
	}
	defer cursor.Close(ctx)

	var partners []models.Partner
	if err := cursor.All(ctx, &partners); err != nil {
		return nil, fmt.Errorf("decode partners: %w", err)
	}
	return partners, nil
}

func (s *PartnerStore) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("update partner: %w", err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// IncrementPartnerCount bumps the denormalized counter and reports how
// many documents matched; 0 means the partner id references nothing.
func (s *PartnerStore) IncrementPartnerCount(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"partnerCount": 1}})
	if err != nil {
		return 0, fmt.Errorf("increment partner count: %w", err)
	}
	return result.MatchedCount, nil
}

func (s *PartnerStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete partner: %w", err)
	}
	return result.DeletedCount, nil
}

func (s *PartnerStore) TopRated(ctx context.Context, limit int64) ([]models.Partner, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find top partners: %w", err)
	}
	defer cursor.Close(ctx)

	var partners []models.Partner
	if err := cursor.All(ctx, &partners); err != nil {
		return nil, fmt.Errorf("decode top partners: %w", err)
	}
	return partners, nil
}
