package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/royhasan/StudyMate-Server/src/models"
	"github.com/royhasan/StudyMate-Server/src/storage"
)

// topPartnerLimit caps the top-rated listing.
const topPartnerLimit = 3

// PartnerStore is the storage surface the partner directory depends on.
type PartnerStore interface {
	Insert(ctx context.Context, partner *models.Partner) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error)
	Find(ctx context.Context, query storage.PartnerQuery) ([]models.Partner, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error)
	IncrementPartnerCount(ctx context.Context, id primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	TopRated(ctx context.Context, limit int64) ([]models.Partner, error)
}

type PartnerService struct {
	store  PartnerStore
	logger *zap.Logger
}

func NewPartnerService(store PartnerStore, logger *zap.Logger) *PartnerService {
	return &PartnerService{store: store, logger: logger}
}

// Create validates and persists a partner profile. Rating and
// partnerCount default to 0 when the caller omits them.
func (s *PartnerService) Create(ctx context.Context, partner models.Partner) (*models.InsertResult, error) {
	if partner.Name == "" || partner.Email == "" {
		return nil, NewValidationError("Name and email are required!")
	}

	partner.Id = primitive.NilObjectID

	id, err := s.store.Insert(ctx, &partner)
	if err != nil {
		return nil, err
	}

	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// List returns every matching partner; search narrows by subject,
// sort orders by experience level.
func (s *PartnerService) List(ctx context.Context, search, sort string) ([]models.Partner, error) {
	partners, err := s.store.Find(ctx, storage.PartnerQuery{
		SubjectSearch:  search,
		SortExperience: sort,
	})
	if err != nil {
		return nil, err
	}
	if partners == nil {
		partners = []models.Partner{}
	}
	return partners, nil
}

func (s *PartnerService) Get(ctx context.Context, id string) (*models.Partner, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("Invalid ID format")
	}

	partner, err := s.store.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, ErrNotFound
	}
	return partner, nil
}

// Update writes only the fields present in the patch.
func (s *PartnerService) Update(ctx context.Context, id string, patch models.PartnerPatch) (*models.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("Invalid ID format")
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, NewValidationError("No fields to update")
	}

	return s.store.UpdateFields(ctx, oid, fields)
}

// Delete removes the partner only; its connection records stay behind as
// orphaned weak references.
func (s *PartnerService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("Invalid ID format")
	}

	deleted, err := s.store.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}

	return &models.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

// TopRated returns at most 3 partners ordered by rating descending.
func (s *PartnerService) TopRated(ctx context.Context) ([]models.Partner, error) {
	partners, err := s.store.TopRated(ctx, topPartnerLimit)
	if err != nil {
		return nil, err
	}
	if partners == nil {
		partners = []models.Partner{}
	}
	return partners, nil
}
