package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/royhasan/StudyMate-Server/src/models"
	"github.com/royhasan/StudyMate-Server/src/storage"
)

// defaultMessage fills in when the sender leaves the message empty.
const defaultMessage = "No message added"

// ConnectionStore is the storage surface the workflow depends on.
type ConnectionStore interface {
	Insert(ctx context.Context, conn *models.Connection) (primitive.ObjectID, error)
	FindByPair(ctx context.Context, partnerID primitive.ObjectID, senderEmail string) (*models.Connection, error)
	Find(ctx context.Context, senderEmail string) ([]models.Connection, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type ConnectionService struct {
	connections ConnectionStore
	partners    PartnerStore
	logger      *zap.Logger
}

func NewConnectionService(connections ConnectionStore, partners PartnerStore, logger *zap.Logger) *ConnectionService {
	return &ConnectionService{
		connections: connections,
		partners:    partners,
		logger:      logger,
	}
}

// Submit records a connection request. At most one request may exist per
// (partnerId, senderEmail) pair: a pre-check rejects the common case and
// the unique index on Connections settles races at insert time. The
// partner counter is incremented only after a successful insert, so it
// counts exactly the accepted requests.
func (s *ConnectionService) Submit(ctx context.Context, input models.ConnectionInput) (*models.InsertResult, error) {
	partnerID, err := primitive.ObjectIDFromHex(input.PartnerID)
	if err != nil {
		return nil, NewValidationError("Invalid partner ID format")
	}
	if input.SenderEmail == "" {
		return nil, NewValidationError("Sender email is required!")
	}

	existing, err := s.connections.FindByPair(ctx, partnerID, input.SenderEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRequest
	}

	message := input.Message
	if message == "" {
		message = defaultMessage
	}

	conn := models.Connection{
		PartnerID:   partnerID,
		SenderEmail: input.SenderEmail,
		Name:        input.Name,
		Subject:     input.Subject,
		StudyMode:   input.StudyMode,
		Location:    input.Location,
		Message:     message,
		SentAt:      time.Now(),
	}

	id, err := s.connections.Insert(ctx, &conn)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			// Lost the race to a concurrent identical request.
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}

	matched, err := s.partners.IncrementPartnerCount(ctx, partnerID)
	if err != nil {
		// The request itself went through; the stale counter is logged,
		// not surfaced to the sender.
		s.logger.Error("failed to increment partner count",
			zap.String("partnerId", input.PartnerID),
			zap.Error(err))
	} else if matched == 0 {
		s.logger.Warn("connection request references unknown partner",
			zap.String("partnerId", input.PartnerID))
	}

	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *ConnectionService) List(ctx context.Context, senderEmail string) ([]models.Connection, error) {
	connections, err := s.connections.Find(ctx, senderEmail)
	if err != nil {
		return nil, err
	}
	if connections == nil {
		connections = []models.Connection{}
	}
	return connections, nil
}

// Update merges the editable fields into the target record. It reports
// whether anything changed; a filter that matches no record is ErrNotFound.
func (s *ConnectionService) Update(ctx context.Context, id string, patch models.ConnectionPatch) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, NewValidationError("Invalid ID format")
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		return false, NewValidationError("No fields to update")
	}

	result, err := s.connections.UpdateFields(ctx, oid, fields)
	if err != nil {
		return false, err
	}
	if result.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return result.ModifiedCount > 0, nil
}

func (s *ConnectionService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("Invalid ID format")
	}

	deleted, err := s.connections.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}

	return &models.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
