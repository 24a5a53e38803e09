package services

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/royhasan/StudyMate-Server/src/models"
	"github.com/royhasan/StudyMate-Server/src/storage"
)

// Map-backed store fakes mirroring the MongoDB semantics the services
// rely on: unique pair index, matched/modified counts, absent is nil.

type fakePartnerStore struct {
	partners      map[primitive.ObjectID]*models.Partner
	findByIDCalls int
	incCalls      int
}

func newFakePartnerStore() *fakePartnerStore {
	return &fakePartnerStore{partners: make(map[primitive.ObjectID]*models.Partner)}
}

func (f *fakePartnerStore) Insert(_ context.Context, partner *models.Partner) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *partner
	stored.Id = id
	f.partners[id] = &stored
	return id, nil
}

func (f *fakePartnerStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Partner, error) {
	f.findByIDCalls++
	partner, ok := f.partners[id]
	if !ok {
		return nil, nil
	}
	copied := *partner
	return &copied, nil
}

func (f *fakePartnerStore) Find(_ context.Context, query storage.PartnerQuery) ([]models.Partner, error) {
	var result []models.Partner
	for _, partner := range f.partners {
		if query.SubjectSearch != "" &&
			!strings.Contains(strings.ToLower(partner.Subject), strings.ToLower(query.SubjectSearch)) {
			continue
		}
		result = append(result, *partner)
	}

	switch query.SortExperience {
	case "asc":
		sort.Slice(result, func(i, j int) bool {
			return result[i].ExperienceLevel < result[j].ExperienceLevel
		})
	case "desc":
		sort.Slice(result, func(i, j int) bool {
			return result[i].ExperienceLevel > result[j].ExperienceLevel
		})
	}
	return result, nil
}

func (f *fakePartnerStore) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	partner, ok := f.partners[id]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}

	modified := int64(0)
	apply := func(dst *string, key string) {
		if v, ok := fields[key]; ok && *dst != v.(string) {
			*dst = v.(string)
			modified = 1
		}
	}
	apply(&partner.Name, "name")
	apply(&partner.Subject, "subject")
	apply(&partner.StudyMode, "studyMode")
	apply(&partner.AvailabilityTime, "availabilityTime")
	apply(&partner.Location, "location")
	apply(&partner.ExperienceLevel, "experienceLevel")
	if v, ok := fields["rating"]; ok && partner.Rating != v.(float64) {
		partner.Rating = v.(float64)
		modified = 1
	}

	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (f *fakePartnerStore) IncrementPartnerCount(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.incCalls++
	partner, ok := f.partners[id]
	if !ok {
		return 0, nil
	}
	partner.PartnerCount++
	return 1, nil
}

func (f *fakePartnerStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.partners[id]; !ok {
		return 0, nil
	}
	delete(f.partners, id)
	return 1, nil
}

func (f *fakePartnerStore) TopRated(_ context.Context, limit int64) ([]models.Partner, error) {
	var result []models.Partner
	for _, partner := range f.partners {
		result = append(result, *partner)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Rating > result[j].Rating
	})
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakeConnectionStore struct {
	connections map[primitive.ObjectID]*models.Connection
	// hidePair makes FindByPair miss so the unique-index path is the
	// only duplicate guard, as in a lost race.
	hidePair bool
}

func newFakeConnectionStore() *fakeConnectionStore {
	return &fakeConnectionStore{connections: make(map[primitive.ObjectID]*models.Connection)}
}

func (f *fakeConnectionStore) pairExists(partnerID primitive.ObjectID, senderEmail string) bool {
	for _, conn := range f.connections {
		if conn.PartnerID == partnerID && conn.SenderEmail == senderEmail {
			return true
		}
	}
	return false
}

func (f *fakeConnectionStore) Insert(_ context.Context, conn *models.Connection) (primitive.ObjectID, error) {
	if f.pairExists(conn.PartnerID, conn.SenderEmail) {
		return primitive.NilObjectID, storage.ErrDuplicateKey
	}
	id := primitive.NewObjectID()
	stored := *conn
	stored.Id = id
	f.connections[id] = &stored
	return id, nil
}

func (f *fakeConnectionStore) FindByPair(_ context.Context, partnerID primitive.ObjectID, senderEmail string) (*models.Connection, error) {
	if f.hidePair {
		return nil, nil
	}
	for _, conn := range f.connections {
		if conn.PartnerID == partnerID && conn.SenderEmail == senderEmail {
			copied := *conn
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeConnectionStore) Find(_ context.Context, senderEmail string) ([]models.Connection, error) {
	var result []models.Connection
	for _, conn := range f.connections {
		if senderEmail != "" && conn.SenderEmail != senderEmail {
			continue
		}
		result = append(result, *conn)
	}
	return result, nil
}

func (f *fakeConnectionStore) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	conn, ok := f.connections[id]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}

	modified := int64(0)
	apply := func(dst *string, key string) {
		if v, ok := fields[key]; ok && *dst != v.(string) {
			*dst = v.(string)
			modified = 1
		}
	}
	apply(&conn.Name, "name")
	apply(&conn.Subject, "subject")
	apply(&conn.StudyMode, "studyMode")
	apply(&conn.Location, "location")

	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (f *fakeConnectionStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.connections[id]; !ok {
		return 0, nil
	}
	delete(f.connections, id)
	return 1, nil
}
