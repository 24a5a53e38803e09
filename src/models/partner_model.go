package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Partner struct {
	Id               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Email            string             `json:"email" bson:"email"`
	Subject          string             `json:"subject,omitempty" bson:"subject,omitempty"`
	StudyMode        string             `json:"studyMode,omitempty" bson:"studyMode,omitempty"`
	AvailabilityTime string             `json:"availabilityTime,omitempty" bson:"availabilityTime,omitempty"`
	Location         string             `json:"location,omitempty" bson:"location,omitempty"`
	ExperienceLevel  string             `json:"experienceLevel,omitempty" bson:"experienceLevel,omitempty"`
	Rating           float64            `json:"rating" bson:"rating"`
	PartnerCount     int64              `json:"partnerCount" bson:"partnerCount"`
}

// PartnerPatch carries a partial update; only fields present in the
// request body are written.
type PartnerPatch struct {
	Name             *string  `json:"name"`
	Subject          *string  `json:"subject"`
	StudyMode        *string  `json:"studyMode"`
	AvailabilityTime *string  `json:"availabilityTime"`
	Location         *string  `json:"location"`
	ExperienceLevel  *string  `json:"experienceLevel"`
	Rating           *float64 `json:"rating"`
}

// Fields returns the $set document for the keys the caller supplied.
func (p PartnerPatch) Fields() bson.M {
	fields := bson.M{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Subject != nil {
		fields["subject"] = *p.Subject
	}
	if p.StudyMode != nil {
		fields["studyMode"] = *p.StudyMode
	}
	if p.AvailabilityTime != nil {
		fields["availabilityTime"] = *p.AvailabilityTime
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.ExperienceLevel != nil {
		fields["experienceLevel"] = *p.ExperienceLevel
	}
	if p.Rating != nil {
		fields["rating"] = *p.Rating
	}
	return fields
}
