package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Connection struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PartnerID   primitive.ObjectID `json:"partnerId" bson:"partnerId"`
	SenderEmail string             `json:"senderEmail" bson:"senderEmail"`
	Name        string             `json:"name,omitempty" bson:"name,omitempty"`
	Subject     string             `json:"subject,omitempty" bson:"subject,omitempty"`
	StudyMode   string             `json:"studyMode,omitempty" bson:"studyMode,omitempty"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	Message     string             `json:"message" bson:"message"`
	SentAt      time.Time          `json:"sentAt" bson:"sentAt"`
}

// ConnectionInput is the request body for submitting a connection request.
// PartnerID arrives as a hex string and is validated by the service.
type ConnectionInput struct {
	PartnerID   string `json:"partnerId"`
	SenderEmail string `json:"senderEmail"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	StudyMode   string `json:"studyMode"`
	Location    string `json:"location"`
	Message     string `json:"message"`
}

// ConnectionPatch carries the editable subset of a connection record.
type ConnectionPatch struct {
	Name      *string `json:"name"`
	Subject   *string `json:"subject"`
	StudyMode *string `json:"studyMode"`
	Location  *string `json:"location"`
}

func (p ConnectionPatch) Fields() bson.M {
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
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	return fields
}
