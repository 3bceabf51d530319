package model

import "time"

// Livestock is one farmer's livestock record within a group.
type Livestock struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	OwnerID   string    `json:"ownerId" bson:"ownerId"`
	GroupID   string    `json:"groupId,omitempty" bson:"groupId,omitempty"`
	Kind      string    `json:"kind" bson:"kind"` // sapi, kambing, domba, ...
	Count     int       `json:"count" bson:"count"`
	Condition string    `json:"condition,omitempty" bson:"condition,omitempty"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
