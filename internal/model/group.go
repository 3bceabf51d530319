package model

import "time"

// Group is a farmer group (kelompok ternak). MemberIDs reference user
// documents; OfficerID is the extension officer assigned to the group.
type Group struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Village   string    `json:"village,omitempty" bson:"village,omitempty"`
	OfficerID string    `json:"officerId,omitempty" bson:"officerId,omitempty"`
	MemberIDs []string  `json:"memberIds,omitempty" bson:"memberIds,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
