package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ternakku/internal/model"
)

// GroupRepo handles MongoDB operations for farmer groups
type GroupRepo interface {
	Create(ctx context.Context, group *model.Group) (string, error)
	GetByID(ctx context.Context, id string) (*model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
	Update(ctx context.Context, group *model.Group) error
	Delete(ctx context.Context, id string) error
}

type groupRepo struct {
	collection *mongo.Collection
}

// NewGroupRepo creates a new group repository
func NewGroupRepo(db *mongo.Database) GroupRepo {
	return &groupRepo{
		collection: db.Collection("groups"),
	}
}

func (r *groupRepo) Create(ctx context.Context, group *model.Group) (string, error) {
	if group.ID == "" {
		group.ID = primitive.NewObjectID().Hex()
	}
	group.CreatedAt = time.Now()
	group.UpdatedAt = group.CreatedAt

	if _, err := r.collection.InsertOne(ctx, group); err != nil {
		return "", err
	}
	return group.ID, nil
}

func (r *groupRepo) GetByID(ctx context.Context, id string) (*model.Group, error) {
	var group model.Group
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&group)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepo) List(ctx context.Context) ([]model.Group, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	groups := []model.Group{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepo) Update(ctx context.Context, group *model.Group) error {
	group.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": group.ID}, group)
	return err
}

func (r *groupRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
