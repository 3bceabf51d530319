package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ternakku/internal/model"
)

// LivestockRepo handles MongoDB operations for livestock records
type LivestockRepo interface {
	Create(ctx context.Context, rec *model.Livestock) (string, error)
	GetByID(ctx context.Context, id string) (*model.Livestock, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Livestock, error)
	ListByGroup(ctx context.Context, groupID string) ([]model.Livestock, error)
	Update(ctx context.Context, rec *model.Livestock) error
	Delete(ctx context.Context, id string) error
}

type livestockRepo struct {
	collection *mongo.Collection
}

// NewLivestockRepo creates a new livestock repository
func NewLivestockRepo(db *mongo.Database) LivestockRepo {
	return &livestockRepo{
		collection: db.Collection("livestock"),
	}
}

func (r *livestockRepo) Create(ctx context.Context, rec *model.Livestock) (string, error) {
	if rec.ID == "" {
		rec.ID = primitive.NewObjectID().Hex()
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt

	if _, err := r.collection.InsertOne(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (r *livestockRepo) GetByID(ctx context.Context, id string) (*model.Livestock, error) {
	var rec model.Livestock
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *livestockRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Livestock, error) {
	return r.list(ctx, bson.M{"ownerId": ownerID})
}

func (r *livestockRepo) ListByGroup(ctx context.Context, groupID string) ([]model.Livestock, error) {
	return r.list(ctx, bson.M{"groupId": groupID})
}

func (r *livestockRepo) list(ctx context.Context, query bson.M) ([]model.Livestock, error) {
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recs := []model.Livestock{}
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *livestockRepo) Update(ctx context.Context, rec *model.Livestock) error {
	rec.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec)
	return err
}

func (r *livestockRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
