package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ternakku/internal/model"
)

// SubmissionFilter narrows submission queries. Zero values are
// inactive. Period/Year match the stored raw values; the scoring layer
// does the finer, label-aware filtering in memory.
type SubmissionFilter struct {
	RespondentID string
	GroupID      string
	Year         int
}

// SubmissionRepo handles MongoDB operations for questionnaire
// submissions. Submissions are insert-only; edits happen nowhere in
// this application.
type SubmissionRepo interface {
	Create(ctx context.Context, sub *model.Submission) (string, error)
	GetByID(ctx context.Context, id string) (*model.Submission, error)
	List(ctx context.Context, filter SubmissionFilter) ([]model.Submission, error)
	ExistsForPeriod(ctx context.Context, respondentID string, period interface{}, year int) (bool, error)
}

type submissionRepo struct {
	collection *mongo.Collection
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *mongo.Database) SubmissionRepo {
	return &submissionRepo{
		collection: db.Collection("questionnaire_submissions"),
	}
}

func (r *submissionRepo) Create(ctx context.Context, sub *model.Submission) (string, error) {
	if sub.ID == "" {
		sub.ID = primitive.NewObjectID().Hex()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, sub)
	if err != nil {
		return "", err
	}
	return sub.ID, nil
}

func (r *submissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	var sub model.Submission
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *submissionRepo) List(ctx context.Context, filter SubmissionFilter) ([]model.Submission, error) {
	query := bson.M{}
	if filter.RespondentID != "" {
		query["respondentId"] = filter.RespondentID
	}
	if filter.GroupID != "" {
		query["groupId"] = filter.GroupID
	}
	if filter.Year != 0 {
		query["year"] = filter.Year
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []model.Submission{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *submissionRepo) ExistsForPeriod(ctx context.Context, respondentID string, period interface{}, year int) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"respondentId": respondentID,
		"period":       period,
		"year":         year,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
