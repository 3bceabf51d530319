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

// ArticleRepo handles MongoDB operations for articles
type ArticleRepo interface {
	Create(ctx context.Context, article *model.Article) (string, error)
	GetByID(ctx context.Context, id string) (*model.Article, error)
	List(ctx context.Context) ([]model.Article, error)
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id string) error
}

type articleRepo struct {
	collection *mongo.Collection
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *mongo.Database) ArticleRepo {
	return &articleRepo{
		collection: db.Collection("articles"),
	}
}

func (r *articleRepo) Create(ctx context.Context, article *model.Article) (string, error) {
	if article.ID == "" {
		article.ID = primitive.NewObjectID().Hex()
	}
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt

	if _, err := r.collection.InsertOne(ctx, article); err != nil {
		return "", err
	}
	return article.ID, nil
}

func (r *articleRepo) GetByID(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepo) List(ctx context.Context) ([]model.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	articles := []model.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepo) Update(ctx context.Context, article *model.Article) error {
	article.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": article.ID}, article)
	return err
}

func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
