package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "quizku_backend/internals/databases"
	"quizku_backend/internals/features/quizzes/results/model"
	helper "quizku_backend/internals/helpers"
)

type resultDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	Subject   string    `bson:"subject"`
	Score     int       `bson:"score"`
	Total     int       `bson:"total"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d resultDoc) toModel() model.ResultModel {
	id, _ := uuid.Parse(d.ID)
	uid, _ := uuid.Parse(d.UserID)
	return model.ResultModel{
		ID:        id,
		UserID:    uid,
		Subject:   d.Subject,
		Score:     d.Score,
		Total:     d.Total,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type ResultRepositoryMongo struct {
	Coll *mongo.Collection
}

func NewResultRepositoryMongo(db *mongo.Database) *ResultRepositoryMongo {
	return &ResultRepositoryMongo{Coll: db.Collection(database.CollResults)}
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

func (r *ResultRepositoryMongo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]model.ResultModel, error) {
	cursor, err := r.Coll.Find(ctx, filter, opts.SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []model.ResultModel{}
	for cursor.Next(ctx) {
		var d resultDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toModel())
	}
	return out, cursor.Err()
}

func (r *ResultRepositoryMongo) Create(ctx context.Context, m *model.ResultModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	// BSON date hanya presisi milidetik
	now := time.Now().UTC().Truncate(time.Millisecond)
	m.CreatedAt, m.UpdatedAt = now, now
	_, err := r.Coll.InsertOne(ctx, resultDoc{
		ID:        m.ID.String(),
		UserID:    m.UserID.String(),
		Subject:   m.Subject,
		Score:     m.Score,
		Total:     m.Total,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	})
	return helper.MapMongoError(err)
}

func (r *ResultRepositoryMongo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ResultModel, error) {
	return r.find(ctx, bson.M{"userId": userID.String()}, options.Find())
}

func (r *ResultRepositoryMongo) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*model.ResultModel, error) {
	var d resultDoc
	err := r.Coll.FindOne(ctx, bson.M{"_id": id.String(), "userId": userID.String()}).Decode(&d)
	if err != nil {
		return nil, helper.MapMongoError(err)
	}
	m := d.toModel()
	return &m, nil
}

func (r *ResultRepositoryMongo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := r.Coll.DeleteMany(ctx, bson.M{"userId": userID.String()})
	if err != nil {
		return 0, helper.MapMongoError(err)
	}
	return res.DeletedCount, nil
}

func (r *ResultRepositoryMongo) ListAll(ctx context.Context) ([]model.ResultModel, error) {
	return r.find(ctx, bson.M{}, options.Find())
}

func (r *ResultRepositoryMongo) ListRecent(ctx context.Context, n int) ([]model.ResultModel, error) {
	if n <= 0 {
		return []model.ResultModel{}, nil
	}
	return r.find(ctx, bson.M{}, options.Find().SetLimit(int64(n)))
}
