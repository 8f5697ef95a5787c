package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "quizku_backend/internals/databases"
	"quizku_backend/internals/features/quizzes/questions/model"
	helper "quizku_backend/internals/helpers"
)

type questionDoc struct {
	ID            string    `bson:"_id"`
	Subject       string    `bson:"subject"`
	Question      string    `bson:"question"`
	Options       []string  `bson:"options"`
	CorrectOption int       `bson:"correctOption"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

func toQuestionDoc(q *model.QuestionModel) questionDoc {
	return questionDoc{
		ID:            q.ID.String(),
		Subject:       q.Subject,
		Question:      q.Question,
		Options:       []string(q.Options),
		CorrectOption: q.CorrectOption,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func (d questionDoc) toModel() model.QuestionModel {
	id, _ := uuid.Parse(d.ID)
	return model.QuestionModel{
		ID:            id,
		Subject:       d.Subject,
		Question:      d.Question,
		Options:       d.Options,
		CorrectOption: d.CorrectOption,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type QuestionRepositoryMongo struct {
	Coll *mongo.Collection
}

func NewQuestionRepositoryMongo(db *mongo.Database) *QuestionRepositoryMongo {
	return &QuestionRepositoryMongo{Coll: db.Collection(database.CollQuestions)}
}

func (r *QuestionRepositoryMongo) List(ctx context.Context, f model.QuestionFilter) ([]model.QuestionModel, error) {
	filter := bson.M{}
	if f.Subject != "" {
		filter["subject"] = f.Subject
	}
	dir := 1
	if f.NewestFirst {
		dir = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: dir}, {Key: "_id", Value: dir}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cursor, err := r.Coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []questionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]model.QuestionModel, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func stamp(q *model.QuestionModel, now time.Time) {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	q.CreatedAt, q.UpdatedAt = now, now
}

func (r *QuestionRepositoryMongo) Create(ctx context.Context, q *model.QuestionModel) error {
	stamp(q, time.Now().UTC().Truncate(time.Millisecond))
	_, err := r.Coll.InsertOne(ctx, toQuestionDoc(q))
	return helper.MapMongoError(err)
}

func (r *QuestionRepositoryMongo) CreateMany(ctx context.Context, qs []model.QuestionModel) error {
	if len(qs) == 0 {
		return nil
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	docs := make([]any, 0, len(qs))
	for i := range qs {
		// urutan seed dipertahankan lewat createdAt yang naik per item
		stamp(&qs[i], now.Add(time.Duration(i)*time.Millisecond))
		docs = append(docs, toQuestionDoc(&qs[i]))
	}
	_, err := r.Coll.InsertMany(ctx, docs)
	return helper.MapMongoError(err)
}

func (r *QuestionRepositoryMongo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return helper.MapMongoError(err)
	}
	if res.DeletedCount == 0 {
		return helper.ErrNotFound
	}
	return nil
}

func (r *QuestionRepositoryMongo) Count(ctx context.Context) (int64, error) {
	return r.Coll.CountDocuments(ctx, bson.M{})
}
