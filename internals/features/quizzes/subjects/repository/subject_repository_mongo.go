package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "quizku_backend/internals/databases"
	"quizku_backend/internals/features/quizzes/subjects/model"
	helper "quizku_backend/internals/helpers"
)

type subjectDoc struct {
	ID        string    `bson:"_id"`
	Slug      string    `bson:"slug"`
	Label     string    `bson:"label"`
	Active    bool      `bson:"active"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d subjectDoc) toModel() model.SubjectModel {
	id, _ := uuid.Parse(d.ID)
	return model.SubjectModel{
		ID:        id,
		Slug:      d.Slug,
		Label:     d.Label,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type SubjectRepositoryMongo struct {
	Coll *mongo.Collection
}

func NewSubjectRepositoryMongo(db *mongo.Database) *SubjectRepositoryMongo {
	return &SubjectRepositoryMongo{Coll: db.Collection(database.CollSubjects)}
}

func (r *SubjectRepositoryMongo) List(ctx context.Context, activeOnly bool) ([]model.SubjectModel, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.Coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "label", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []subjectDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]model.SubjectModel, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *SubjectRepositoryMongo) findOne(ctx context.Context, filter bson.M) (*model.SubjectModel, error) {
	var d subjectDoc
	if err := r.Coll.FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, helper.MapMongoError(err)
	}
	m := d.toModel()
	return &m, nil
}

func (r *SubjectRepositoryMongo) FindByID(ctx context.Context, id uuid.UUID) (*model.SubjectModel, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *SubjectRepositoryMongo) FindBySlug(ctx context.Context, slug string) (*model.SubjectModel, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *SubjectRepositoryMongo) FindByLabel(ctx context.Context, label string) (*model.SubjectModel, error) {
	return r.findOne(ctx, bson.M{"label": label})
}

func (r *SubjectRepositoryMongo) Create(ctx context.Context, s *model.SubjectModel) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.CreatedAt, s.UpdatedAt = now, now
	_, err := r.Coll.InsertOne(ctx, subjectDoc{
		ID:        s.ID.String(),
		Slug:      s.Slug,
		Label:     s.Label,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	})
	return helper.MapMongoError(err)
}

func (r *SubjectRepositoryMongo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.SubjectModel, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d subjectDoc
	err := r.Coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{"active": active, "updatedAt": time.Now().UTC()}},
		opts,
	).Decode(&d)
	if err != nil {
		return nil, helper.MapMongoError(err)
	}
	m := d.toModel()
	return &m, nil
}

func (r *SubjectRepositoryMongo) Count(ctx context.Context) (int64, error) {
	return r.Coll.CountDocuments(ctx, bson.M{})
}
