package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "quizku_backend/internals/databases"
	"quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
)

type userDoc struct {
	ID             string    `bson:"_id"`
	Name           string    `bson:"name"`
	RegisterNumber string    `bson:"registerNumber"`
	Department     string    `bson:"department"`
	Email          string    `bson:"email"`
	Mobile         string    `bson:"mobile"`
	Password       string    `bson:"password"`
	CollegeName    string    `bson:"collegeName"`
	Role           string    `bson:"role"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

func toUserDoc(u *model.UserModel) userDoc {
	return userDoc{
		ID:             u.ID.String(),
		Name:           u.Name,
		RegisterNumber: u.RegisterNumber,
		Department:     u.Department,
		Email:          u.Email,
		Mobile:         u.Mobile,
		Password:       u.Password,
		CollegeName:    u.CollegeName,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (d userDoc) toModel() model.UserModel {
	id, _ := uuid.Parse(d.ID)
	return model.UserModel{
		ID:             id,
		Name:           d.Name,
		RegisterNumber: d.RegisterNumber,
		Department:     d.Department,
		Email:          d.Email,
		Mobile:         d.Mobile,
		Password:       d.Password,
		CollegeName:    d.CollegeName,
		Role:           d.Role,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

type UserRepositoryMongo struct {
	Coll *mongo.Collection
}

func NewUserRepositoryMongo(db *mongo.Database) *UserRepositoryMongo {
	return &UserRepositoryMongo{Coll: db.Collection(database.CollUsers)}
}

func (r *UserRepositoryMongo) Create(ctx context.Context, u *model.UserModel) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	u.CreatedAt, u.UpdatedAt = now, now
	_, err := r.Coll.InsertOne(ctx, toUserDoc(u))
	return helper.MapMongoError(err)
}

func (r *UserRepositoryMongo) findOne(ctx context.Context, filter bson.M) (*model.UserModel, error) {
	var d userDoc
	if err := r.Coll.FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, helper.MapMongoError(err)
	}
	m := d.toModel()
	return &m, nil
}

func (r *UserRepositoryMongo) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *UserRepositoryMongo) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepositoryMongo) FindByEmailOrRegisterNumber(ctx context.Context, email, registerNumber string) (*model.UserModel, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"registerNumber": registerNumber},
	}})
}

func (r *UserRepositoryMongo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.UserModel, error) {
	out := make([]model.UserModel, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make(bson.A, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	cursor, err := r.Coll.Find(ctx, bson.M{"_id": bson.M{"$in": keys}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var d userDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toModel())
	}
	return out, cursor.Err()
}

func (r *UserRepositoryMongo) UpdateProfile(ctx context.Context, id uuid.UUID, upd model.ProfileUpdate) (*model.UserModel, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.Mobile != nil {
		set["mobile"] = *upd.Mobile
	}
	if upd.CollegeName != nil {
		set["collegeName"] = *upd.CollegeName
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d userDoc
	err := r.Coll.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set}, opts).Decode(&d)
	if err != nil {
		return nil, helper.MapMongoError(err)
	}
	m := d.toModel()
	return &m, nil
}

func (r *UserRepositoryMongo) SetRole(ctx context.Context, id uuid.UUID, role string) error {
	res, err := r.Coll.UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return helper.MapMongoError(err)
	}
	if res.MatchedCount == 0 {
		return helper.ErrNotFound
	}
	return nil
}

func (r *UserRepositoryMongo) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.Coll.CountDocuments(ctx, bson.M{"role": role})
}
