package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	database "quizku_backend/internals/databases"
	"quizku_backend/internals/features/users/support/model"
	helper "quizku_backend/internals/helpers"
)

type SupportRepository interface {
	Create(ctx context.Context, r *model.SupportRequestModel) error
}

/* ===================== gorm ===================== */

type SupportRepositoryGorm struct {
	DB *gorm.DB
}

func NewSupportRepositoryGorm(db *gorm.DB) *SupportRepositoryGorm {
	return &SupportRepositoryGorm{DB: db}
}

func (r *SupportRepositoryGorm) Create(ctx context.Context, m *model.SupportRequestModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return helper.MapPGError(r.DB.WithContext(ctx).Create(m).Error)
}

/* ===================== mongo ===================== */

type supportDoc struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"userId"`
	IssueType   string    `bson:"issueType"`
	Subject     string    `bson:"subject"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

type SupportRepositoryMongo struct {
	Coll *mongo.Collection
}

func NewSupportRepositoryMongo(db *mongo.Database) *SupportRepositoryMongo {
	return &SupportRepositoryMongo{Coll: db.Collection(database.CollSupportRequests)}
}

func (r *SupportRepositoryMongo) Create(ctx context.Context, m *model.SupportRequestModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	m.CreatedAt, m.UpdatedAt = now, now
	_, err := r.Coll.InsertOne(ctx, supportDoc{
		ID:          m.ID.String(),
		UserID:      m.UserID.String(),
		IssueType:   m.IssueType,
		Subject:     m.Subject,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	})
	return helper.MapMongoError(err)
}
