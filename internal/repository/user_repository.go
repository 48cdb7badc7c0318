package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"onboard_panel/model"
)

// UserRepository stores admin/superuser profiles keyed by uid.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) Insert(ctx context.Context, u *model.AdminUser) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *UserRepository) Get(ctx context.Context, uid string) (*model.AdminUser, error) {
	return r.findOne(ctx, bson.M{"_id": uid})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *model.AdminUser) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.UID}, u)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, uid string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": uid})
	return err
}

func (r *UserRepository) List(ctx context.Context) ([]model.AdminUser, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []model.AdminUser{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
