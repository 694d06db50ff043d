package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/repository"
)

type userDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Hobbies []string           `bson:"hobbies"`
}

func (d userDocument) toDomain() domain.User {
	hobbies := d.Hobbies
	if hobbies == nil {
		hobbies = []string{}
	}
	return domain.User{
		ID:      d.ID.Hex(),
		Name:    d.Name,
		Hobbies: hobbies,
	}
}

type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDocument{
		ID:      primitive.NewObjectID(),
		Name:    user.Name,
		Hobbies: user.Hobbies,
	}
	if doc.Hobbies == nil {
		doc.Hobbies = []string{}
	}
	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = doc.ID.Hex()
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	oid, err := objectID("user", id)
	if err != nil {
		return nil, err
	}

	var doc userDocument
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("find user: %w", notFound(err, "user", id))
	}
	user := doc.toDomain()
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	cur, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toDomain())
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if patch.Empty() {
		return r.Get(ctx, id)
	}
	oid, err := objectID("user", id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Hobbies != nil {
		hobbies := *patch.Hobbies
		if hobbies == nil {
			hobbies = []string{}
		}
		set["hobbies"] = hobbies
	}

	var doc userDocument
	err = r.users.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", notFound(err, "user", id))
	}
	user := doc.toDomain()
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID("user", id)
	if err != nil {
		return err
	}
	res, err := r.users.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
