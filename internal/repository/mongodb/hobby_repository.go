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

type hobbyDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	PassionLevel int                `bson:"passionLevel"`
	Year         int64              `bson:"year"`
}

func (d hobbyDocument) toDomain() domain.Hobby {
	return domain.Hobby{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		PassionLevel: domain.PassionLevel(d.PassionLevel),
		Year:         d.Year,
	}
}

type HobbyRepository struct {
	hobbies *mongo.Collection
}

func NewHobbyRepository(db *mongo.Database) *HobbyRepository {
	return &HobbyRepository{hobbies: db.Collection(hobbiesCollection)}
}

func (r *HobbyRepository) Create(ctx context.Context, hobby *domain.Hobby) error {
	doc := hobbyDocument{
		ID:           primitive.NewObjectID(),
		Name:         hobby.Name,
		PassionLevel: int(hobby.PassionLevel),
		Year:         hobby.Year,
	}
	if _, err := r.hobbies.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert hobby: %w", err)
	}
	hobby.ID = doc.ID.Hex()
	return nil
}

func (r *HobbyRepository) Get(ctx context.Context, id string) (*domain.Hobby, error) {
	oid, err := objectID("hobby", id)
	if err != nil {
		return nil, err
	}

	var doc hobbyDocument
	if err := r.hobbies.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("find hobby: %w", notFound(err, "hobby", id))
	}
	hobby := doc.toDomain()
	return &hobby, nil
}

func (r *HobbyRepository) List(ctx context.Context) ([]domain.Hobby, error) {
	cur, err := r.hobbies.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list hobbies: %w", err)
	}
	var docs []hobbyDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode hobbies: %w", err)
	}

	hobbies := make([]domain.Hobby, 0, len(docs))
	for _, doc := range docs {
		hobbies = append(hobbies, doc.toDomain())
	}
	return hobbies, nil
}

func (r *HobbyRepository) Update(ctx context.Context, id string, patch domain.HobbyPatch) (*domain.Hobby, error) {
	if patch.Empty() {
		return r.Get(ctx, id)
	}
	oid, err := objectID("hobby", id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.PassionLevel != nil {
		set["passionLevel"] = int(*patch.PassionLevel)
	}
	if patch.Year != nil {
		set["year"] = *patch.Year
	}

	var doc hobbyDocument
	err = r.hobbies.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("update hobby: %w", notFound(err, "hobby", id))
	}
	hobby := doc.toDomain()
	return &hobby, nil
}

func (r *HobbyRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID("hobby", id)
	if err != nil {
		return err
	}
	res, err := r.hobbies.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete hobby: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("hobby %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

var _ repository.HobbyRepository = (*HobbyRepository)(nil)
