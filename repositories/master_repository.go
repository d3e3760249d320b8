package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skandpro/insurcomm_backend/models"
)

// MasterRepository stores master data rows (dealers, partners, companies,
// products...) and serves as the owner directory for propagation fan-out.
type MasterRepository struct {
	collection *mongo.Collection
}

func NewMasterRepository(db *mongo.Database) *MasterRepository {
	return &MasterRepository{
		collection: db.Collection("masters"),
	}
}

// ListActiveOwners returns the names of every active owner of a kind
// ("dealer" or "partner").
func (r *MasterRepository) ListActiveOwners(ctx context.Context, kind string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1}).SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"type": kind, "status": "Active"}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Name string `bson:"name"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	return names, nil
}

func (r *MasterRepository) List(ctx context.Context, masterType string) ([]models.Master, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if masterType != "" {
		filter["type"] = masterType
	}

	opts := options.Find().SetSort(bson.D{{Key: "sNo", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var masters []models.Master
	if err := cursor.All(ctx, &masters); err != nil {
		return nil, err
	}
	return masters, nil
}

func (r *MasterRepository) FindByName(ctx context.Context, masterType, name string) (*models.Master, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var master models.Master
	err := r.collection.FindOne(ctx, bson.M{"type": masterType, "name": name}).Decode(&master)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &master, nil
}

func (r *MasterRepository) Create(ctx context.Context, master *models.Master) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"type": master.Type})
	if err != nil {
		return err
	}
	master.SNo = int(count) + 1
	if master.Status == "" {
		master.Status = "Active"
	}
	master.CreatedAt = time.Now()
	master.UpdatedAt = master.CreatedAt

	result, err := r.collection.InsertOne(ctx, master)
	if err != nil {
		return err
	}
	master.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MasterRepository) Update(ctx context.Context, id primitive.ObjectID, req models.MasterRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":      req.Name,
		"mobile":    req.Mobile,
		"email":     req.Email,
		"status":    req.Status,
		"meta":      req.Meta,
		"updatedAt": time.Now(),
	}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *MasterRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
