package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skandpro/insurcomm_backend/models"
)

// RuleRepository stores effective-dated rule sets in one collection, keyed by
// (ownerKey, line, effectiveDate). Dealer and partner rules live in separate
// collections; instantiate one repository per collection.
type RuleRepository struct {
	collection *mongo.Collection
}

func NewRuleRepository(db *mongo.Database, collectionName string) *RuleRepository {
	return &RuleRepository{
		collection: db.Collection(collectionName),
	}
}

func (r *RuleRepository) FindExact(ctx context.Context, ownerKey, line string, date time.Time) (*models.RuleSet, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var set models.RuleSet
	err := r.collection.FindOne(ctx, bson.M{
		"ownerKey":      ownerKey,
		"line":          line,
		"effectiveDate": date,
	}).Decode(&set)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *RuleRepository) FindLatestOnOrBefore(ctx context.Context, ownerKey, line string, asOf time.Time) (*models.RuleSet, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "effectiveDate", Value: -1}})
	var set models.RuleSet
	err := r.collection.FindOne(ctx, bson.M{
		"ownerKey":      ownerKey,
		"line":          line,
		"effectiveDate": bson.M{"$lte": asOf},
	}, opts).Decode(&set)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *RuleRepository) FindLatest(ctx context.Context, ownerKey, line string) (*models.RuleSet, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "effectiveDate", Value: -1}})
	var set models.RuleSet
	err := r.collection.FindOne(ctx, bson.M{
		"ownerKey": ownerKey,
		"line":     line,
	}, opts).Decode(&set)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// Save upserts the whole document by its compound key. The write is atomic at
// the document level, so readers never observe a half-written item array.
func (r *RuleRepository) Save(ctx context.Context, set *models.RuleSet) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"ownerKey":      set.OwnerKey,
		"line":          set.Line,
		"effectiveDate": set.EffectiveDate,
	}
	update := bson.M{
		"$set": bson.M{
			"ownerName": set.OwnerName,
			"ownerKind": set.OwnerKind,
			"items":     set.Items,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"ownerKey":      set.OwnerKey,
			"line":          set.Line,
			"effectiveDate": set.EffectiveDate,
			"createdAt":     now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *RuleRepository) Delete(ctx context.Context, ownerKey, line string, date time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{
		"ownerKey":      ownerKey,
		"line":          line,
		"effectiveDate": date,
	})
	return err
}

// ListByOwner returns every rule set an owner has for a line, newest first.
func (r *RuleRepository) ListByOwner(ctx context.Context, ownerKey, line string) ([]models.RuleSet, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "effectiveDate", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"ownerKey": ownerKey, "line": line}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sets []models.RuleSet
	if err := cursor.All(ctx, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}
