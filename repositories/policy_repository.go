package repositories

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/utils"
)

// PolicyRepository stores policy entries and builds the filtered queries the
// commission reports run over.
type PolicyRepository struct {
	collection *mongo.Collection
}

func NewPolicyRepository(db *mongo.Database) *PolicyRepository {
	return &PolicyRepository{
		collection: db.Collection("policies"),
	}
}

// FindDuplicate looks for another policy in the same insurance year sharing
// the vehicle, engine or chassis number. Used to reject double entry.
func (r *PolicyRepository) FindDuplicate(ctx context.Context, entry *models.PolicyEntry) (*models.PolicyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var or []bson.M
	if entry.VehicleNo != "" {
		or = append(or, bson.M{"vehicleNo": entry.VehicleNo})
	}
	if entry.EngineNo != "" {
		or = append(or, bson.M{"engineNo": entry.EngineNo})
	}
	if entry.ChassisNo != "" {
		or = append(or, bson.M{"chassisNo": entry.ChassisNo})
	}
	if len(or) == 0 {
		return nil, nil
	}

	var existing models.PolicyEntry
	err := r.collection.FindOne(ctx, bson.M{
		"insuranceYear": entry.InsuranceYear,
		"$or":           or,
	}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// Upsert saves a policy keyed by (policyNo, insuranceYear) so that edits and
// new entries go through the same path.
func (r *PolicyRepository) Upsert(ctx context.Context, entry *models.PolicyEntry) (*models.PolicyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	entry.UpdatedAt = now

	filter := bson.M{"policyNo": entry.PolicyNo, "insuranceYear": entry.InsuranceYear}
	update := bson.M{
		"$set":         entry,
		"$setOnInsert": bson.M{"createdAt": now},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var saved models.PolicyEntry
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *PolicyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PolicyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var entry models.PolicyEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns policies for a line, newest first. A limit of 0 means no limit.
func (r *PolicyRepository) List(ctx context.Context, line string, limit int64) ([]models.PolicyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if line != "" {
		filter["line"] = line
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.PolicyEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PolicyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Autocomplete matches policies on policy, vehicle, engine or chassis number,
// or the customer name, for the entry form's search box.
func (r *PolicyRepository) Autocomplete(ctx context.Context, q string, limit int64) ([]models.PolicyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"policyNo": re},
		{"vehicleNo": re},
		{"engineNo": re},
		{"chassisNo": re},
		{"vehicleName": re},
		{"customerName": re},
	}}

	opts := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.PolicyEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// renewalFilter builds the upcoming-renewals query. The window applies to the
// cover end dates: a policy is due when either its OD or TP cover ends inside
// the window.
func renewalFilter(req models.RenewalsRequest) (bson.M, error) {
	filter := bson.M{}
	if req.Line != "" {
		filter["line"] = utils.Normalize(req.Line)
	}
	if req.Dealer != "" {
		filter["dealerName"] = req.Dealer
	}
	if req.Partner != "" {
		filter["partnerName"] = req.Partner
	}
	if req.Company != "" {
		filter["insCompany"] = req.Company
	}

	if req.FromDate != "" || req.ToDate != "" {
		window := bson.M{}
		if req.FromDate != "" {
			from, err := utils.ParseDay(req.FromDate)
			if err != nil {
				return nil, err
			}
			window["$gte"] = from
		}
		if req.ToDate != "" {
			to, err := utils.ParseDay(req.ToDate)
			if err != nil {
				return nil, err
			}
			window["$lte"] = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter["$or"] = []bson.M{
			{"odEndDate": window},
			{"tpEndDate": window},
		}
	}
	return filter, nil
}

// FindRenewals lists policies whose cover ends inside the requested window,
// soonest expiry first.
func (r *PolicyRepository) FindRenewals(ctx context.Context, req models.RenewalsRequest) ([]models.PolicyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter, err := renewalFilter(req)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "odEndDate", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.PolicyEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FindForReport builds the report query: line, owner scope, companies, a date
// window on the policy or entry date, and a free-text search.
func (r *PolicyRepository) FindForReport(ctx context.Context, req models.ReportRequest, scopeField string, owners []string) ([]models.PolicyEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	filter := bson.M{"line": utils.Normalize(req.Line)}
	if len(owners) > 0 {
		filter[scopeField] = bson.M{"$in": owners}
	}
	if len(req.Companies) > 0 {
		filter["insCompany"] = bson.M{"$in": req.Companies}
	}

	dateField := "odStartDate"
	if req.DateFilterType == "entryDate" {
		dateField = "createdAt"
	}
	if req.FromDate != "" && req.ToDate != "" {
		from, err := utils.ParseDay(req.FromDate)
		if err != nil {
			return nil, err
		}
		to, err := utils.ParseDay(req.ToDate)
		if err != nil {
			return nil, err
		}
		filter[dateField] = bson.M{"$gte": from, "$lte": to.Add(24*time.Hour - time.Nanosecond)}
	}

	if req.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(req.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"policyNo": re},
			{"vehicleNo": re},
			{"customerName": re},
		}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.PolicyEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
