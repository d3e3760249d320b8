// services/resolver.go
package services

import (
	"context"
	"time"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/utils"
)

// Resolver finds the rule set in force for an owner as of a calendar day.
type Resolver struct {
	store RuleStore
}

func NewResolver(store RuleStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the exact (owner, line, asOf) rule set when one exists,
// otherwise the set with the latest effective date on or before asOf, and
// (nil, nil) when the owner has no eligible set at all. Callers treat nil as
// "no rule", never as a failure. Read-only.
func (r *Resolver) Resolve(ctx context.Context, ownerName, line string, asOf time.Time) (*models.RuleSet, error) {
	ownerKey := utils.Normalize(ownerName)
	day := utils.DayOf(asOf)

	set, err := r.store.FindExact(ctx, ownerKey, line, day)
	if err != nil {
		return nil, err
	}
	if set != nil {
		return set, nil
	}
	return r.store.FindLatestOnOrBefore(ctx, ownerKey, line, day)
}

// Latest returns the owner's most recent rule set regardless of date.
func (r *Resolver) Latest(ctx context.Context, ownerName, line string) (*models.RuleSet, error) {
	return r.store.FindLatest(ctx, utils.Normalize(ownerName), line)
}
