package services

import (
	"context"
	"time"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/utils"
)

// fakeRuleStore is an in-memory RuleStore keyed the way the Mongo repository
// is: one document per (ownerKey, line, effectiveDate). saveErr injects write
// failures per owner key.
type fakeRuleStore struct {
	sets    []*models.RuleSet
	saveErr map[string]error
	saves   int
}

func (f *fakeRuleStore) FindExact(_ context.Context, ownerKey, line string, date time.Time) (*models.RuleSet, error) {
	for _, s := range f.sets {
		if s.OwnerKey == ownerKey && s.Line == line && s.EffectiveDate.Equal(date) {
			return copySet(s), nil
		}
	}
	return nil, nil
}

func (f *fakeRuleStore) FindLatestOnOrBefore(_ context.Context, ownerKey, line string, asOf time.Time) (*models.RuleSet, error) {
	var best *models.RuleSet
	for _, s := range f.sets {
		if s.OwnerKey != ownerKey || s.Line != line || s.EffectiveDate.After(asOf) {
			continue
		}
		if best == nil || s.EffectiveDate.After(best.EffectiveDate) {
			best = s
		}
	}
	return copySet(best), nil
}

func (f *fakeRuleStore) FindLatest(_ context.Context, ownerKey, line string) (*models.RuleSet, error) {
	var best *models.RuleSet
	for _, s := range f.sets {
		if s.OwnerKey != ownerKey || s.Line != line {
			continue
		}
		if best == nil || s.EffectiveDate.After(best.EffectiveDate) {
			best = s
		}
	}
	return copySet(best), nil
}

func (f *fakeRuleStore) Save(_ context.Context, set *models.RuleSet) error {
	if err := f.saveErr[set.OwnerKey]; err != nil {
		return err
	}
	f.saves++
	for i, s := range f.sets {
		if s.OwnerKey == set.OwnerKey && s.Line == set.Line && s.EffectiveDate.Equal(set.EffectiveDate) {
			f.sets[i] = copySet(set)
			return nil
		}
	}
	f.sets = append(f.sets, copySet(set))
	return nil
}

func (f *fakeRuleStore) Delete(_ context.Context, ownerKey, line string, date time.Time) error {
	for i, s := range f.sets {
		if s.OwnerKey == ownerKey && s.Line == line && s.EffectiveDate.Equal(date) {
			f.sets = append(f.sets[:i], f.sets[i+1:]...)
			return nil
		}
	}
	return nil
}

// mustFind fetches a stored set directly, bypassing the resolver.
func (f *fakeRuleStore) mustFind(ownerKey, line string, date time.Time) *models.RuleSet {
	for _, s := range f.sets {
		if s.OwnerKey == ownerKey && s.Line == line && s.EffectiveDate.Equal(date) {
			return s
		}
	}
	return nil
}

func copySet(s *models.RuleSet) *models.RuleSet {
	if s == nil {
		return nil
	}
	out := *s
	out.Items = make([]models.RuleItem, len(s.Items))
	copy(out.Items, s.Items)
	return &out
}

// fakeDirectory is an in-memory OwnerDirectory.
type fakeDirectory struct {
	owners map[string][]string
	err    error
}

func (f *fakeDirectory) ListActiveOwners(_ context.Context, kind string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.owners[kind], nil
}

// fakePolicyStore returns a fixed policy list for report tests.
type fakePolicyStore struct {
	policies []models.PolicyEntry
	err      error
}

func (f *fakePolicyStore) FindForReport(_ context.Context, _ models.ReportRequest, _ string, _ []string) ([]models.PolicyEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.policies, nil
}

func day(t string) time.Time {
	d, err := utils.ParseDay(t)
	if err != nil {
		panic(err)
	}
	return d
}

func storedSet(owner, kind, line, date string, items ...models.RuleItem) *models.RuleSet {
	return &models.RuleSet{
		OwnerKey:      utils.Normalize(owner),
		OwnerName:     owner,
		OwnerKind:     kind,
		Line:          line,
		EffectiveDate: day(date),
		Items:         items,
	}
}
