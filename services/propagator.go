// services/propagator.go
package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/utils"
)

// RuleService owns the write side of commission rule sets: dealer saves
// (wholesale replace per day), partner saves (merge by match key, with the
// dealer-percent ceiling check), and the apply-to-all fan-out that copies a
// partner's flagged rules onto every other active partner.
type RuleService struct {
	dealers   RuleStore
	partners  RuleStore
	directory OwnerDirectory

	dealerResolver  *Resolver
	partnerResolver *Resolver
}

func NewRuleService(dealers, partners RuleStore, directory OwnerDirectory) *RuleService {
	return &RuleService{
		dealers:         dealers,
		partners:        partners,
		directory:       directory,
		dealerResolver:  NewResolver(dealers),
		partnerResolver: NewResolver(partners),
	}
}

func (s *RuleService) DealerResolver() *Resolver  { return s.dealerResolver }
func (s *RuleService) PartnerResolver() *Resolver { return s.partnerResolver }

// SaveDealerRules replaces the dealer's rule set for the given day wholesale:
// re-saving the same (dealer, date) leaves only the new payload's items.
func (s *RuleService) SaveDealerRules(ctx context.Context, dealerName, line string, date time.Time, items []models.RuleItem) error {
	schema, ok := SchemaForLine(line)
	if !ok {
		return validationErrf("unknown product line %q", line)
	}
	if utils.Normalize(dealerName) == "" {
		return validationErrf("dealer name is required")
	}
	if len(items) == 0 {
		return validationErrf("at least one rule item is required")
	}

	set := &models.RuleSet{
		OwnerKey:      utils.Normalize(dealerName),
		OwnerName:     trimmed(dealerName),
		OwnerKind:     models.OwnerKindDealer,
		Line:          schema.Line,
		EffectiveDate: utils.DayOf(date),
		Items:         clearFlags(items),
	}
	return s.dealers.Save(ctx, set)
}

// GetDealerRules resolves a dealer's rules as of a day, or the latest set
// when latest is true. A nil set means the dealer has no rules yet.
func (s *RuleService) GetDealerRules(ctx context.Context, dealerName, line string, date time.Time, latest bool) (*models.RuleSet, error) {
	if _, ok := SchemaForLine(line); !ok {
		return nil, validationErrf("unknown product line %q", line)
	}
	if latest {
		return s.dealerResolver.Latest(ctx, dealerName, line)
	}
	return s.dealerResolver.Resolve(ctx, dealerName, line, date)
}

func (s *RuleService) DeleteDealerRules(ctx context.Context, dealerName, line string, date time.Time) error {
	if _, ok := SchemaForLine(line); !ok {
		return validationErrf("unknown product line %q", line)
	}
	return s.dealers.Delete(ctx, utils.Normalize(dealerName), line, utils.DayOf(date))
}

// SavePartnerRules validates the entry against dealer ceilings, merges the
// items into the partner's own set for the day, then fans flagged items out
// to every other active partner.
//
// The ceiling check runs only here, on direct entry: fan-out merges reuse
// already-validated items. Each fan-out target is an independent committed
// write; failures after the partner's own save are reported as a
// *PropagationError and never rolled back.
func (s *RuleService) SavePartnerRules(ctx context.Context, partnerName, line string, date time.Time, items []models.RuleItem) error {
	schema, ok := SchemaForLine(line)
	if !ok {
		return validationErrf("unknown product line %q", line)
	}
	if utils.Normalize(partnerName) == "" {
		return validationErrf("partner name is required")
	}
	if len(items) == 0 {
		return validationErrf("at least one rule item is required")
	}
	day := utils.DayOf(date)

	// Ceiling validation is atomic: any violation rejects the whole entry
	// before a single write happens.
	if err := s.applyDealerCeilings(ctx, schema, day, items); err != nil {
		return err
	}

	// Items flagged apply-to-all propagate; the flag itself is a one-shot
	// command and is persisted as false everywhere, including on the
	// initiating partner, so it unchecks on the next load.
	var toPropagate []models.RuleItem
	for _, item := range items {
		if item.ApplyToAllPartners {
			toPropagate = append(toPropagate, item)
		}
	}

	if err := s.mergeIntoPartner(ctx, schema, partnerName, day, items); err != nil {
		return err
	}
	log.Printf("saved %s rules for partner %s (%d items)", schema.Line, partnerName, len(items))

	if len(toPropagate) == 0 {
		return nil
	}
	return s.propagate(ctx, schema, partnerName, day, toPropagate)
}

// applyDealerCeilings enforces that a partner's percent never exceeds the
// matching dealer rule's percent, and snapshots that dealer percent onto the
// item. Items whose dealer has no matching rule keep their submitted values.
func (s *RuleService) applyDealerCeilings(ctx context.Context, schema *RuleSchema, day time.Time, items []models.RuleItem) error {
	dealerSets := map[string]*models.RuleSet{}

	for i := range items {
		item := &items[i]
		dealerKey := utils.Normalize(item.DealerName)
		if dealerKey == "" {
			continue
		}

		set, seen := dealerSets[dealerKey]
		if !seen {
			var err error
			set, err = s.dealerResolver.Resolve(ctx, item.DealerName, schema.Line, day)
			if err != nil {
				return err
			}
			dealerSets[dealerKey] = set
		}
		if set == nil {
			continue
		}

		key := schema.CriteriaKey(item)
		for j := range set.Items {
			if schema.CriteriaKey(&set.Items[j]) != key {
				continue
			}
			ceiling := set.Items[j].Percent
			if item.Percent > ceiling {
				return validationErrf("partner percent %.2f exceeds dealer %s ceiling %.2f for %s / %s",
					item.Percent, item.DealerName, ceiling, item.Company, item.Product)
			}
			item.DealerPercent = ceiling
			break
		}
	}
	return nil
}

// mergeIntoPartner loads (or creates) the partner's set for the day and
// merges the items in by merge key: existing rows get their payout values
// overwritten, new rows are appended. Replaying the same merge is idempotent.
func (s *RuleService) mergeIntoPartner(ctx context.Context, schema *RuleSchema, partnerName string, day time.Time, items []models.RuleItem) error {
	set, err := s.partners.FindExact(ctx, utils.Normalize(partnerName), schema.Line, day)
	if err != nil {
		return err
	}
	if set == nil {
		set = &models.RuleSet{
			OwnerKey:      utils.Normalize(partnerName),
			OwnerName:     trimmed(partnerName),
			OwnerKind:     models.OwnerKindPartner,
			Line:          schema.Line,
			EffectiveDate: day,
		}
	}

	mergeItems(set, items, schema)
	return s.partners.Save(ctx, set)
}

// propagate copies the flagged items onto every other active partner's set
// for the same day. Targets come from the owner directory, never from a
// storage scan. Writes are sequential and independent; a failure on one
// target neither stops nor undoes the others.
func (s *RuleService) propagate(ctx context.Context, schema *RuleSchema, sourcePartner string, day time.Time, items []models.RuleItem) error {
	owners, err := s.directory.ListActiveOwners(ctx, models.OwnerKindPartner)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	sourceKey := utils.Normalize(sourcePartner)

	var applied []string
	var failed []OwnerFailure
	for _, owner := range owners {
		if utils.Normalize(owner) == sourceKey {
			continue
		}
		if err := s.mergeIntoPartner(ctx, schema, owner, day, items); err != nil {
			log.Printf("propagation %s: partner %s failed: %v", runID, owner, err)
			failed = append(failed, OwnerFailure{Owner: owner, Reason: err.Error()})
			continue
		}
		applied = append(applied, owner)
	}

	log.Printf("propagation %s: %d rules from %s applied to %d partners, %d failed",
		runID, len(items), sourcePartner, len(applied), len(failed))

	if len(failed) > 0 {
		return &PropagationError{RunID: runID, Applied: applied, Failed: failed}
	}
	return nil
}

// GetPartnerRules returns the merged entry view: every dealer rule in force
// on the day, overlaid with the partner's saved percent where one exists.
func (s *RuleService) GetPartnerRules(ctx context.Context, partnerName, line string, date time.Time) ([]models.PartnerRuleView, error) {
	schema, ok := SchemaForLine(line)
	if !ok {
		return nil, validationErrf("unknown product line %q", line)
	}
	day := utils.DayOf(date)

	partnerSet, err := s.partnerResolver.Resolve(ctx, partnerName, schema.Line, day)
	if err != nil {
		return nil, err
	}
	saved := map[string]*models.RuleItem{}
	if partnerSet != nil {
		for i := range partnerSet.Items {
			saved[schema.MergeKey(&partnerSet.Items[i])] = &partnerSet.Items[i]
		}
	}

	dealers, err := s.directory.ListActiveOwners(ctx, models.OwnerKindDealer)
	if err != nil {
		return nil, err
	}

	views := []models.PartnerRuleView{}
	for _, dealer := range dealers {
		dealerSet, err := s.dealerResolver.Resolve(ctx, dealer, schema.Line, day)
		if err != nil {
			return nil, err
		}
		if dealerSet == nil {
			continue
		}

		for i := range dealerSet.Items {
			row := dealerSet.Items[i]
			row.DealerName = dealerSet.OwnerName
			row.DealerPercent = row.Percent
			row.Percent = 0

			view := models.PartnerRuleView{RuleItem: row}
			if match, ok := saved[schema.MergeKey(&row)]; ok {
				view.Percent = match.Percent
				view.OnNet = match.OnNet
				view.Fixed = match.Fixed
				view.IsSaved = true
			}
			views = append(views, view)
		}
	}
	return views, nil
}

// mergeItems merges incoming items into a set by merge key. Matching rows get
// percent, basis, fixed and the (cleared) flag overwritten with the later
// values; unmatched rows are appended. Returns updated and added counts.
func mergeItems(set *models.RuleSet, incoming []models.RuleItem, schema *RuleSchema) (updated, added int) {
	index := map[string]int{}
	for i := range set.Items {
		index[schema.MergeKey(&set.Items[i])] = i
	}

	for _, item := range incoming {
		item.ApplyToAllPartners = false
		if i, ok := index[schema.MergeKey(&item)]; ok {
			set.Items[i].Percent = item.Percent
			set.Items[i].OnNet = item.OnNet
			set.Items[i].Fixed = item.Fixed
			set.Items[i].DealerPercent = item.DealerPercent
			set.Items[i].ApplyToAllPartners = false
			updated++
		} else {
			index[schema.MergeKey(&item)] = len(set.Items)
			set.Items = append(set.Items, item)
			added++
		}
	}
	return updated, added
}

func clearFlags(items []models.RuleItem) []models.RuleItem {
	out := make([]models.RuleItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].ApplyToAllPartners = false
	}
	return out
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
