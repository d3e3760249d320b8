// services/report.go
package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/utils"
)

const ruleCacheTTL = 5 * time.Minute

// ReportService batches resolve, select and compute over many policies.
// Rule sets are resolved once per owner up front so each policy row is an
// O(1) lookup, never a store scan. A Redis cache in front of the resolver is
// optional; cache errors degrade to Mongo reads.
type ReportService struct {
	policies        PolicyStore
	dealerResolver  *Resolver
	partnerResolver *Resolver
	cache           *redis.Client
}

func NewReportService(policies PolicyStore, rules *RuleService, cache *redis.Client) *ReportService {
	return &ReportService{
		policies:        policies,
		dealerResolver:  rules.DealerResolver(),
		partnerResolver: rules.PartnerResolver(),
		cache:           cache,
	}
}

// GenerateDealerReport runs the engine over every policy in scope against
// each policy's dealer rules.
func (s *ReportService) GenerateDealerReport(ctx context.Context, req models.ReportRequest) ([]models.CommissionResult, error) {
	return s.generate(ctx, req, "dealerName", req.Dealers, s.dealerResolver, models.OwnerKindDealer,
		func(p *models.PolicyEntry) string { return p.DealerName })
}

// GeneratePartnerReport runs the engine over one partner's policies against
// that partner's rule set.
func (s *ReportService) GeneratePartnerReport(ctx context.Context, req models.ReportRequest) ([]models.CommissionResult, error) {
	if utils.Normalize(req.Partner) == "" {
		return nil, validationErrf("partner is required")
	}
	return s.generate(ctx, req, "partnerName", []string{req.Partner}, s.partnerResolver, models.OwnerKindPartner,
		func(p *models.PolicyEntry) string { return p.PartnerName })
}

func (s *ReportService) generate(ctx context.Context, req models.ReportRequest, scopeField string, owners []string,
	resolver *Resolver, kind string, ownerOf func(*models.PolicyEntry) string) ([]models.CommissionResult, error) {

	schema, ok := SchemaForLine(req.Line)
	if !ok {
		return nil, validationErrf("unknown product line %q", req.Line)
	}

	policies, err := s.policies.FindForReport(ctx, req, scopeField, owners)
	if err != nil {
		return nil, err
	}

	asOf := time.Now().UTC()
	if req.ToDate != "" {
		if day, err := utils.ParseDay(req.ToDate); err == nil {
			asOf = day
		}
	}

	// Pre-index every in-scope owner's resolved rule set.
	ruleIndex := map[string][]models.RuleItem{}
	indexOwner := func(name string) error {
		key := utils.Normalize(name)
		if key == "" {
			return nil
		}
		if _, done := ruleIndex[key]; done {
			return nil
		}
		items, err := s.resolveCached(ctx, resolver, kind, name, schema.Line, asOf)
		if err != nil {
			return err
		}
		ruleIndex[key] = items
		return nil
	}
	for _, owner := range owners {
		if err := indexOwner(owner); err != nil {
			return nil, err
		}
	}
	for i := range policies {
		if err := indexOwner(ownerOf(&policies[i])); err != nil {
			return nil, err
		}
	}

	results := make([]models.CommissionResult, 0, len(policies))
	for i := range policies {
		policy := &policies[i]
		rules := ruleIndex[utils.Normalize(ownerOf(policy))]
		matched := SelectBestRule(rules, policy, schema)

		row := Compute(matched, policy)
		row.OwnerName = ownerOf(policy)
		results = append(results, row)
	}
	return results, nil
}

// resolveCached resolves an owner's rule items through the Redis cache when
// one is configured. Cache failures are logged and fall through to the store.
func (s *ReportService) resolveCached(ctx context.Context, resolver *Resolver, kind, ownerName, line string, asOf time.Time) ([]models.RuleItem, error) {
	var cacheKey string
	if s.cache != nil {
		cacheKey = "rules:" + kind + ":" + line + ":" + utils.Normalize(ownerName) + ":" + utils.DayOf(asOf).Format(utils.DayFormat)
		if raw, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var items []models.RuleItem
			if json.Unmarshal(raw, &items) == nil {
				return items, nil
			}
		}
	}

	set, err := resolver.Resolve(ctx, ownerName, line, asOf)
	if err != nil {
		return nil, err
	}
	var items []models.RuleItem
	if set != nil {
		items = set.Items
	}

	if s.cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, ruleCacheTTL).Err(); err != nil {
				log.Printf("rule cache write failed for %s: %v", cacheKey, err)
			}
		}
	}
	return items, nil
}
