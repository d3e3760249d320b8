// services/store.go
package services

import (
	"context"
	"time"

	"github.com/skandpro/insurcomm_backend/models"
)

// RuleStore is the durable per-owner, per-effective-date rule-set storage the
// engine runs against. Lookups return (nil, nil) when no document exists;
// absence is an ordinary outcome, not an error.
type RuleStore interface {
	FindExact(ctx context.Context, ownerKey, line string, date time.Time) (*models.RuleSet, error)
	FindLatestOnOrBefore(ctx context.Context, ownerKey, line string, asOf time.Time) (*models.RuleSet, error)
	FindLatest(ctx context.Context, ownerKey, line string) (*models.RuleSet, error)
	// Save upserts the whole document keyed by (ownerKey, line, effectiveDate).
	Save(ctx context.Context, set *models.RuleSet) error
	Delete(ctx context.Context, ownerKey, line string, date time.Time) error
}

// OwnerDirectory enumerates active rule owners of one kind. The apply-to-all
// fan-out discovers its targets through this, never by scanning storage.
type OwnerDirectory interface {
	ListActiveOwners(ctx context.Context, kind string) ([]string, error)
}

// PolicyStore feeds report generation. scopeField selects which owner column
// ("dealerName" or "partnerName") the request's scope filters on.
type PolicyStore interface {
	FindForReport(ctx context.Context, req models.ReportRequest, scopeField string, owners []string) ([]models.PolicyEntry, error)
}
