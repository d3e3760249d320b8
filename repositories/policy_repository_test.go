package repositories

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/utils"
)

func TestRenewalFilter(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)

	tests := []struct {
		name string
		req  models.RenewalsRequest
		want bson.M
	}{
		{
			name: "window matches either cover end date",
			req:  models.RenewalsRequest{Line: "motor", FromDate: "2026-09-01", ToDate: "2026-09-30"},
			want: bson.M{
				"line": "motor",
				"$or": []bson.M{
					{"odEndDate": bson.M{"$gte": from, "$lte": to}},
					{"tpEndDate": bson.M{"$gte": from, "$lte": to}},
				},
			},
		},
		{
			name: "open-ended window",
			req:  models.RenewalsRequest{FromDate: "2026-09-01"},
			want: bson.M{
				"$or": []bson.M{
					{"odEndDate": bson.M{"$gte": from}},
					{"tpEndDate": bson.M{"$gte": from}},
				},
			},
		},
		{
			name: "dealer partner and company scope",
			req:  models.RenewalsRequest{Dealer: "Sharma Motors", Partner: "Agrawal Insurance", Company: "HDFC"},
			want: bson.M{
				"dealerName":  "Sharma Motors",
				"partnerName": "Agrawal Insurance",
				"insCompany":  "HDFC",
			},
		},
		{
			name: "line is normalized",
			req:  models.RenewalsRequest{Line: " Motor "},
			want: bson.M{"line": "motor"},
		},
		{
			name: "no filters",
			req:  models.RenewalsRequest{},
			want: bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renewalFilter(tt.req)
			if err != nil {
				t.Fatalf("renewalFilter() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("renewalFilter() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestRenewalFilterBadDate(t *testing.T) {
	for _, bad := range []models.RenewalsRequest{
		{FromDate: "01-09-2026"},
		{ToDate: "2026/09/30"},
	} {
		if _, err := renewalFilter(bad); !errors.Is(err, utils.ErrBadDate) {
			t.Errorf("renewalFilter(%+v) error = %v, want ErrBadDate", bad, err)
		}
	}
}
