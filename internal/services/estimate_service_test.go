package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"appcost/internal/models/request_models"
	"appcost/pkg/utils"
)

func TestEstimateService_CalculateCost(t *testing.T) {
	tests := []struct {
		name     string
		features []string
		want     float64
	}{
		{"two features", []string{"1", "2"}, 50},
		{"unknown ids are ignored", []string{"1", "404"}, 20},
		{"only unknown ids", []string{"404"}, 0},
		{"features from another category still count", []string{"1", "3"}, 100},
		{"duplicated ids count once", []string{"2", "2"}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEstimateService(newFeatureRepo(), zap.NewNop())

			got, err := svc.CalculateCost(context.Background(), request_models.CalculateCostRequest{
				CategoryID: "1",
				FeatureIDs: tt.features,
			})
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.TotalCost != tt.want {
				t.Errorf("total_cost = %v, want %v", got.TotalCost, tt.want)
			}
		})
	}
}

func TestEstimateService_CategoryIDIsOnlyCheckedForPresence(t *testing.T) {
	svc := NewEstimateService(newFeatureRepo(), zap.NewNop())

	got, err := svc.CalculateCost(context.Background(), request_models.CalculateCostRequest{
		CategoryID: "not-a-number",
		FeatureIDs: []string{"1"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.TotalCost != 20 {
		t.Fatalf("total_cost = %v, want 20", got.TotalCost)
	}
}

func TestEstimateService_CalculateCostIsIdempotent(t *testing.T) {
	svc := NewEstimateService(newFeatureRepo(), zap.NewNop())
	req := request_models.CalculateCostRequest{CategoryID: "1", FeatureIDs: []string{"1", "2"}}

	first, err := svc.CalculateCost(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := svc.CalculateCost(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first != second {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}

func TestEstimateService_CalculateCostErrors(t *testing.T) {
	tests := []struct {
		name    string
		repo    *fakeFeatureRepo
		req     request_models.CalculateCostRequest
		wantErr error
	}{
		{"missing features", newFeatureRepo(), request_models.CalculateCostRequest{CategoryID: "1"}, utils.ErrCategoryAndFeaturesRequired},
		{"missing category", newFeatureRepo(), request_models.CalculateCostRequest{FeatureIDs: []string{"1"}}, utils.ErrCategoryAndFeaturesRequired},
		{"malformed feature id", newFeatureRepo(), request_models.CalculateCostRequest{CategoryID: "1", FeatureIDs: []string{"x"}}, utils.ErrMalformedID},
		{"store failure", &fakeFeatureRepo{err: errors.New("down")}, request_models.CalculateCostRequest{CategoryID: "1", FeatureIDs: []string{"1"}}, utils.ErrDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEstimateService(tt.repo, zap.NewNop())
			if _, err := svc.CalculateCost(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
