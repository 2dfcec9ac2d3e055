package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"appcost/internal/models/request_models"
	"appcost/internal/models/response_models"
	"appcost/pkg/utils"
)

type fakeCategoryService struct {
	categories []response_models.CategoryResponse
	err        error
}

func (f fakeCategoryService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	return f.categories, f.err
}

type fakeFeatureService struct {
	got *request_models.ListFeaturesRequest
}

func (f fakeFeatureService) ListFeatures(ctx context.Context, req request_models.ListFeaturesRequest) ([]response_models.FeatureResponse, error) {
	*f.got = req
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return []response_models.FeatureResponse{{ID: 1, Name: "Login", Hours: 2}}, nil
}

type fakeEstimateService struct {
	got *request_models.CalculateCostRequest
}

func (f fakeEstimateService) CalculateCost(ctx context.Context, req request_models.CalculateCostRequest) (response_models.CostEstimateResponse, error) {
	*f.got = req
	if err := req.Validate(); err != nil {
		return response_models.CostEstimateResponse{}, err
	}
	return response_models.CostEstimateResponse{TotalCost: 50}, nil
}

func serve(t *testing.T, method, path string, h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, "/x", h)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestCategoriesController_ListCategories(t *testing.T) {
	ctrl := NewCategoriesController(fakeCategoryService{categories: []response_models.CategoryResponse{{ID: 1, Name: "Mobile"}}})

	rr := serve(t, http.MethodGet, "/x", ctrl.ListCategories)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Body.String() != `[{"id":1,"name":"Mobile"}]` {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestCategoriesController_StoreFailure(t *testing.T) {
	ctrl := NewCategoriesController(fakeCategoryService{err: utils.ErrDatabaseError})

	rr := serve(t, http.MethodGet, "/x", ctrl.ListCategories)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestFeaturesController_BindsCategoryID(t *testing.T) {
	var got request_models.ListFeaturesRequest
	ctrl := NewFeaturesController(fakeFeatureService{got: &got})

	rr := serve(t, http.MethodGet, "/x?category_id=7", ctrl.ListFeatures)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if got.CategoryID != "7" {
		t.Fatalf("bound category id = %q", got.CategoryID)
	}
	if rr.Body.String() != `[{"id":1,"name":"Login","hours":2}]` {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestFeaturesController_MissingCategoryID(t *testing.T) {
	var got request_models.ListFeaturesRequest
	ctrl := NewFeaturesController(fakeFeatureService{got: &got})

	rr := serve(t, http.MethodGet, "/x", ctrl.ListFeatures)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Body.String() != `{"error":"Category ID is required"}` {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestEstimateController_BindsRepeatedFeatures(t *testing.T) {
	var got request_models.CalculateCostRequest
	ctrl := NewEstimateController(fakeEstimateService{got: &got})

	rr := serve(t, http.MethodGet, "/x?category_id=1&features[]=3&features[]=4", ctrl.CalculateCost)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if got.CategoryID != "1" || !reflect.DeepEqual(got.FeatureIDs, []string{"3", "4"}) {
		t.Fatalf("bound request = %+v", got)
	}

	var body map[string]float64
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["total_cost"] != 50 {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestEstimateController_MissingFeatures(t *testing.T) {
	var got request_models.CalculateCostRequest
	ctrl := NewEstimateController(fakeEstimateService{got: &got})

	rr := serve(t, http.MethodGet, "/x?category_id=1", ctrl.CalculateCost)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Body.String() != `{"error":"Both category and features are required"}` {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestHealthController(t *testing.T) {
	up := NewHealthController(func(ctx context.Context) error { return nil })
	down := NewHealthController(func(ctx context.Context) error { return errors.New("refused") })

	if rr := serve(t, http.MethodGet, "/x", up.Live); rr.Code != http.StatusOK {
		t.Fatalf("live status = %d", rr.Code)
	}
	if rr := serve(t, http.MethodGet, "/x", up.Ready); rr.Code != http.StatusOK {
		t.Fatalf("ready status = %d", rr.Code)
	}
	rr := serve(t, http.MethodGet, "/x", down.Ready)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("ready (down) status = %d", rr.Code)
	}
	if rr.Body.String() != `{"error":"Database unavailable"}` {
		t.Fatalf("body = %s", rr.Body.String())
	}
}
