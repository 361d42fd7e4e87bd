package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func filterContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/tires?"+query, nil)
	return c
}

func TestParseTireFiltersEmpty(t *testing.T) {
	filters, err := parseTireFilters(filterContext(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filters.Width != "" || filters.InStock != nil || filters.ModelSeason != nil || filters.MaxNoiseLevel != nil {
		t.Fatalf("expected zero-value filters, got %+v", filters)
	}
}

func TestParseTireFiltersFull(t *testing.T) {
	c := filterContext(t, "width=205&aspect=55&diameter=16&code=XL&fuelEfficiency=A&wetGrip=B&inStock=true&modelSeason=2&maxNoiseLevel=71")
	filters, err := parseTireFilters(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filters.Width != "205" || filters.Aspect != "55" || filters.Diameter != "16" {
		t.Errorf("size components mismatch: %+v", filters)
	}
	if filters.InStock == nil || !*filters.InStock {
		t.Errorf("expected inStock=true")
	}
	if filters.ModelSeason == nil || *filters.ModelSeason != 2 {
		t.Errorf("expected modelSeason=2")
	}
	if filters.MaxNoiseLevel == nil || *filters.MaxNoiseLevel != 71 {
		t.Errorf("expected maxNoiseLevel=71")
	}
}

func TestParseTireFiltersInStockLiterals(t *testing.T) {
	filters, err := parseTireFilters(filterContext(t, "inStock=false"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filters.InStock == nil || *filters.InStock {
		t.Fatalf("expected explicit inStock=false")
	}

	if _, err := parseTireFilters(filterContext(t, "inStock=yes")); err == nil {
		t.Fatalf("expected error for non-literal boolean")
	}
}

func TestParseTireFiltersRejectsBadInput(t *testing.T) {
	bad := []string{
		"width=wide",
		"aspect=low",
		"diameter=big",
		"fuelEfficiency=H",
		"wetGrip=AB",
		"modelSeason=3",
		"modelSeason=summer",
		"maxNoiseLevel=loud",
		"maxNoiseLevel=-1",
	}
	for _, query := range bad {
		if _, err := parseTireFilters(filterContext(t, query)); err == nil {
			t.Errorf("expected error for %q", query)
		}
	}
}
