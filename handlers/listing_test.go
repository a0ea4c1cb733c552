package handlers

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"webimmo/models"

	"github.com/gin-gonic/gin"
)

func criteriaForQuery(t *testing.T, query string) models.SearchCriteria {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/houses/search?"+query, nil)
	return parseCriteria(c)
}

func TestParseCriteriaDefaults(t *testing.T) {
	got := criteriaForQuery(t, "")
	want := models.DefaultCriteria()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("empty query must yield the permissive defaults:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestParseCriteriaFullQuery(t *testing.T) {
	got := criteriaForQuery(t,
		"location=Lyon&maxPrice=450000&minSize=80&minRooms=4&minBedrooms=2&minBathrooms=1"+
			"&types=house,apartment&amenities=garden,%20garage&condition=available")

	if got.Location != "Lyon" {
		t.Fatalf("expected location Lyon, got %q", got.Location)
	}
	if got.MaxPrice != 450000 || got.MinSize != 80 {
		t.Fatalf("price/size bounds not parsed: %+v", got)
	}
	if got.MinRooms != 4 || got.MinBedrooms != 2 || got.MinBathrooms != 1 {
		t.Fatalf("room minimums not parsed: %+v", got)
	}
	if !reflect.DeepEqual(got.PropertyTypes, []string{"house", "apartment"}) {
		t.Fatalf("types not split, got %v", got.PropertyTypes)
	}
	if !reflect.DeepEqual(got.Amenities, []string{"garden", "garage"}) {
		t.Fatalf("amenities should be trimmed, got %v", got.Amenities)
	}
	if got.Condition != models.ConditionAvailable {
		t.Fatalf("expected condition available, got %q", got.Condition)
	}
}

func TestParseCriteriaMalformedNumberKeepsDefault(t *testing.T) {
	got := criteriaForQuery(t, "maxPrice=beaucoup")
	if got.MaxPrice != models.MaxPriceCeiling {
		t.Fatalf("a malformed bound must fall back to the default, got %v", got.MaxPrice)
	}
}
