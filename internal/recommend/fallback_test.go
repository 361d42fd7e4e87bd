package recommend

import (
	"testing"

	"github.com/SharpHawks/TireShop/internal/models"
)

func TestFallbackDeterministic(t *testing.T) {
	prefs := models.UserPreferences{DrivingStyle: "comfort", Weather: "mild", Budget: "mid-range"}

	first := Fallback(prefs, testCandidates())
	for i := 0; i < 10; i++ {
		again := Fallback(prefs, testCandidates())
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed from %d to %d", i, len(first), len(again))
		}
		for j := range again {
			if again[j].ID != first[j].ID {
				t.Fatalf("run %d: position %d changed from %d to %d", i, j, first[j].ID, again[j].ID)
			}
		}
	}
}

func TestFallbackNeverExceedsFive(t *testing.T) {
	candidates := make([]models.Tire, 0, 20)
	for i := 1; i <= 20; i++ {
		candidates = append(candidates, models.Tire{
			ID: int64(i), Price: 5000, InStock: true,
			FuelEfficiency: "B", WetGrip: "B", NoiseLevel: 70,
			ModelSeason: models.SeasonSummer,
		})
	}

	got := Fallback(models.UserPreferences{Weather: "dry"}, candidates)
	if len(got) > 5 {
		t.Fatalf("fallback returned %d tires, cap is 5", len(got))
	}
}

func TestFallbackSubsetOfCandidates(t *testing.T) {
	candidates := testCandidates()
	ids := make(map[int64]bool, len(candidates))
	for _, tire := range candidates {
		ids[tire.ID] = true
	}

	got := Fallback(models.UserPreferences{Weather: "snow and ice", Budget: "luxury"}, candidates)
	for _, tire := range got {
		if !ids[tire.ID] {
			t.Errorf("tire %d is not in the candidate set", tire.ID)
		}
	}
}

// The scenario from the product requirements: rainy/snowy weather, economy
// budget, eco driving style.
func TestFallbackSnowEconomyEcoScenario(t *testing.T) {
	prefs := models.UserPreferences{
		Weather:      "rain and snow",
		Budget:       "economy",
		DrivingStyle: "eco",
	}

	got := Fallback(prefs, testCandidates())

	// Winter candidates in the economy bucket [0, 7500): tires 2, 4, 6.
	// Eco ordering by fuel efficiency (A best): 2 (A), 6 (C), 4 (E).
	// In-stock first, stable: 6, 4, then out-of-stock 2.
	wantIDs := []int64{6, 4, 2}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d tires, got %d (%v)", len(wantIDs), len(got), got)
	}
	for i, wantID := range wantIDs {
		if got[i].ID != wantID {
			t.Errorf("position %d: expected tire %d, got %d", i, wantID, got[i].ID)
		}
	}
	for _, tire := range got {
		if tire.ModelSeason != models.SeasonWinter {
			t.Errorf("tire %d is not a winter tire", tire.ID)
		}
		if tire.Price >= 7500 {
			t.Errorf("tire %d price %d outside economy bucket", tire.ID, tire.Price)
		}
	}
}

func TestFallbackSportySortsBestWetGripFirst(t *testing.T) {
	prefs := models.UserPreferences{Weather: "dry heat", DrivingStyle: "sporty", Budget: "luxury"}

	// Summer + luxury bucket: only tire 5 (wet grip A) qualifies; widen the
	// set to check ordering.
	candidates := []models.Tire{
		{ID: 10, WetGrip: "C", Price: 30000, InStock: true, ModelSeason: models.SeasonSummer},
		{ID: 11, WetGrip: "A", Price: 27000, InStock: true, ModelSeason: models.SeasonSummer},
		{ID: 12, WetGrip: "B", Price: 25000, InStock: true, ModelSeason: models.SeasonSummer},
	}

	got := Fallback(prefs, candidates)
	wantIDs := []int64{11, 12, 10}
	if len(got) != 3 {
		t.Fatalf("expected 3 tires, got %d", len(got))
	}
	for i, wantID := range wantIDs {
		if got[i].ID != wantID {
			t.Errorf("position %d: expected tire %d (grip order A,B,C), got %d", i, wantID, got[i].ID)
		}
	}
}

func TestFallbackComfortSortsQuietestFirst(t *testing.T) {
	prefs := models.UserPreferences{Weather: "warm", DrivingStyle: "comfort"}

	candidates := []models.Tire{
		{ID: 20, NoiseLevel: 74, InStock: true, ModelSeason: models.SeasonSummer},
		{ID: 21, NoiseLevel: 66, InStock: true, ModelSeason: models.SeasonSummer},
		{ID: 22, NoiseLevel: 70, InStock: true, ModelSeason: models.SeasonSummer},
	}

	got := Fallback(prefs, candidates)
	wantIDs := []int64{21, 22, 20}
	for i, wantID := range wantIDs {
		if got[i].ID != wantID {
			t.Errorf("position %d: expected tire %d, got %d", i, wantID, got[i].ID)
		}
	}
}

func TestFallbackNormalStyleKeepsOrder(t *testing.T) {
	prefs := models.UserPreferences{Weather: "dry", DrivingStyle: "normal"}

	candidates := []models.Tire{
		{ID: 30, NoiseLevel: 74, WetGrip: "G", FuelEfficiency: "G", InStock: true, ModelSeason: models.SeasonSummer},
		{ID: 31, NoiseLevel: 66, WetGrip: "A", FuelEfficiency: "A", InStock: true, ModelSeason: models.SeasonSummer},
	}

	got := Fallback(prefs, candidates)
	if len(got) != 2 || got[0].ID != 30 || got[1].ID != 31 {
		t.Fatalf("normal style must keep storage order, got %v", got)
	}
}

func TestFallbackInStockFirstIsStable(t *testing.T) {
	prefs := models.UserPreferences{Weather: "dry"}

	candidates := []models.Tire{
		{ID: 40, InStock: false, ModelSeason: models.SeasonSummer},
		{ID: 41, InStock: true, ModelSeason: models.SeasonSummer},
		{ID: 42, InStock: false, ModelSeason: models.SeasonSummer},
		{ID: 43, InStock: true, ModelSeason: models.SeasonSummer},
	}

	got := Fallback(prefs, candidates)
	wantIDs := []int64{41, 43, 40, 42}
	for i, wantID := range wantIDs {
		if got[i].ID != wantID {
			t.Errorf("position %d: expected tire %d, got %d", i, wantID, got[i].ID)
		}
	}
}

func TestFallbackUnknownBudgetAppliesNoPriceFilter(t *testing.T) {
	prefs := models.UserPreferences{Weather: "dry", Budget: "whatever it takes"}

	candidates := []models.Tire{
		{ID: 50, Price: 100, InStock: true, ModelSeason: models.SeasonSummer},
		{ID: 51, Price: 99999, InStock: true, ModelSeason: models.SeasonSummer},
	}

	got := Fallback(prefs, candidates)
	if len(got) != 2 {
		t.Fatalf("unknown budget must not filter by price, got %d tires", len(got))
	}
}

func TestFallbackBudgetBucketEdges(t *testing.T) {
	prefs := models.UserPreferences{Weather: "dry", Budget: "mid-range"}

	candidates := []models.Tire{
		{ID: 60, Price: 7499, InStock: true, ModelSeason: models.SeasonSummer},  // below
		{ID: 61, Price: 7500, InStock: true, ModelSeason: models.SeasonSummer},  // lower edge, in
		{ID: 62, Price: 14999, InStock: true, ModelSeason: models.SeasonSummer}, // top, in
		{ID: 63, Price: 15000, InStock: true, ModelSeason: models.SeasonSummer}, // upper edge, out
	}

	got := Fallback(prefs, candidates)
	if len(got) != 2 || got[0].ID != 61 || got[1].ID != 62 {
		t.Fatalf("bucket edges wrong, got %v", got)
	}
}
