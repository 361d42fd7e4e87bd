package filter

import (
	"reflect"
	"testing"

	"github.com/SharpHawks/TireShop/internal/models"
)

func TestCompileEmpty(t *testing.T) {
	clause, args := Compile(nil)
	if clause != "" {
		t.Fatalf("expected empty clause, got %q", clause)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestCompileConjunction(t *testing.T) {
	conds := []Condition{
		{"t.code", OpEq, "XL"},
		{"t.noise_level", OpLte, 70},
	}
	clause, args := Compile(conds)

	want := " WHERE t.code = ? AND t.noise_level <= ?"
	if clause != want {
		t.Fatalf("clause mismatch:\n got  %q\n want %q", clause, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"XL", 70}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestTireConditionsEmptyFilters(t *testing.T) {
	conds := TireConditions(models.TireFilters{})
	if len(conds) != 0 {
		t.Fatalf("empty filters must produce no conditions, got %v", conds)
	}
}

func TestTireConditionsSizeComponents(t *testing.T) {
	f := models.TireFilters{Width: "205", Aspect: "55", Diameter: "16"}
	conds := TireConditions(f)

	want := []Condition{
		{"t.size", OpLike, "205/%"},
		{"t.size", OpLike, "%/55R%"},
		{"t.size", OpLike, "%R16"},
	}
	if !reflect.DeepEqual(conds, want) {
		t.Fatalf("size conditions mismatch:\n got  %v\n want %v", conds, want)
	}
}

func TestTireConditionsPartialSize(t *testing.T) {
	f := models.TireFilters{Diameter: "17"}
	conds := TireConditions(f)
	if len(conds) != 1 {
		t.Fatalf("expected 1 condition, got %d", len(conds))
	}
	if conds[0].Arg != "%R17" {
		t.Fatalf("unexpected pattern %v", conds[0].Arg)
	}
}

func TestTireConditionsInStockBothValues(t *testing.T) {
	// An explicit false is a real predicate, unlike an absent field.
	for _, val := range []bool{true, false} {
		v := val
		conds := TireConditions(models.TireFilters{InStock: &v})
		if len(conds) != 1 {
			t.Fatalf("expected 1 condition for inStock=%v", val)
		}
		if conds[0].Column != "t.in_stock" || conds[0].Op != OpEq || conds[0].Arg != val {
			t.Fatalf("unexpected condition %v", conds[0])
		}
	}
}

func TestTireConditionsNoiseIsThreshold(t *testing.T) {
	noise := 71
	conds := TireConditions(models.TireFilters{MaxNoiseLevel: &noise})
	if len(conds) != 1 || conds[0].Op != OpLte {
		t.Fatalf("maxNoiseLevel must compile to <=, got %v", conds)
	}
}

func TestTireConditionsFullSet(t *testing.T) {
	inStock := true
	season := models.SeasonWinter
	noise := 72
	f := models.TireFilters{
		Width:          "225",
		Aspect:         "45",
		Diameter:       "18",
		Code:           "RSC",
		FuelEfficiency: "B",
		WetGrip:        "A",
		InStock:        &inStock,
		ModelSeason:    &season,
		MaxNoiseLevel:  &noise,
	}
	conds := TireConditions(f)
	if len(conds) != 9 {
		t.Fatalf("expected 9 conditions, got %d", len(conds))
	}

	clause, args := Compile(conds)
	if len(args) != 9 {
		t.Fatalf("expected 9 args, got %d", len(args))
	}
	want := " WHERE t.size LIKE ? AND t.size LIKE ? AND t.size LIKE ?" +
		" AND t.code = ? AND t.fuel_efficiency = ? AND t.wet_grip = ?" +
		" AND t.in_stock = ? AND m.season = ? AND t.noise_level <= ?"
	if clause != want {
		t.Fatalf("clause mismatch:\n got  %q\n want %q", clause, want)
	}
}
