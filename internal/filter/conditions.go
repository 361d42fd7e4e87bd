package filter

import (
	"strings"

	"github.com/SharpHawks/TireShop/internal/models"
)

// Op is a SQL comparison operator for a single condition.
type Op string

const (
	OpEq   Op = "="
	OpLte  Op = "<="
	OpLike Op = "LIKE"
)

// Condition is one (column, operator, value) predicate. A filter request
// compiles to a conjunction of these.
type Condition struct {
	Column string
	Op     Op
	Arg    interface{}
}

// Compile turns a list of conditions into a WHERE clause with '?'
// placeholders plus the matching argument slice. An empty list compiles
// to an empty clause (no WHERE at all).
func Compile(conds []Condition) (string, []interface{}) {
	if len(conds) == 0 {
		return "", nil
	}

	var clause strings.Builder
	args := make([]interface{}, 0, len(conds))

	clause.WriteString(" WHERE ")
	for i, cond := range conds {
		if i > 0 {
			clause.WriteString(" AND ")
		}
		clause.WriteString(cond.Column)
		clause.WriteString(" ")
		clause.WriteString(string(cond.Op))
		clause.WriteString(" ?")
		args = append(args, cond.Arg)
	}

	return clause.String(), args
}

// TireConditions translates the optional tire filters into predicates over
// the tires/models join ('t' and 'm' aliases). Absent fields contribute
// nothing, so adding a filter value can only shrink the result set.
func TireConditions(f models.TireFilters) []Condition {
	var conds []Condition

	// Size components match against the 'W/AR D' string piecewise, so each
	// one can be filtered independently of the others.
	if f.Width != "" {
		conds = append(conds, Condition{"t.size", OpLike, f.Width + "/%"})
	}
	if f.Aspect != "" {
		conds = append(conds, Condition{"t.size", OpLike, "%/" + f.Aspect + "R%"})
	}
	if f.Diameter != "" {
		conds = append(conds, Condition{"t.size", OpLike, "%R" + f.Diameter})
	}

	if f.Code != "" {
		conds = append(conds, Condition{"t.code", OpEq, f.Code})
	}
	if f.FuelEfficiency != "" {
		conds = append(conds, Condition{"t.fuel_efficiency", OpEq, f.FuelEfficiency})
	}
	if f.WetGrip != "" {
		conds = append(conds, Condition{"t.wet_grip", OpEq, f.WetGrip})
	}

	if f.InStock != nil {
		conds = append(conds, Condition{"t.in_stock", OpEq, *f.InStock})
	}
	if f.ModelSeason != nil {
		conds = append(conds, Condition{"m.season", OpEq, *f.ModelSeason})
	}

	// Noise is a ceiling, not an exact value.
	if f.MaxNoiseLevel != nil {
		conds = append(conds, Condition{"t.noise_level", OpLte, *f.MaxNoiseLevel})
	}

	return conds
}
