package recommend

import (
	"sort"
	"strings"

	"github.com/SharpHawks/TireShop/internal/models"
)

// priceRange is a bucket in cents. max < 0 means unbounded above.
type priceRange struct {
	min int
	max int
}

// budgetRanges maps the questionnaire budget categories onto price
// intervals; each bucket is inclusive below and exclusive above.
var budgetRanges = map[string]priceRange{
	"economy":   {min: 0, max: 7500},
	"mid-range": {min: 7500, max: 15000},
	"premium":   {min: 15000, max: 25000},
	"luxury":    {min: 25000, max: -1},
}

// Fallback is the deterministic rule-based recommendation path. Given the
// same preferences and candidate set it always produces the same ordered
// output.
func Fallback(prefs models.UserPreferences, candidates []models.Tire) []models.Tire {
	// 1. Season: any mention of snow means winter tires, otherwise summer.
	season := models.SeasonSummer
	if strings.Contains(strings.ToLower(prefs.Weather), "snow") {
		season = models.SeasonWinter
	}

	result := make([]models.Tire, 0, len(candidates))
	for _, tire := range candidates {
		if tire.ModelSeason != season {
			continue
		}
		result = append(result, tire)
	}

	// 2. Price range from the declared budget category. Unrecognized
	// budgets apply no constraint.
	if bucket, ok := budgetRanges[strings.ToLower(strings.TrimSpace(prefs.Budget))]; ok {
		filtered := result[:0]
		for _, tire := range result {
			if tire.Price < bucket.min {
				continue
			}
			if bucket.max >= 0 && tire.Price >= bucket.max {
				continue
			}
			filtered = append(filtered, tire)
		}
		result = filtered
	}

	// 3. Re-order by driving style. Ratings run A (best) to G, so
	// comparing the letter bytes ascending puts the best rating first.
	switch strings.ToLower(strings.TrimSpace(prefs.DrivingStyle)) {
	case "sporty":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].WetGrip < result[j].WetGrip
		})
	case "eco":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].FuelEfficiency < result[j].FuelEfficiency
		})
	case "comfort":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].NoiseLevel < result[j].NoiseLevel
		})
	}

	// 4. In-stock tires ahead of out-of-stock, keeping relative order.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].InStock && !result[j].InStock
	})

	// 5. Truncate to the shortlist size.
	if len(result) > maxResults {
		result = result[:maxResults]
	}
	return result
}
