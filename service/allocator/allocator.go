package allocator

import (
	"github.com/QuangTung97/mailing-scheduler/model"
)

// Limits maps a postal code to its maximum number of mailed prospects.
// Postal codes missing from the map are unbounded.
type Limits map[string]int

// Counts maps a postal code to the number of prospects already mailed
type Counts map[string]int

// LimitsFromModel ...
func LimitsFromModel(limits []model.PostalCodeLimit) Limits {
	result := make(Limits, len(limits))
	for _, l := range limits {
		result[l.PostalCode] = l.Limit
	}
	return result
}

// CountByPostalCode ...
func CountByPostalCode(refs []model.ProspectRef) Counts {
	result := Counts{}
	for _, r := range refs {
		result[r.PostalCode]++
	}
	return result
}

// Allocate selects candidates in their given order, a candidate is admitted
// while mailed + selected of its postal code stays below the limit.
func Allocate(candidates []model.ProspectRef, limits Limits, mailed Counts) []model.ProspectRef {
	selected := Counts{}
	result := make([]model.ProspectRef, 0, len(candidates))

	for _, c := range candidates {
		limit, limited := limits[c.PostalCode]
		if limited && mailed[c.PostalCode]+selected[c.PostalCode] >= limit {
			continue
		}
		selected[c.PostalCode]++
		result = append(result, c)
	}
	return result
}
