package allocator

import (
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

func refs(postalCodes ...string) []model.ProspectRef {
	result := make([]model.ProspectRef, 0, len(postalCodes))
	for i, p := range postalCodes {
		result = append(result, model.ProspectRef{ID: int64(i + 1), PostalCode: p})
	}
	return result
}

func ids(refs []model.ProspectRef) []int64 {
	result := make([]int64, 0, len(refs))
	for _, r := range refs {
		result = append(result, r.ID)
	}
	return result
}

func TestAllocate__Scenario_A_B_C(t *testing.T) {
	candidates := refs("A", "A", "A", "A", "B", "B", "B", "C", "C", "C")
	limits := Limits{"A": 2, "B": 1}

	result := Allocate(candidates, limits, Counts{})
	assert.Equal(t, []int64{1, 2, 5, 8, 9, 10}, ids(result))
}

func TestAllocate__With_Mailed_Counts(t *testing.T) {
	candidates := refs("A", "A", "B", "C")
	limits := Limits{"A": 2, "B": 1}

	result := Allocate(candidates, limits, Counts{"A": 1, "B": 1})
	assert.Equal(t, []int64{1, 4}, ids(result))
}

func TestAllocate__Already_Over_Limit(t *testing.T) {
	result := Allocate(refs("A", "A"), Limits{"A": 1}, Counts{"A": 3})
	assert.Equal(t, []int64{}, ids(result))
}

func TestAllocate__Zero_Limit_And_Empty(t *testing.T) {
	result := Allocate(refs("A", "B"), Limits{"A": 0}, nil)
	assert.Equal(t, []int64{2}, ids(result))

	result = Allocate(nil, Limits{"A": 1}, nil)
	assert.Equal(t, []model.ProspectRef{}, result)
}

func TestAllocate__Preserves_Order_And_Never_Exceeds(t *testing.T) {
	candidates := refs("B", "A", "B", "A", "A", "B", "C")
	limits := Limits{"A": 2, "B": 2}

	result := Allocate(candidates, limits, Counts{})
	assert.Equal(t, []int64{1, 2, 3, 4, 7}, ids(result))

	counts := CountByPostalCode(result)
	for code, limit := range limits {
		assert.LessOrEqual(t, counts[code], limit)
	}
}

func TestLimitsFromModel(t *testing.T) {
	limits := LimitsFromModel([]model.PostalCodeLimit{
		{CampaignID: 1, PostalCode: "90210", Limit: 2},
		{CampaignID: 1, PostalCode: "10001", Limit: 0},
	})
	assert.Equal(t, Limits{"90210": 2, "10001": 0}, limits)
}
