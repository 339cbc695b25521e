package planner

import (
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
	"sort"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// PausedInterval is a pause of a campaign, an open interval has no resume time
type PausedInterval struct {
	PausedAt  time.Time
	ResumedAt time.Time
	Open      bool
}

// Input ...
type Input struct {
	StartDate      time.Time
	EndDate        time.Time
	FrequencyWeeks int
	DropWeeks      model.DropWeeks
	Pauses         []PausedInterval
}

// PlannedWeek ...
type PlannedWeek struct {
	StartDate time.Time
	EndDate   time.Time

	// Skipped weeks fall inside a pause, the remaining fields are zero for them
	Skipped bool

	WeekNumber      int
	IterationNumber int
	WeekInIteration int
	IsMailingWeek   bool
}

// StartOfWeek returns the Monday 00:00 UTC of the week containing t
func StartOfWeek(t time.Time) time.Time {
	t = t.UTC()
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// AlignToWeek returns t if it is exactly a Monday 00:00 UTC, otherwise the next Monday
func AlignToWeek(t time.Time) time.Time {
	monday := StartOfWeek(t)
	if monday.Equal(t) {
		return monday
	}
	return monday.AddDate(0, 0, 7)
}

// PausedWeeks is the number of whole weeks removed from the schedule by a pause.
// Pausing and resuming inside the same week removes nothing.
// Weeks before the first week of the campaign are never counted.
func PausedWeeks(campaignStart time.Time, pausedAt time.Time, resumedAt time.Time) int {
	begin := AlignToWeek(pausedAt)
	if first := StartOfWeek(campaignStart); begin.Before(first) {
		begin = first
	}
	end := AlignToWeek(resumedAt)
	if !end.After(begin) {
		return 0
	}
	return int(end.Sub(begin) / week)
}

// DefaultDropWeeks mails on the first week of every iteration
func DefaultDropWeeks() model.DropWeeks {
	return model.DropWeeks{1}
}

// Validate checks the schedule configuration of a campaign
func Validate(input Input) error {
	if input.FrequencyWeeks < 1 {
		return apperrors.NewScheduleConfigurationError(
			"mailing frequency must be at least 1 week, got %d", input.FrequencyWeeks)
	}
	if input.EndDate.Before(input.StartDate) {
		return apperrors.NewScheduleConfigurationError("end date is before start date")
	}
	for _, w := range input.DropWeeks {
		if w < 1 || w > input.FrequencyWeeks {
			return apperrors.NewScheduleConfigurationError(
				"drop week %d is outside of 1..%d", w, input.FrequencyWeeks)
		}
	}
	return validatePauses(input.Pauses)
}

func validatePauses(pauses []PausedInterval) error {
	sorted := make([]PausedInterval, len(pauses))
	copy(sorted, pauses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PausedAt.Before(sorted[j].PausedAt)
	})

	for i, p := range sorted {
		if p.Open {
			if i != len(sorted)-1 {
				return apperrors.NewScheduleConfigurationError("an open pause must be the last one")
			}
			continue
		}
		if p.ResumedAt.Before(p.PausedAt) {
			return apperrors.NewScheduleConfigurationError("pause is resumed before it is paused")
		}
		if i+1 < len(sorted) && sorted[i+1].PausedAt.Before(p.ResumedAt) {
			return apperrors.NewScheduleConfigurationError("paused intervals overlap")
		}
	}
	return nil
}

func isSkipped(monday time.Time, pauses []PausedInterval) bool {
	for _, p := range pauses {
		begin := AlignToWeek(p.PausedAt)
		if monday.Before(begin) {
			continue
		}
		if p.Open {
			return true
		}
		if monday.Before(AlignToWeek(p.ResumedAt)) {
			return true
		}
	}
	return false
}

// PlanWeeks computes the Monday to Sunday weeks between start and end date.
// Weeks inside a pause are returned with Skipped = true and are not numbered.
func PlanWeeks(input Input) ([]PlannedWeek, error) {
	if len(input.DropWeeks) == 0 {
		input.DropWeeks = DefaultDropWeeks()
	}
	if err := Validate(input); err != nil {
		return nil, err
	}

	last := StartOfWeek(input.EndDate)

	var result []PlannedWeek
	number := 0
	for monday := StartOfWeek(input.StartDate); !monday.After(last); monday = monday.AddDate(0, 0, 7) {
		planned := PlannedWeek{
			StartDate: monday,
			EndDate:   monday.AddDate(0, 0, 6),
		}

		if isSkipped(monday, input.Pauses) {
			planned.Skipped = true
			result = append(result, planned)
			continue
		}

		number++
		planned.WeekNumber = number
		planned.IterationNumber = (number-1)/input.FrequencyWeeks + 1
		planned.WeekInIteration = (number-1)%input.FrequencyWeeks + 1
		planned.IsMailingWeek = input.DropWeeks.Contains(planned.WeekInIteration)

		result = append(result, planned)
	}
	return result, nil
}

// CountWeeks returns the number of Mondays from the week of start to the week of end
func CountWeeks(startDate time.Time, endDate time.Time) int {
	first := StartOfWeek(startDate)
	last := StartOfWeek(endDate)
	if last.Before(first) {
		return 0
	}
	return int(last.Sub(first)/week) + 1
}

// ToIterationWeeks converts non-skipped planned weeks to rows of a campaign
func ToIterationWeeks(campaignID int64, planned []PlannedWeek) []model.CampaignIterationWeek {
	result := make([]model.CampaignIterationWeek, 0, len(planned))
	for _, p := range planned {
		if p.Skipped {
			continue
		}
		result = append(result, model.CampaignIterationWeek{
			CampaignID:      campaignID,
			WeekNumber:      p.WeekNumber,
			IterationNumber: p.IterationNumber,
			WeekInIteration: p.WeekInIteration,
			StartDate:       p.StartDate,
			EndDate:         p.EndDate,
			IsMailingWeek:   p.IsMailingWeek,
		})
	}
	return result
}

// FromCampaign builds the planner input of a campaign and its pauses
func FromCampaign(campaign model.Campaign, pauses []model.CampaignPause) Input {
	intervals := make([]PausedInterval, 0, len(pauses))
	for _, p := range pauses {
		intervals = append(intervals, PausedInterval{
			PausedAt:  p.PausedAt,
			ResumedAt: p.ResumedAt.Time,
			Open:      !p.ResumedAt.Valid,
		})
	}
	return Input{
		StartDate:      campaign.StartDate,
		EndDate:        campaign.EndDate,
		FrequencyWeeks: campaign.MailingFrequencyWeeks,
		DropWeeks:      campaign.MailingDropWeeks,
		Pauses:         intervals,
	}
}
