package lifecycle

import (
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCheckTransition(t *testing.T) {
	table := []struct {
		name    string
		current model.CampaignStatus
		action  Action

		next model.CampaignStatus
		ok   bool
	}{
		{name: "active-pause", current: model.CampaignStatusActive, action: ActionPause, next: model.CampaignStatusPaused, ok: true},
		{name: "active-resume", current: model.CampaignStatusActive, action: ActionResume},
		{name: "active-stop", current: model.CampaignStatusActive, action: ActionStop, next: model.CampaignStatusStopped, ok: true},
		{name: "active-complete", current: model.CampaignStatusActive, action: ActionComplete, next: model.CampaignStatusCompleted, ok: true},

		{name: "paused-pause", current: model.CampaignStatusPaused, action: ActionPause},
		{name: "paused-resume", current: model.CampaignStatusPaused, action: ActionResume, next: model.CampaignStatusActive, ok: true},
		{name: "paused-stop", current: model.CampaignStatusPaused, action: ActionStop, next: model.CampaignStatusStopped, ok: true},
		{name: "paused-complete", current: model.CampaignStatusPaused, action: ActionComplete, next: model.CampaignStatusCompleted, ok: true},

		{name: "stopped-pause", current: model.CampaignStatusStopped, action: ActionPause},
		{name: "stopped-resume", current: model.CampaignStatusStopped, action: ActionResume},
		{name: "stopped-stop", current: model.CampaignStatusStopped, action: ActionStop},
		{name: "stopped-complete", current: model.CampaignStatusStopped, action: ActionComplete},

		{name: "completed-pause", current: model.CampaignStatusCompleted, action: ActionPause},
		{name: "completed-resume", current: model.CampaignStatusCompleted, action: ActionResume},
		{name: "completed-stop", current: model.CampaignStatusCompleted, action: ActionStop},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			next, err := CheckTransition(e.current, e.action)
			if e.ok {
				assert.Equal(t, nil, err)
				assert.Equal(t, e.next, next)
				return
			}
			assert.Equal(t, apperrors.NewInvalidLifecycleTransitionError(e.current, string(e.action)), err)
			assert.Equal(t, e.current, next)
		})
	}
}
