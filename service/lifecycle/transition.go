package lifecycle

import (
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
)

// Action is a requested lifecycle operation on a campaign
type Action string

const (
	// ActionPause ...
	ActionPause Action = "pause"
	// ActionResume ...
	ActionResume Action = "resume"
	// ActionStop ...
	ActionStop Action = "stop"
	// ActionComplete ...
	ActionComplete Action = "complete"
)

var transitions = map[model.CampaignStatus]map[Action]model.CampaignStatus{
	model.CampaignStatusActive: {
		ActionPause:    model.CampaignStatusPaused,
		ActionStop:     model.CampaignStatusStopped,
		ActionComplete: model.CampaignStatusCompleted,
	},
	model.CampaignStatusPaused: {
		ActionResume:   model.CampaignStatusActive,
		ActionStop:     model.CampaignStatusStopped,
		ActionComplete: model.CampaignStatusCompleted,
	},
}

// CheckTransition returns the status reached by applying action to a campaign in status current.
// Stopped and Completed are terminal.
func CheckTransition(current model.CampaignStatus, action Action) (model.CampaignStatus, error) {
	next, ok := transitions[current][action]
	if !ok {
		return current, apperrors.NewInvalidLifecycleTransitionError(current, string(action))
	}
	return next, nil
}
