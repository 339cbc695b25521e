package apperrors

import (
	"errors"
	"fmt"
	"github.com/QuangTung97/mailing-scheduler/model"
)

// ErrCampaignNotFound ...
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrBatchNotFound ...
var ErrBatchNotFound = errors.New("batch not found")

// ErrIterationWeekNotFound ...
var ErrIterationWeekNotFound = errors.New("campaign iteration week not found")

// ScheduleConfigurationError is returned when dates, frequency or drop weeks are inconsistent
type ScheduleConfigurationError struct {
	Reason string
}

// NewScheduleConfigurationError ...
func NewScheduleConfigurationError(format string, args ...interface{}) *ScheduleConfigurationError {
	return &ScheduleConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ScheduleConfigurationError) Error() string {
	return "schedule configuration: " + e.Reason
}

// InvalidCampaignTargetError is returned when the company or a targeted trade does not exist
type InvalidCampaignTargetError struct {
	Reason string
}

// NewInvalidCampaignTargetError ...
func NewInvalidCampaignTargetError(format string, args ...interface{}) *InvalidCampaignTargetError {
	return &InvalidCampaignTargetError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidCampaignTargetError) Error() string {
	return "invalid campaign target: " + e.Reason
}

// BatchGenerationError wraps a failure while generating the batch of a week.
// Nothing of the failed transaction is persisted, so it can be retried.
type BatchGenerationError struct {
	CampaignID int64
	WeekNumber int
	Err        error
}

// NewBatchGenerationError ...
func NewBatchGenerationError(campaignID int64, weekNumber int, err error) *BatchGenerationError {
	return &BatchGenerationError{
		CampaignID: campaignID,
		WeekNumber: weekNumber,
		Err:        err,
	}
}

func (e *BatchGenerationError) Error() string {
	return fmt.Sprintf("batch generation failed for campaign %d week %d: %v", e.CampaignID, e.WeekNumber, e.Err)
}

// Unwrap ...
func (e *BatchGenerationError) Unwrap() error {
	return e.Err
}

// InvalidLifecycleTransitionError ...
type InvalidLifecycleTransitionError struct {
	Entity    string
	Current   string
	Requested string
}

// NewInvalidLifecycleTransitionError is for an operation not allowed in the current campaign status
func NewInvalidLifecycleTransitionError(
	current model.CampaignStatus, requested string,
) *InvalidLifecycleTransitionError {
	return &InvalidLifecycleTransitionError{
		Entity:    "campaign",
		Current:   current.String(),
		Requested: requested,
	}
}

// NewInvalidBatchTransitionError ...
func NewInvalidBatchTransitionError(current model.BatchStatus, requested string) *InvalidLifecycleTransitionError {
	return &InvalidLifecycleTransitionError{
		Entity:    "batch",
		Current:   current.String(),
		Requested: requested,
	}
}

func (e *InvalidLifecycleTransitionError) Error() string {
	return fmt.Sprintf("can not %s a %s in status %s", e.Requested, e.Entity, e.Current)
}

// ConcurrentGenerationConflictError is returned when another generation of the same campaign is in flight
type ConcurrentGenerationConflictError struct {
	CampaignID int64
}

// NewConcurrentGenerationConflictError ...
func NewConcurrentGenerationConflictError(campaignID int64) *ConcurrentGenerationConflictError {
	return &ConcurrentGenerationConflictError{CampaignID: campaignID}
}

func (e *ConcurrentGenerationConflictError) Error() string {
	return fmt.Sprintf("batch generation of campaign %d is already in progress", e.CampaignID)
}

// IsRetryable reports whether running the same operation later can succeed
func IsRetryable(err error) bool {
	var genErr *BatchGenerationError
	if errors.As(err, &genErr) {
		return true
	}
	var conflictErr *ConcurrentGenerationConflictError
	return errors.As(err, &conflictErr)
}

// Kind is a short label of an error, used in metrics and logs
func Kind(err error) string {
	var (
		scheduleErr   *ScheduleConfigurationError
		targetErr     *InvalidCampaignTargetError
		lifecycleErr  *InvalidLifecycleTransitionError
		conflictErr   *ConcurrentGenerationConflictError
		generationErr *BatchGenerationError
	)

	switch {
	case err == nil:
		return "none"
	case errors.As(err, &scheduleErr):
		return "schedule_configuration"
	case errors.As(err, &targetErr):
		return "invalid_target"
	case errors.As(err, &lifecycleErr):
		return "invalid_transition"
	case errors.As(err, &conflictErr):
		return "conflict"
	case errors.As(err, &generationErr):
		return "generation"
	case errors.Is(err, ErrCampaignNotFound), errors.Is(err, ErrBatchNotFound), errors.Is(err, ErrIterationWeekNotFound):
		return "not_found"
	default:
		return "unknown"
	}
}
