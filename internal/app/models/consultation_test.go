package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsultationStatusTransitions(t *testing.T) {
	t.Run("happy path through the full lifecycle", func(t *testing.T) {
		path := []ConsultationStatus{
			ConsultationStatusDraft,
			ConsultationStatusPaymentPending,
			ConsultationStatusPaymentConfirmed,
			ConsultationStatusClinicalAssessmentPending,
			ConsultationStatusClinicalAssessmentComplete,
			ConsultationStatusDoctorAssigned,
			ConsultationStatusInProgress,
			ConsultationStatusCompleted,
		}
		for i := 0; i < len(path)-1; i++ {
			assert.True(t, path[i].CanTransitionTo(path[i+1]), "%s -> %s should be allowed", path[i], path[i+1])
		}
	})

	t.Run("unassigned consultations park for manual review", func(t *testing.T) {
		assert.True(t, ConsultationStatusClinicalAssessmentComplete.CanTransitionTo(ConsultationStatusDoctorReviewPending))
		assert.True(t, ConsultationStatusDoctorReviewPending.CanTransitionTo(ConsultationStatusDoctorAssigned))
		assert.True(t, ConsultationStatusDoctorReviewPending.CanTransitionTo(ConsultationStatusCancelled))
	})

	t.Run("skipping stages is rejected", func(t *testing.T) {
		assert.False(t, ConsultationStatusDraft.CanTransitionTo(ConsultationStatusPaymentConfirmed))
		assert.False(t, ConsultationStatusPaymentPending.CanTransitionTo(ConsultationStatusInProgress))
		assert.False(t, ConsultationStatusClinicalAssessmentPending.CanTransitionTo(ConsultationStatusCompleted))
	})

	t.Run("terminal states have no exits", func(t *testing.T) {
		for _, status := range []ConsultationStatus{
			ConsultationStatusCompleted,
			ConsultationStatusCancelled,
			ConsultationStatusExpired,
			ConsultationStatusRefunded,
		} {
			assert.True(t, status.IsTerminal(), "%s should be terminal", status)
			assert.False(t, status.CanTransitionTo(ConsultationStatusInProgress))
		}
	})

	t.Run("on hold can resume or cancel only", func(t *testing.T) {
		assert.True(t, ConsultationStatusOnHold.CanTransitionTo(ConsultationStatusInProgress))
		assert.True(t, ConsultationStatusOnHold.CanTransitionTo(ConsultationStatusCancelled))
		assert.False(t, ConsultationStatusOnHold.CanTransitionTo(ConsultationStatusCompleted))
	})

	t.Run("refund is only allowed before the assessment starts", func(t *testing.T) {
		assert.True(t, ConsultationStatusPaymentConfirmed.CanTransitionTo(ConsultationStatusRefunded))
		assert.False(t, ConsultationStatusInProgress.CanTransitionTo(ConsultationStatusRefunded))
	})
}

func TestConsultationStatusIsValid(t *testing.T) {
	assert.True(t, ConsultationStatusDraft.IsValid())
	assert.True(t, ConsultationStatusRefunded.IsValid())
	assert.False(t, ConsultationStatus("archived").IsValid())
	assert.False(t, ConsultationStatus("").IsValid())
}

func TestConsultationDraftExpiry(t *testing.T) {
	now := time.Now()
	draft := &ConsultationDraft{ExpiresAt: now.Add(30 * time.Minute)}

	assert.False(t, draft.IsExpired(now))
	assert.False(t, draft.IsExpired(now.Add(30*time.Minute)))
	assert.True(t, draft.IsExpired(now.Add(31*time.Minute)))
}

func TestPaymentRecordExpiry(t *testing.T) {
	now := time.Now()
	record := &PaymentRecord{ExpiresAt: now.Add(15 * time.Minute)}

	assert.False(t, record.IsExpired(now))
	assert.True(t, record.IsExpired(now.Add(16*time.Minute)))
}
