package sessionstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	sessionStoreInstance contracts.SessionStore
	onceSessionStore     sync.Once
)

type sessionStore struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

// NewSessionStore keeps consultation drafts and payment records in Redis.
// Expiry is delegated to Redis TTLs, so an absent key and an expired draft
// are the same condition for callers.
func NewSessionStore(repo contracts.RedisRepository, logger *zap.Logger) contracts.SessionStore {
	onceSessionStore.Do(func() {
		instance := &sessionStore{
			redisRepo: repo,
			Log:       logger,
		}
		sessionStoreInstance = instance
	})
	return sessionStoreInstance
}

// SaveDraft writes the draft under its session key and a patient pointer key
// with the same TTL, so the patient's current draft can be found without
// knowing its session.
func (s *sessionStore) SaveDraft(ctx context.Context, draft *models.ConsultationDraft, ttl time.Duration) error {
	key := fmt.Sprintf(constvars.RedisKeyConsultationDraftFormat, draft.SessionID)
	if err := s.redisRepo.Set(ctx, key, draft, ttl); err != nil {
		return err
	}

	pointerKey := fmt.Sprintf(constvars.RedisKeyPatientDraftFormat, draft.PatientID)
	return s.redisRepo.Set(ctx, pointerKey, draft.SessionID, ttl)
}

func (s *sessionStore) GetDraft(ctx context.Context, sessionID string) (*models.ConsultationDraft, error) {
	key := fmt.Sprintf(constvars.RedisKeyConsultationDraftFormat, sessionID)
	data, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	draft := new(models.ConsultationDraft)
	if err := json.Unmarshal([]byte(data), draft); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return draft, nil
}

func (s *sessionStore) GetDraftByPatientID(ctx context.Context, patientID string) (*models.ConsultationDraft, error) {
	pointerKey := fmt.Sprintf(constvars.RedisKeyPatientDraftFormat, patientID)
	data, err := s.redisRepo.Get(ctx, pointerKey)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var sessionID string
	if err := json.Unmarshal([]byte(data), &sessionID); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return s.GetDraft(ctx, sessionID)
}

func (s *sessionStore) DeleteDraft(ctx context.Context, sessionID string) error {
	draft, err := s.GetDraft(ctx, sessionID)
	if err == nil && draft != nil {
		pointerKey := fmt.Sprintf(constvars.RedisKeyPatientDraftFormat, draft.PatientID)
		if delErr := s.redisRepo.Delete(ctx, pointerKey); delErr != nil {
			s.Log.Warn("sessionStore.DeleteDraft failed removing patient pointer",
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(delErr),
			)
		}
	}

	key := fmt.Sprintf(constvars.RedisKeyConsultationDraftFormat, sessionID)
	return s.redisRepo.Delete(ctx, key)
}

func (s *sessionStore) SavePaymentRecord(ctx context.Context, record *models.PaymentRecord, ttl time.Duration) error {
	key := fmt.Sprintf(constvars.RedisKeyPaymentRecordFormat, record.PaymentID)
	return s.redisRepo.Set(ctx, key, record, ttl)
}

func (s *sessionStore) GetPaymentRecord(ctx context.Context, paymentID string) (*models.PaymentRecord, error) {
	key := fmt.Sprintf(constvars.RedisKeyPaymentRecordFormat, paymentID)
	data, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	record := new(models.PaymentRecord)
	if err := json.Unmarshal([]byte(data), record); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return record, nil
}

func (s *sessionStore) DeletePaymentRecord(ctx context.Context, paymentID string) error {
	key := fmt.Sprintf(constvars.RedisKeyPaymentRecordFormat, paymentID)
	return s.redisRepo.Delete(ctx, key)
}
