package shifts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/config"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/responses"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	doctorShiftUsecaseInstance contracts.DoctorShiftUsecase
	onceDoctorShiftUsecase     sync.Once
)

type doctorShiftUsecase struct {
	DoctorShiftRepository contracts.DoctorShiftRepository
	RedisRepository       contracts.RedisRepository
	AuditSink             contracts.AuditSink
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	Location              *time.Location
}

func NewDoctorShiftUsecase(
	doctorShiftRepository contracts.DoctorShiftRepository,
	redisRepository contracts.RedisRepository,
	auditSink contracts.AuditSink,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorShiftUsecase {
	onceDoctorShiftUsecase.Do(func() {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			logger.Warn("doctorShiftUsecase falling back to UTC",
				zap.String("timezone", internalConfig.App.Timezone),
				zap.Error(err),
			)
			location = time.UTC
		}
		doctorShiftUsecaseInstance = &doctorShiftUsecase{
			DoctorShiftRepository: doctorShiftRepository,
			RedisRepository:       redisRepository,
			AuditSink:             auditSink,
			InternalConfig:        internalConfig,
			Log:                   logger,
			Location:              location,
		}
	})
	return doctorShiftUsecaseInstance
}

// GetCurrentDoctor resolves the on-duty doctor for the given instant. Results
// are cached briefly in Redis since payment confirmation calls this on the hot
// path.
func (uc *doctorShiftUsecase) GetCurrentDoctor(ctx context.Context, at time.Time) (*responses.CurrentDoctor, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyActiveDoctor)
	if err != nil {
		uc.Log.Warn("doctorShiftUsecase cache read failed", zap.Error(err))
	}
	if cached != "" {
		var current responses.CurrentDoctor
		if err := json.Unmarshal([]byte(cached), &current); err == nil {
			current.FromCache = true
			return &current, nil
		}
	}

	shifts, err := uc.DoctorShiftRepository.FindActiveShifts(ctx)
	if err != nil {
		return nil, err
	}

	hour := at.In(uc.Location).Hour()
	var matched *models.DoctorShift
	for i := range shifts {
		if !shifts[i].Covers(hour) {
			continue
		}
		if matched == nil {
			matched = &shifts[i]
			continue
		}
		uc.Log.Warn("overlapping active shifts, keeping first match",
			zap.String("kept_shift_id", matched.ShiftID),
			zap.String("ignored_shift_id", shifts[i].ShiftID),
			zap.Int("hour", hour),
		)
	}
	if matched == nil {
		return nil, exceptions.ErrNoActiveShift(fmt.Errorf("no active shift covers hour %d", hour))
	}

	current := &responses.CurrentDoctor{
		DoctorID:  matched.DoctorID,
		ShiftID:   matched.ShiftID,
		ShiftType: matched.ShiftType,
	}

	cacheTTL := time.Duration(uc.InternalConfig.DoctorShift.ActiveDoctorCacheTimeInSeconds) * time.Second
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyActiveDoctor, current, cacheTTL); err != nil {
		uc.Log.Warn("doctorShiftUsecase cache write failed", zap.Error(err))
	}

	return current, nil
}

// RefreshCurrentDoctor drops the cached entry and re-resolves. Admins call
// this after an out-of-band roster change.
func (uc *doctorShiftUsecase) RefreshCurrentDoctor(ctx context.Context, at time.Time) (*responses.CurrentDoctor, error) {
	uc.invalidateCache(ctx)
	return uc.GetCurrentDoctor(ctx, at)
}

func (uc *doctorShiftUsecase) CreateShift(ctx context.Context, session *models.Session, request *requests.CreateDoctorShift) (*responses.DoctorShift, error) {
	count, err := uc.DoctorShiftRepository.CountShifts(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	shift := &models.DoctorShift{
		ShiftID:   utils.GenerateShiftID(),
		ShiftType: request.ShiftType,
		DoctorID:  request.DoctorID,
		StartHour: request.StartHour,
		EndHour:   request.EndHour,
		Status:    models.ShiftStatusActive,
		Position:  int(count),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := shift.Validate(); err != nil {
		return nil, exceptions.ErrInvalidShiftWindow(err)
	}

	if _, err := uc.DoctorShiftRepository.InsertShift(ctx, shift); err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx)
	uc.recordAudit(ctx, models.AuditActionShiftCreated, session.UserID, shift.ShiftID)

	return shiftResponse(shift), nil
}

func (uc *doctorShiftUsecase) UpdateShift(ctx context.Context, session *models.Session, shiftID string, request *requests.UpdateDoctorShift) (*responses.DoctorShift, error) {
	shift, err := uc.DoctorShiftRepository.FindShiftByShiftID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, exceptions.ErrShiftNotFound(nil)
	}

	if request.DoctorID != "" {
		shift.DoctorID = request.DoctorID
	}
	if request.StartHour != nil {
		shift.StartHour = *request.StartHour
	}
	if request.EndHour != nil {
		shift.EndHour = *request.EndHour
	}
	if request.Status != "" {
		shift.Status = models.ShiftStatus(request.Status)
	}
	if err := shift.Validate(); err != nil {
		return nil, exceptions.ErrInvalidShiftWindow(err)
	}

	if err := uc.DoctorShiftRepository.UpdateShift(ctx, shift); err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx)
	uc.recordAudit(ctx, models.AuditActionShiftUpdated, session.UserID, shift.ShiftID)

	return shiftResponse(shift), nil
}

func (uc *doctorShiftUsecase) ListShifts(ctx context.Context) ([]responses.DoctorShift, error) {
	shifts, err := uc.DoctorShiftRepository.FindActiveShifts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.DoctorShift, len(shifts))
	for i := range shifts {
		result[i] = *shiftResponse(&shifts[i])
	}
	return result, nil
}

// SeedDefaultShifts installs the morning and evening rotations on an empty
// collection. Calling it on a populated collection is a no-op, so boot can
// always run it.
func (uc *doctorShiftUsecase) SeedDefaultShifts(ctx context.Context, morningDoctorID, eveningDoctorID string) error {
	count, err := uc.DoctorShiftRepository.CountShifts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if morningDoctorID == "" || eveningDoctorID == "" {
		uc.Log.Warn("skipping default shift seed, doctor ids not configured")
		return nil
	}

	now := time.Now()
	defaults := []models.DoctorShift{
		{
			ShiftID:   utils.GenerateShiftID(),
			ShiftType: constvars.ShiftTypeMorning,
			DoctorID:  morningDoctorID,
			StartHour: constvars.DefaultMorningShiftStartHour,
			EndHour:   constvars.DefaultMorningShiftEndHour,
			Status:    models.ShiftStatusActive,
			Position:  0,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ShiftID:   utils.GenerateShiftID(),
			ShiftType: constvars.ShiftTypeEvening,
			DoctorID:  eveningDoctorID,
			StartHour: constvars.DefaultEveningShiftStartHour,
			EndHour:   constvars.DefaultEveningShiftEndHour,
			Status:    models.ShiftStatusActive,
			Position:  1,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for i := range defaults {
		if _, err := uc.DoctorShiftRepository.InsertShift(ctx, &defaults[i]); err != nil {
			return err
		}
	}

	uc.Log.Info("seeded default doctor shifts",
		zap.String("morning_shift_id", defaults[0].ShiftID),
		zap.String("evening_shift_id", defaults[1].ShiftID),
	)
	return nil
}

func (uc *doctorShiftUsecase) invalidateCache(ctx context.Context) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyActiveDoctor); err != nil {
		uc.Log.Warn("doctorShiftUsecase cache invalidation failed", zap.Error(err))
	}
}

func (uc *doctorShiftUsecase) recordAudit(ctx context.Context, action models.AuditAction, actorID, shiftID string) {
	event := &models.AuditEvent{
		Action:     action,
		ActorID:    actorID,
		Resource:   "doctor_shift",
		ResourceID: shiftID,
		OccurredAt: time.Now(),
	}
	if err := uc.AuditSink.Record(ctx, event); err != nil {
		uc.Log.Warn("doctorShiftUsecase failed recording audit event",
			zap.String(constvars.LoggingAuditActionKey, string(action)),
			zap.Error(err),
		)
	}
}

func shiftResponse(shift *models.DoctorShift) *responses.DoctorShift {
	return &responses.DoctorShift{
		ShiftID:   shift.ShiftID,
		ShiftType: shift.ShiftType,
		DoctorID:  shift.DoctorID,
		StartHour: shift.StartHour,
		EndHour:   shift.EndHour,
		Status:    string(shift.Status),
	}
}
