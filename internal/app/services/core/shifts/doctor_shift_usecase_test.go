package shifts

import (
	"context"
	"testing"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/config"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorShiftRepository struct {
	shifts []models.DoctorShift
}

func (r *fakeDoctorShiftRepository) InsertShift(ctx context.Context, shift *models.DoctorShift) (*models.DoctorShift, error) {
	r.shifts = append(r.shifts, *shift)
	return shift, nil
}

func (r *fakeDoctorShiftRepository) FindShiftByShiftID(ctx context.Context, shiftID string) (*models.DoctorShift, error) {
	for i := range r.shifts {
		if r.shifts[i].ShiftID == shiftID {
			return &r.shifts[i], nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorShiftRepository) FindActiveShifts(ctx context.Context) ([]models.DoctorShift, error) {
	var active []models.DoctorShift
	for _, shift := range r.shifts {
		if shift.Status == models.ShiftStatusActive {
			active = append(active, shift)
		}
	}
	return active, nil
}

func (r *fakeDoctorShiftRepository) UpdateShift(ctx context.Context, shift *models.DoctorShift) error {
	for i := range r.shifts {
		if r.shifts[i].ShiftID == shift.ShiftID {
			r.shifts[i] = *shift
			return nil
		}
	}
	return exceptions.ErrShiftNotFound(nil)
}

func (r *fakeDoctorShiftRepository) CountShifts(ctx context.Context) (int64, error) {
	return int64(len(r.shifts)), nil
}

type fakeRedisRepository struct {
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(data)
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(r.values, key)
	return nil
}

func (r *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, exists := r.values[key]; exists {
		return false, nil
	}
	return true, r.Set(ctx, key, value, exp)
}

type fakeAuditSink struct {
	events []*models.AuditEvent
}

func (s *fakeAuditSink) Record(ctx context.Context, event *models.AuditEvent) error {
	s.events = append(s.events, event)
	return nil
}

type shiftFixture struct {
	usecase *doctorShiftUsecase
	repo    *fakeDoctorShiftRepository
	redis   *fakeRedisRepository
	audit   *fakeAuditSink
}

func newShiftFixture() *shiftFixture {
	repo := &fakeDoctorShiftRepository{}
	redis := newFakeRedisRepository()
	audit := &fakeAuditSink{}

	internalConfig := &config.InternalConfig{
		DoctorShift: config.AppDoctorShift{
			ActiveDoctorCacheTimeInSeconds: 60,
		},
	}

	return &shiftFixture{
		usecase: &doctorShiftUsecase{
			DoctorShiftRepository: repo,
			RedisRepository:       redis,
			AuditSink:             audit,
			InternalConfig:        internalConfig,
			Log:                   zap.NewNop(),
			Location:              time.UTC,
		},
		repo:  repo,
		redis: redis,
		audit: audit,
	}
}

func adminSession() *models.Session {
	return &models.Session{UserID: "USR-admin", Role: constvars.TenderlyRoleAdmin}
}

func seedShift(f *shiftFixture, shiftID, doctorID string, startHour, endHour int) {
	f.repo.shifts = append(f.repo.shifts, models.DoctorShift{
		ShiftID:   shiftID,
		ShiftType: constvars.ShiftTypeCustom,
		DoctorID:  doctorID,
		StartHour: startHour,
		EndHour:   endHour,
		Status:    models.ShiftStatusActive,
		Position:  len(f.repo.shifts),
	})
}

func TestGetCurrentDoctor(t *testing.T) {
	ctx := context.Background()
	morning := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
	night := time.Date(2026, 8, 24, 3, 0, 0, 0, time.UTC)

	t.Run("resolves the shift covering the hour", func(t *testing.T) {
		f := newShiftFixture()
		seedShift(f, "SHIFT-m", "DOC-m", 6, 14)
		seedShift(f, "SHIFT-e", "DOC-e", 14, 22)

		current, err := f.usecase.GetCurrentDoctor(ctx, morning)
		require.NoError(t, err)
		assert.Equal(t, "DOC-m", current.DoctorID)
		assert.False(t, current.FromCache)

		f.redis.values = map[string]string{}
		current, err = f.usecase.GetCurrentDoctor(ctx, evening)
		require.NoError(t, err)
		assert.Equal(t, "DOC-e", current.DoctorID)
	})

	t.Run("end hour is exclusive", func(t *testing.T) {
		f := newShiftFixture()
		seedShift(f, "SHIFT-m", "DOC-m", 6, 14)
		seedShift(f, "SHIFT-e", "DOC-e", 14, 22)

		twoPM := time.Date(2026, 8, 24, 14, 0, 0, 0, time.UTC)
		current, err := f.usecase.GetCurrentDoctor(ctx, twoPM)
		require.NoError(t, err)
		assert.Equal(t, "DOC-e", current.DoctorID)
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		f := newShiftFixture()
		seedShift(f, "SHIFT-m", "DOC-m", 6, 14)

		first, err := f.usecase.GetCurrentDoctor(ctx, morning)
		require.NoError(t, err)
		assert.False(t, first.FromCache)

		second, err := f.usecase.GetCurrentDoctor(ctx, morning)
		require.NoError(t, err)
		assert.True(t, second.FromCache)
		assert.Equal(t, first.DoctorID, second.DoctorID)
	})

	t.Run("refresh bypasses a stale cache entry", func(t *testing.T) {
		f := newShiftFixture()
		seedShift(f, "SHIFT-m", "DOC-m", 6, 14)
		f.redis.values[constvars.RedisKeyActiveDoctor] = `{"doctorId":"DOC-stale","shiftId":"SHIFT-gone"}`

		current, err := f.usecase.RefreshCurrentDoctor(ctx, morning)
		require.NoError(t, err)
		assert.Equal(t, "DOC-m", current.DoctorID)
		assert.False(t, current.FromCache)
	})

	t.Run("overlapping shifts keep the first match", func(t *testing.T) {
		f := newShiftFixture()
		seedShift(f, "SHIFT-a", "DOC-a", 6, 14)
		seedShift(f, "SHIFT-b", "DOC-b", 8, 16)

		current, err := f.usecase.GetCurrentDoctor(ctx, morning)
		require.NoError(t, err)
		assert.Equal(t, "DOC-a", current.DoctorID)
	})

	t.Run("no coverage", func(t *testing.T) {
		f := newShiftFixture()
		seedShift(f, "SHIFT-m", "DOC-m", 6, 14)

		_, err := f.usecase.GetCurrentDoctor(ctx, night)
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("inactive shifts are ignored", func(t *testing.T) {
		f := newShiftFixture()
		f.repo.shifts = append(f.repo.shifts, models.DoctorShift{
			ShiftID:   "SHIFT-off",
			DoctorID:  "DOC-off",
			StartHour: 0,
			EndHour:   23,
			Status:    models.ShiftStatusInactive,
		})

		_, err := f.usecase.GetCurrentDoctor(ctx, morning)
		require.Error(t, err)
	})
}

func TestCreateShift(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and invalidates the cache", func(t *testing.T) {
		f := newShiftFixture()
		f.redis.values[constvars.RedisKeyActiveDoctor] = `{"doctorId":"stale"}`

		shift, err := f.usecase.CreateShift(ctx, adminSession(), &requests.CreateDoctorShift{
			ShiftType: constvars.ShiftTypeCustom,
			DoctorID:  "DOC-n",
			StartHour: 22,
			EndHour:   23,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, shift.ShiftID)
		assert.Equal(t, "active", shift.Status)

		_, cached := f.redis.values[constvars.RedisKeyActiveDoctor]
		assert.False(t, cached, "active doctor cache must be invalidated")
		require.Len(t, f.audit.events, 1)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		f := newShiftFixture()

		_, err := f.usecase.CreateShift(ctx, adminSession(), &requests.CreateDoctorShift{
			ShiftType: constvars.ShiftTypeCustom,
			DoctorID:  "DOC-n",
			StartHour: 14,
			EndHour:   6,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, f.repo.shifts)
	})
}

func TestUpdateShift(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial updates", func(t *testing.T) {
		f := newShiftFixture()
		seedShift(f, "SHIFT-m", "DOC-m", 6, 14)

		newEnd := 15
		updated, err := f.usecase.UpdateShift(ctx, adminSession(), "SHIFT-m", &requests.UpdateDoctorShift{
			DoctorID: "DOC-swap",
			EndHour:  &newEnd,
		})
		require.NoError(t, err)
		assert.Equal(t, "DOC-swap", updated.DoctorID)
		assert.Equal(t, 15, updated.EndHour)
		assert.Equal(t, 6, updated.StartHour, "unset fields keep their value")
	})

	t.Run("unknown shift", func(t *testing.T) {
		f := newShiftFixture()

		_, err := f.usecase.UpdateShift(ctx, adminSession(), "SHIFT-missing", &requests.UpdateDoctorShift{DoctorID: "DOC-x"})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("rejects an update that breaks the window", func(t *testing.T) {
		f := newShiftFixture()
		seedShift(f, "SHIFT-m", "DOC-m", 6, 14)

		badEnd := 3
		_, err := f.usecase.UpdateShift(ctx, adminSession(), "SHIFT-m", &requests.UpdateDoctorShift{EndHour: &badEnd})
		require.Error(t, err)
	})
}

func TestSeedDefaultShifts(t *testing.T) {
	ctx := context.Background()

	t.Run("installs morning and evening rotations", func(t *testing.T) {
		f := newShiftFixture()

		err := f.usecase.SeedDefaultShifts(ctx, "DOC-m", "DOC-e")
		require.NoError(t, err)
		require.Len(t, f.repo.shifts, 2)
		assert.Equal(t, constvars.DefaultMorningShiftStartHour, f.repo.shifts[0].StartHour)
		assert.Equal(t, constvars.DefaultMorningShiftEndHour, f.repo.shifts[0].EndHour)
		assert.Equal(t, constvars.DefaultEveningShiftStartHour, f.repo.shifts[1].StartHour)
		assert.Equal(t, constvars.DefaultEveningShiftEndHour, f.repo.shifts[1].EndHour)
	})

	t.Run("populated collection is untouched", func(t *testing.T) {
		f := newShiftFixture()
		seedShift(f, "SHIFT-x", "DOC-x", 0, 23)

		err := f.usecase.SeedDefaultShifts(ctx, "DOC-m", "DOC-e")
		require.NoError(t, err)
		assert.Len(t, f.repo.shifts, 1)
	})

	t.Run("missing doctor ids skip seeding", func(t *testing.T) {
		f := newShiftFixture()

		err := f.usecase.SeedDefaultShifts(ctx, "", "")
		require.NoError(t, err)
		assert.Empty(t, f.repo.shifts)
	})
}
