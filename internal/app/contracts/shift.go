package contracts

import (
	"context"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/models"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/responses"
)

type DoctorShiftUsecase interface {
	GetCurrentDoctor(ctx context.Context, at time.Time) (*responses.CurrentDoctor, error)
	RefreshCurrentDoctor(ctx context.Context, at time.Time) (*responses.CurrentDoctor, error)
	CreateShift(ctx context.Context, session *models.Session, request *requests.CreateDoctorShift) (*responses.DoctorShift, error)
	UpdateShift(ctx context.Context, session *models.Session, shiftID string, request *requests.UpdateDoctorShift) (*responses.DoctorShift, error)
	ListShifts(ctx context.Context) ([]responses.DoctorShift, error)
	SeedDefaultShifts(ctx context.Context, morningDoctorID, eveningDoctorID string) error
}

type DoctorShiftRepository interface {
	InsertShift(ctx context.Context, shift *models.DoctorShift) (*models.DoctorShift, error)
	FindShiftByShiftID(ctx context.Context, shiftID string) (*models.DoctorShift, error)
	FindActiveShifts(ctx context.Context) ([]models.DoctorShift, error)
	UpdateShift(ctx context.Context, shift *models.DoctorShift) error
	CountShifts(ctx context.Context) (int64, error)
}
