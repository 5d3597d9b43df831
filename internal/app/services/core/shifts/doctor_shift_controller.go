package shifts

import (
	"context"
	"net/http"
	"time"

	"github.com/tenderly-care/tenderly-backend-sub002/internal/app/contracts"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/constvars"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/dto/requests"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/exceptions"
	"github.com/tenderly-care/tenderly-backend-sub002/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorShiftController struct {
	Log                *zap.Logger
	DoctorShiftUsecase contracts.DoctorShiftUsecase
}

func NewDoctorShiftController(logger *zap.Logger, doctorShiftUsecase contracts.DoctorShiftUsecase) *DoctorShiftController {
	return &DoctorShiftController{
		Log:                logger,
		DoctorShiftUsecase: doctorShiftUsecase,
	}
}

func (ctrl *DoctorShiftController) GetCurrentDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resolve := ctrl.DoctorShiftUsecase.GetCurrentDoctor
	if r.URL.Query().Get("refresh") == "true" {
		resolve = ctrl.DoctorShiftUsecase.RefreshCurrentDoctor
	}

	response, err := resolve(ctx, time.Now())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CurrentDoctorGetSuccess, response)
}

func (ctrl *DoctorShiftController) CreateShift(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDoctorShift)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateDoctorShiftRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorShiftUsecase.CreateShift(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ShiftCreatedSuccess, response)
}

func (ctrl *DoctorShiftController) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, constvars.URLParamShiftID)

	request := new(requests.UpdateDoctorShift)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ShiftID = shiftID

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorShiftUsecase.UpdateShift(ctx, session, shiftID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftUpdatedSuccess, response)
}

func (ctrl *DoctorShiftController) ListShifts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DoctorShiftUsecase.ListShifts(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShiftListSuccess, response)
}
