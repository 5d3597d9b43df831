package prescriptions

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

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
}

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase) *PrescriptionController {
	return &PrescriptionController{
		Log:                 logger,
		PrescriptionUsecase: prescriptionUsecase,
	}
}

func (ctrl *PrescriptionController) UpdateDiagnosis(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	request := new(requests.UpdateDiagnosis)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ConsultationID = consultationID
	request.IPAddress = utils.GetClientIP(r)
	request.UserAgent = utils.GetUserAgent(r)

	utils.SanitizeUpdateDiagnosisRequest(request)
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

	response, err := ctrl.PrescriptionUsecase.UpdateDiagnosis(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DiagnosisUpdatedSuccess, response)
}

func (ctrl *PrescriptionController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	request := new(requests.SavePrescriptionDraft)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ConsultationID = consultationID
	request.IPAddress = utils.GetClientIP(r)
	request.UserAgent = utils.GetUserAgent(r)

	utils.SanitizeSavePrescriptionDraftRequest(request)
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

	response, err := ctrl.PrescriptionUsecase.SaveDraft(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionDraftSavedSuccess, response)
}

func (ctrl *PrescriptionController) GeneratePreview(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	// PDF rendering plus an object-store upload; wider budget than usual.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.PrescriptionUsecase.GeneratePreview(ctx, session, consultationID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionPreviewSuccess, response)
}

func (ctrl *PrescriptionController) SignAndSend(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	request := &requests.SignAndSendPrescription{
		ConsultationID: consultationID,
		IPAddress:      utils.GetClientIP(r),
		UserAgent:      utils.GetUserAgent(r),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.PrescriptionUsecase.SignAndSend(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionSignedSentSuccess, response)
}

func (ctrl *PrescriptionController) CompleteConsultation(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PrescriptionUsecase.CompleteConsultation(ctx, session, consultationID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationCompletedSuccess, response)
}

func (ctrl *PrescriptionController) RequestRevision(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.PrescriptionUsecase.RequestRevision(ctx, session, consultationID, body.Reason)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RevisionRequestedSuccess, nil)
}

func (ctrl *PrescriptionController) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PrescriptionUsecase.GetDownloadURL(ctx, session, consultationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionDownloadURLSuccess, response)
}
