package consultations

import (
	"context"
	"io"
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

type ConsultationController struct {
	Log                 *zap.Logger
	ConsultationUsecase contracts.ConsultationUsecase
}

func NewConsultationController(logger *zap.Logger, consultationUsecase contracts.ConsultationUsecase) *ConsultationController {
	return &ConsultationController{
		Log:                 logger,
		ConsultationUsecase: consultationUsecase,
	}
}

func (ctrl *ConsultationController) SelectConsultationType(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SelectConsultationType)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSelectConsultationTypeRequest(request)
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

	response, err := ctrl.ConsultationUsecase.SelectConsultationType(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ConsultationTypeSelectedSuccess, response)
}

func (ctrl *ConsultationController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ConfirmPayment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeConfirmPaymentRequest(request)
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

	response, err := ctrl.ConsultationUsecase.ConfirmPayment(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentConfirmedSuccess, response)
}

func (ctrl *ConsultationController) CollectStructuredAssessment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CollectStructuredAssessment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
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

	// AI agent latency is included, so this budget is wider than usual.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response, err := ctrl.ConsultationUsecase.CollectStructuredAssessment(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssessmentCollectedSuccess, response)
}

func (ctrl *ConsultationController) UpdateConsultationStatus(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	request := new(requests.UpdateConsultationStatus)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ConsultationID = consultationID

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

	response, err := ctrl.ConsultationUsecase.UpdateConsultationStatus(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationStatusUpdatedSuccess, response)
}

func (ctrl *ConsultationController) AppendChatMessage(w http.ResponseWriter, r *http.Request) {
	consultationID := chi.URLParam(r, constvars.URLParamConsultationID)

	request := new(requests.AppendChatMessage)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ConsultationID = consultationID

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

	err = ctrl.ConsultationUsecase.AppendChatMessage(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ChatMessageAppendedSuccess, nil)
}

func (ctrl *ConsultationController) GetActiveConsultation(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consultation, err := ctrl.ConsultationUsecase.GetActiveConsultation(ctx, session.PatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if consultation == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrConsultationNotFound(nil))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, consultation)
}

func (ctrl *ConsultationController) CheckConsultationConflicts(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ConsultationUsecase.CheckConsultationConflicts(ctx, session.PatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationConflictCheckSuccess, response)
}

func (ctrl *ConsultationController) RefundConsultation(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.ConsultationUsecase.RefundConsultation(ctx, session, consultationID, body.Reason)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefundProcessedSuccess, response)
}

// PaymentWebhook is unauthenticated; trust comes from the signature over the
// raw body.
func (ctrl *ConsultationController) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	signature := r.Header.Get(constvars.HeaderXGatewaySignature)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ConsultationUsecase.HandlePaymentWebhook(ctx, payload, signature); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "payment_webhook_processed", requestID,
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentWebhookAcceptedSuccess, nil)
}
