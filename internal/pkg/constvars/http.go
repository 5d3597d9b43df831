package constvars

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationPDF  = "application/pdf"
)

const (
	StatusOK       = 200
	StatusCreated  = 201
	StatusAccepted = 202

	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusPaymentRequired     = 402
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusGone                = 410
	StatusPreconditionFailed  = 412
	StatusUnprocessableEntity = 422

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderUserAgent     = "User-Agent"
	HeaderXForwardedFor = "X-Forwarded-For"

	AuthBearerPrefix = "Bearer "

	// Header carrying the gateway webhook signature over the raw payload.
	HeaderXGatewaySignature = "X-Gateway-Signature"
)

const (
	URLParamConsultationID = "consultationID"
	URLParamShiftID        = "shiftID"
)
