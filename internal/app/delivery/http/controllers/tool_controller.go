package controllers

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/dto/requests"
	"booking-service/internal/pkg/dto/responses"
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var bookAppointmentTool = responses.Tool{
	Name:        constvars.ToolBookAppointment,
	Description: "Book medical appointments with healthcare providers. Appointments are scheduled in 15-minute intervals.",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_id": map[string]interface{}{
				"type":        "string",
				"description": "Unique identifier for the patient",
			},
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Appointment date (YYYY-MM-DD format)",
			},
			"time": map[string]interface{}{
				"type":        "string",
				"description": "Appointment time in 15-minute intervals (HH:MM format, e.g., '09:00', '09:15', '09:30')",
			},
			"specialty": map[string]interface{}{
				"type":        "string",
				"description": "Medical specialty (e.g., 'cardiology', 'general practice')",
			},
			"reason": map[string]interface{}{
				"type":        "string",
				"description": "Reason for visit",
			},
		},
		"required": []string{"user_id", "date", "time"},
	},
}

// ToolController exposes booking through a tool-calling surface.
type ToolController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	InternalConfig *config.InternalConfig
	tools          []responses.Tool
}

func NewToolController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, internalConfig *config.InternalConfig) *ToolController {
	return &ToolController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		InternalConfig: internalConfig,
		tools:          []responses.Tool{bookAppointmentTool},
	}
}

func (ctrl *ToolController) ListTools(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("ToolController.ListTools called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetToolsSuccessMessage, responses.ListTools{Tools: ctrl.tools})
}

func (ctrl *ToolController) CallTool(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.ToolCall)
	err := json.NewDecoder(limitBody(w, r, ctrl.InternalConfig)).Decode(request)
	if err != nil {
		ctrl.Log.Error("ToolController.CallTool error parsing body request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeToolCallRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, validationError(err))
		return
	}

	ctrl.Log.Info("ToolController.CallTool called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingToolNameKey, request.Name),
	)

	switch request.Name {
	case constvars.ToolBookAppointment:
		ctrl.bookAppointment(w, r, requestID, request.Args)
	default:
		ctrl.Log.Warn("ToolController.CallTool unknown tool",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingToolNameKey, request.Name),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownTool(nil, request.Name, ctrl.toolNames()))
	}
}

func (ctrl *ToolController) bookAppointment(w http.ResponseWriter, r *http.Request, requestID string, rawArgs map[string]interface{}) {
	args := new(requests.BookAppointmentToolArgs)
	encoded, err := json.Marshal(rawArgs)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotMarshalJSON(err))
		return
	}
	err = json.Unmarshal(encoded, args)
	if err != nil {
		ctrl.Log.Error("ToolController.bookAppointment error parsing tool args",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request := utils.MapToolArgsToBookAppointmentRequest(args)
	utils.SanitizeBookAppointmentRequest(request)
	args.UserID, args.Date, args.Time, args.Specialty = request.PatientID, request.Date, request.Time, request.Specialty

	err = utils.ValidateStruct(args)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, validationError(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	booking, err := ctrl.BookingUsecase.Book(ctx, request)
	if err != nil {
		ctrl.Log.Error("ToolController.bookAppointment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, usecaseError(ctx, err))
		return
	}

	ctrl.Log.Info("ToolController.bookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConfirmationIDKey, booking.ConfirmationID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookAppointmentSuccessMessage, utils.MapBookingToBookAppointmentResponse(booking))
}

func (ctrl *ToolController) toolNames() []string {
	names := make([]string, 0, len(ctrl.tools))
	for _, tool := range ctrl.tools {
		names = append(names, tool.Name)
	}
	return names
}
