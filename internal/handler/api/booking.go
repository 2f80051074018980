package api

import (
	"errors"
	"net/http"

	"refreshing-booking/internal/domain/booking"
	reqdto "refreshing-booking/internal/handler/dto/request"
	resdto "refreshing-booking/internal/handler/dto/response"
	"refreshing-booking/internal/handler/httperr"
	"refreshing-booking/internal/handler/middleware"
	"refreshing-booking/internal/pkg/errs"
	"refreshing-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sendEmailAllow = "POST, OPTIONS"

	msgInvalidEmail   = "Ogiltig e-postadress"
	msgMissingFields  = "Vänligen fyll i alla obligatoriska fält"
	msgServerError    = "Serverfel"
	msgMethodNotAllow = "Method Not Allowed"
)

type BookingHandler struct {
	cmds   commands.BookingCommands
	logger *zap.Logger
}

func NewBookingHandler(cmds commands.BookingCommands, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{cmds: cmds, logger: logger}
}

// SendEmailDispatch is mounted for every method on the endpoint so that
// preflight and unsupported methods answer the same way as the form expects.
func (h *BookingHandler) SendEmailDispatch(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", sendEmailAllow)
	c.Header("Access-Control-Allow-Headers", "Content-Type")

	switch c.Request.Method {
	case http.MethodOptions:
		c.AbortWithStatus(http.StatusNoContent)
	case http.MethodPost:
		h.SendEmail(c)
	default:
		c.Header("Allow", sendEmailAllow)
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, httperr.Response{
			Status: http.StatusMethodNotAllowed,
			Error:  msgMethodNotAllow,
		})
	}
}

// @Summary Send booking emails
// @Description Re-validates a booking and mails the business and the customer over one SMTP session
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SendEmailRequest true "Booking submission"
// @Success 200 {object} resdto.SendEmailResponse
// @Success 204 "Preflight"
// @Failure 400 {object} httperr.Response
// @Failure 405 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/send-email [post]
func (h *BookingHandler) SendEmail(c *gin.Context) {
	log := middleware.GetLogger(c, h.logger)

	var req reqdto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// an unreadable body is treated as an empty submission
		log.Debug("send-email body not decodable", zap.Error(err))
		req = reqdto.SendEmailRequest{}
	}

	sub, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgServerError, nil)
		return
	}

	if err := h.cmds.SendBooking(c.Request.Context(), sub); err != nil {
		status, msg := sendEmailFailure(err)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	c.JSON(http.StatusOK, resdto.SendEmailResponse{OK: true})
}

func sendEmailFailure(err error) (int, string) {
	switch {
	case errors.Is(err, booking.ErrInvalidEmail):
		return http.StatusBadRequest, msgInvalidEmail
	case errors.Is(err, booking.ErrMissingFields):
		return http.StatusBadRequest, msgMissingFields
	case errs.Is(err, errs.ErrConfiguration):
		return http.StatusInternalServerError, msgServerError
	}

	var delivery *commands.DeliveryError
	if errors.As(err, &delivery) && delivery.Message != "" {
		return http.StatusInternalServerError, delivery.Message
	}
	return http.StatusInternalServerError, msgServerError
}
