package api

import (
	"net/http"
	"strconv"

	"refreshing-booking/internal/domain/availability"
	"refreshing-booking/internal/domain/booking"
	reqdto "refreshing-booking/internal/handler/dto/request"
	resdto "refreshing-booking/internal/handler/dto/response"
	"refreshing-booking/internal/handler/httperr"
	"refreshing-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest = "Ogiltig förfrågan"
	msgInvalidStep    = "Ogiltigt steg"
)

type DraftHandler struct {
	q queries.BookingQueries
}

func NewDraftHandler(q queries.BookingQueries) *DraftHandler {
	return &DraftHandler{q: q}
}

// @Summary New booking draft
// @Description Returns an empty draft on step 1, optionally with a pre-selected service
// @Tags draft
// @Produce json
// @Param service query string false "Service identifier" Enums(grundstadning, storstadning, fonsterputs)
// @Success 200 {object} resdto.DraftResponse
// @Router /api/booking/draft [get]
func (h *DraftHandler) New(c *gin.Context) {
	view := h.q.NewDraft(c.Request.Context(), c.Query("service"))
	h.respondDraft(c, view)
}

// @Summary Validate a step
// @Tags draft
// @Accept json
// @Produce json
// @Param step path int true "Step 1-4"
// @Param request body reqdto.DraftRequest true "Draft"
// @Success 200 {object} resdto.ValidationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/booking/draft/validate/{step} [post]
func (h *DraftHandler) Validate(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidStep, nil)
		return
	}
	d, ok := bindDraft(c)
	if !ok {
		return
	}

	res, err := h.q.Validate(c.Request.Context(), step, d)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidStep, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromValidation(res))
}

// @Summary Advance to the next step
// @Description Moves forward only when the current step validates; never beyond step 4
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.DraftRequest true "Draft"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Router /api/booking/draft/advance [post]
func (h *DraftHandler) Advance(c *gin.Context) {
	d, ok := bindDraft(c)
	if !ok {
		return
	}
	h.respondDraft(c, h.q.Advance(c.Request.Context(), d))
}

// @Summary Go back one step
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.DraftRequest true "Draft"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Router /api/booking/draft/retreat [post]
func (h *DraftHandler) Retreat(c *gin.Context) {
	d, ok := bindDraft(c)
	if !ok {
		return
	}
	h.respondDraft(c, h.q.Retreat(c.Request.Context(), d))
}

// @Summary Price a draft
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.DraftRequest true "Draft"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/booking/draft/quote [post]
func (h *DraftHandler) Quote(c *gin.Context) {
	d, ok := bindDraft(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(h.q.Quote(c.Request.Context(), d)))
}

// @Summary Build the send-email payload
// @Description Requires every step to validate; field errors are returned in detail
// @Tags draft
// @Accept json
// @Produce json
// @Param request body reqdto.DraftRequest true "Draft"
// @Success 200 {object} resdto.SubmissionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/booking/draft/submission [post]
func (h *DraftHandler) Submission(c *gin.Context) {
	d, ok := bindDraft(c)
	if !ok {
		return
	}

	view := h.q.Submission(c.Request.Context(), d)
	if !view.Validation.Valid {
		c.AbortWithStatusJSON(http.StatusBadRequest, httperr.Response{
			Status: http.StatusBadRequest,
			Error:  msgMissingFields,
			Detail: resdto.FromValidation(view.Validation).Errors,
		})
		return
	}

	resp, err := resdto.FromSubmission(view.Submission)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgServerError, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Zip code availability
// @Description Static service-area rule evaluated in Stockholm time
// @Tags availability
// @Produce json
// @Param zip query string true "Postal code, spaces allowed"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability [get]
func (h *DraftHandler) Availability(c *gin.Context) {
	res := h.q.Availability(c.Request.Context(), c.Query("zip"))
	if !res.Checked {
		httperr.AbortWithError(c, http.StatusBadRequest, availability.ErrInvalidZip, msgInvalidRequest, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(res))
}

func (h *DraftHandler) respondDraft(c *gin.Context, view queries.DraftView) {
	resp, err := resdto.FromDraftView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgServerError, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func bindDraft(c *gin.Context) (d booking.Draft, ok bool) {
	var req reqdto.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return d, false
	}
	d, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgServerError, nil)
		return d, false
	}
	return d, true
}
