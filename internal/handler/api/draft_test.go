//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"refreshing-booking/internal/domain/availability"
	"refreshing-booking/internal/domain/booking"
	resdto "refreshing-booking/internal/handler/dto/response"
	"refreshing-booking/internal/pkg/clock"
	"refreshing-booking/internal/usecase/queries"
	"refreshing-booking/tests/common/builder"
	"refreshing-booking/tests/common/httptest"
	"refreshing-booking/tests/common/testutil"
	commandsmock "refreshing-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	clock    *clock.MockClock
}

func (s *DraftHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	// 2025-06-02 09:00, a Monday morning
	s.clock = clock.NewMockClock(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	s.router = newTestRouter(commandsmock.NewMockBookingCommands(s.mockCtrl), queries.NewBookingQueries(s.clock))
}

func (s *DraftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDraftHandlerSuite(t *testing.T) {
	suite.Run(t, new(DraftHandlerTestSuite))
}

func (s *DraftHandlerTestSuite) TestNew() {
	s.Run("pre-selects the service from the query", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking/draft?service=storstadning", nil, nil)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Draft.Step)
		s.Equal("storstadning", body.Draft.ServiceType)
		s.True(body.Valid)
	})

	s.Run("ignores unknown services", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking/draft?service=hemlig", nil, nil)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Draft.ServiceType)
	})
}

func (s *DraftHandlerTestSuite) TestValidate() {
	reqBody := builder.NewBookingBuilder().BuildDraftRequest()

	s.Run("valid step", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/validate/1", reqBody, nil)

		var body resdto.ValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Empty(body.Errors)
	})

	s.Run("field errors are keyed by field name", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("phone", "070-12"),
			testutil.Field("email", nil),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/validate/1", requestMap, nil)

		var body resdto.ValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Valid)
		expected := map[string]string{
			"phone": "Ange endast siffror (max 10)",
			"email": "E-post är obligatoriskt",
		}
		if diff := cmp.Diff(expected, body.Errors); diff != "" {
			s.T().Errorf("errors mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("step 3 does not require square meters", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("squareMeters", ""))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/validate/3", requestMap, nil)
		var step3 resdto.ValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &step3)
		s.True(step3.Valid)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/validate/4", requestMap, nil)
		var step4 resdto.ValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &step4)
		s.Equal("Kvadratmeter är obligatoriskt", step4.Errors["squareMeters"])
	})

	for _, step := range []string{"0", "5", "x"} {
		s.Run("invalid step "+step, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/validate/"+step, reqBody, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Ogiltigt steg")
		})
	}

	s.Run("malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/validate/1", `{"step":`, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Ogiltig förfrågan")
	})
}

func (s *DraftHandlerTestSuite) TestAdvanceAndRetreat() {
	s.Run("advance moves forward when valid", func() {
		reqBody := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Step = 1 }).BuildDraftRequest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/advance", reqBody, nil)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Draft.Step)
		s.True(body.Valid)
	})

	s.Run("advance stays when invalid", func() {
		reqBody := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Step = 2
			b.ServiceType = ""
		}).BuildDraftRequest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/advance", reqBody, nil)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Draft.Step)
		s.False(body.Valid)
		s.Equal("Välj en tjänst", body.Errors["serviceType"])
	})

	s.Run("windows are normalised to one-time", func() {
		reqBody := builder.NewBookingBuilder().AsWindows("4", booking.WindowSingle).
			AsRegular(booking.CadenceWeekly).BuildDraftRequest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/advance", reqBody, nil)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("oneTime", body.Draft.Frequency)
		s.Empty(body.Draft.CleaningFrequency)
	})

	s.Run("retreat", func() {
		reqBody := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Step = 1 }).BuildDraftRequest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/retreat", reqBody, nil)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Draft.Step)
	})
}

func (s *DraftHandlerTestSuite) TestQuote() {
	reqBody := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ServiceType = booking.ServiceDeep
		b.SquareMeters = "40"
	}).AsRegular(booking.CadenceWeekly).BuildDraftRequest()

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/quote", reqBody, nil)

	var body resdto.QuoteResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	expected := resdto.QuoteResponse{
		Hours:         1,
		HourlyRate:    350,
		PerVisitPrice: 350,
		Monthly:       true,
		Price:         1516,
		Label:         "1516 kr/mån",
	}
	if diff := cmp.Diff(expected, body); diff != "" {
		s.T().Errorf("quote mismatch (-want +got):\n%s", diff)
	}
}

func (s *DraftHandlerTestSuite) TestSubmission() {
	s.Run("complete draft yields the send-email payload", func() {
		reqBody := builder.NewBookingBuilder().BuildDraftRequest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/submission", reqBody, nil)

		var body resdto.SubmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("anna@example.se", body.CustomerEmail)
		s.Equal("Grundstädning", body.ServiceType)
		s.Equal("700 kr", body.TotalPrice)
	})

	s.Run("incomplete draft lists field errors", func() {
		requestMap := testutil.DtoMap(s.T(), builder.NewBookingBuilder().BuildDraftRequest(),
			testutil.Field("squareMeters", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/booking/draft/submission", requestMap, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Vänligen fyll i alla obligatoriska fält")
		s.Contains(rec.Body.String(), `"squareMeters":"Kvadratmeter är obligatoriskt"`)
	})
}

func (s *DraftHandlerTestSuite) TestAvailability() {
	s.Run("served zip", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?zip=114%2055", nil, nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.AvailabilityResponse{
			Zip:       "114 55",
			Checked:   true,
			Available: true,
			Message:   availability.MessageToday,
		}, body)
	})

	s.Run("weekend", func() {
		s.clock.Set(time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?zip=11455", nil, nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(availability.MessageMonday, body.Message)
	})

	s.Run("outside the area", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?zip=41101", nil, nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Equal(availability.MessageNotServed, body.Message)
	})

	s.Run("zip without five digits is rejected", func() {
		for _, zip := range []string{"1145", "114555", "abc", ""} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?zip="+zip, nil, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Ogiltig förfrågan")
		}
	})
}

func (s *DraftHandlerTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}
