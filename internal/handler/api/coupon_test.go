//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"webmall/internal/domain/coupon"
	"webmall/internal/handler/api"
	resdto "webmall/internal/handler/dto/response"
	"webmall/internal/usecase/commands"
	"webmall/tests/common/httptest"
	"webmall/tests/common/testutil"
	commandsmock "webmall/tests/mock/commands"
	queriesmock "webmall/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/coupons/validate", s.handler.Validate)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestValidate() {
	url := "/coupons/validate"

	reqBody := map[string]any{
		"code":        "SAVE10",
		"order_total": 5000,
	}

	s.Run("success: valid coupon returns discount and final total", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), "SAVE10", int64(5000)).
			Return(&commands.ValidationResult{
				Valid:          true,
				DiscountAmount: 500,
				FinalTotal:     4500,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CouponValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Equal(int64(500), response.DiscountAmount)
		s.Equal(int64(4500), response.FinalTotal)
	})

	s.Run("error: failed redemption checks are 400 with the check's message", func() {
		testCases := []struct {
			name          string
			commandsError error
			expectedMsg   string
		}{
			{
				name:          "inactive",
				commandsError: coupon.ErrCouponNotActive,
				expectedMsg:   "Coupon is not active",
			},
			{
				name:          "expired",
				commandsError: coupon.ErrCouponExpired,
				expectedMsg:   "Coupon has expired",
			},
			{
				name:          "usage limit reached",
				commandsError: coupon.ErrUsageLimitReached,
				expectedMsg:   "Coupon usage limit reached",
			},
			{
				name:          "below minimum order",
				commandsError: &coupon.BelowMinimumError{Minimum: 1000},
				expectedMsg:   "Minimum order of LKR 1,000 required for this coupon",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Validate(gomock.Any(), "SAVE10", int64(5000)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})

	s.Run("error: unknown code is 404", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), "SAVE10", int64(5000)).
			Return(nil, commands.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing code", mutate: testutil.Field("code", nil)},
			{name: "empty code", mutate: testutil.Field("code", "")},
			{name: "missing order total", mutate: testutil.Field("order_total", nil)},
			{name: "zero order total", mutate: testutil.Field("order_total", 0)},
			{name: "negative order total", mutate: testutil.Field("order_total", -100)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})
}

// Verifies the message format the storefront shows verbatim.
func TestBelowMinimumMessageFormat(t *testing.T) {
	err := &coupon.BelowMinimumError{Minimum: 25000}
	if err.Error() != "Minimum order of LKR 25,000 required for this coupon" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
