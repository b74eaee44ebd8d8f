package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"temple-admin/internal/models"
	"temple-admin/internal/services"
	"temple-admin/internal/services/service_mocks"
)

type PujaHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	echo        *echo.Echo
	pujaService *service_mocks.MockPujaServiceInterface
	handler     *PujaHandler
}

func TestPujaHandlerSuite(t *testing.T) {
	suite.Run(t, new(PujaHandlerSuite))
}

func (s *PujaHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = newTestEcho()
	s.pujaService = service_mocks.NewMockPujaServiceInterface(s.ctrl)
	s.handler = NewPujaHandler(s.pujaService)
}

func (s *PujaHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PujaHandlerSuite) newPujaRequest() *http.Request {
	return jsonRequest(http.MethodPost, "/api/v1/pujas", map[string]interface{}{
		"communityId":     uuid.NewString(),
		"name":            "Satyanarayana Puja",
		"location":        "Main Hall",
		"scheduledAt":     time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		"durationMinutes": 90,
	})
}

func (s *PujaHandlerSuite) TestSchedulePuja_Success() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(s.newPujaRequest(), rec)
	authenticate(c, models.RoleAdmin)

	s.pujaService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Puja{ID: uuid.New(), Name: "Satyanarayana Puja", Status: models.PujaStatusScheduled}, nil)

	s.Require().NoError(s.handler.SchedulePuja(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *PujaHandlerSuite) TestSchedulePuja_Conflict() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(s.newPujaRequest(), rec)
	authenticate(c, models.RoleAdmin)

	s.pujaService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: overlaps Ganesh Homam", services.ErrScheduleConflict))

	s.Require().NoError(s.handler.SchedulePuja(c))
	s.Equal(http.StatusConflict, rec.Code)

	body := decodeError(rec)
	s.Equal("PUJA_002", body.Code)
	s.Require().Len(body.Details, 1)
	s.Contains(body.Details[0], "Ganesh Homam")
}

func (s *PujaHandlerSuite) TestCancelPuja_Closed() {
	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pujas/"+id.String()+"/cancel", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	authenticate(c, models.RoleAdmin)

	s.pujaService.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).Return(nil, services.ErrPujaClosed)

	s.Require().NoError(s.handler.CancelPuja(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("PUJA_003", decodeError(rec).Code)
}

func (s *PujaHandlerSuite) TestUpcomingPujas() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/pujas/upcoming?limit=3", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.pujaService.EXPECT().
		Upcoming(gomock.Any(), gomock.Nil(), 3).
		Return([]models.Puja{{ID: uuid.New(), Name: "Aarti"}}, nil)

	s.Require().NoError(s.handler.UpcomingPujas(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Aarti")
}

func (s *PujaHandlerSuite) TestUpcomingPujas_DefaultLimit() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/pujas/upcoming", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.pujaService.EXPECT().
		Upcoming(gomock.Any(), gomock.Nil(), defaultUpcomingLimit).
		Return(nil, nil)

	s.Require().NoError(s.handler.UpcomingPujas(c))
	s.Equal(http.StatusOK, rec.Code)
}
