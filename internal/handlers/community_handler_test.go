package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"temple-admin/internal/models"
	"temple-admin/internal/services"
	"temple-admin/internal/services/service_mocks"
)

type CommunityHandlerSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	echo             *echo.Echo
	communityService *service_mocks.MockCommunityServiceInterface
	memberService    *service_mocks.MockMemberServiceInterface
	handler          *CommunityHandler
	memberHandler    *MemberHandler
}

func TestCommunityHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommunityHandlerSuite))
}

func (s *CommunityHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = newTestEcho()
	s.communityService = service_mocks.NewMockCommunityServiceInterface(s.ctrl)
	s.memberService = service_mocks.NewMockMemberServiceInterface(s.ctrl)
	s.handler = NewCommunityHandler(s.communityService)
	s.memberHandler = NewMemberHandler(s.memberService)
}

func (s *CommunityHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CommunityHandlerSuite) TestCreateCommunity_Duplicate() {
	req := jsonRequest(http.MethodPost, "/api/v1/communities", map[string]string{"name": "Sri Venkateswara Temple"})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	authenticate(c, models.RoleSuperAdmin)

	s.communityService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrCommunityAlreadyExists)

	s.Require().NoError(s.handler.CreateCommunity(c))
	s.Equal(http.StatusConflict, rec.Code)

	body := decodeError(rec)
	s.False(body.Success)
	s.Equal("COMMUNITY_002", body.Code)
	s.Equal("trace-123", body.TraceID)
}

func (s *CommunityHandlerSuite) TestUpdateCommunity_Success() {
	id := uuid.New()
	req := jsonRequest(http.MethodPatch, "/api/v1/communities/"+id.String(), map[string]string{"city": "Pittsburgh"})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	authenticate(c, models.RoleAdmin)

	s.communityService.EXPECT().
		Update(gomock.Any(), gomock.Any(), id, gomock.Any()).
		Return(&models.Community{ID: id, Name: "SV Temple", City: "Pittsburgh"}, nil)

	s.Require().NoError(s.handler.UpdateCommunity(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Pittsburgh")
}

func (s *CommunityHandlerSuite) TestListCommunities_SystemError() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/communities?status=active", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.communityService.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, int64(0), assert.AnError)

	s.Require().NoError(s.handler.ListCommunities(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_002", decodeError(rec).Code)
}

func (s *CommunityHandlerSuite) TestListMembers_InvalidCommunity() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members?communityId=123", nil)
	rec := httptest.NewRecorder()

	s.Require().NoError(s.memberHandler.ListMembers(s.echo.NewContext(req, rec)))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_004", decodeError(rec).Code)
}

func (s *CommunityHandlerSuite) TestDeleteMember() {
	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/members/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	authenticate(c, models.RoleAdmin)

	s.memberService.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil)

	s.Require().NoError(s.memberHandler.DeleteMember(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Member deleted")
}
