package repositories

import (
	"context"
	"testing"

	"temple-admin/internal/database"
	"temple-admin/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestTemplateRepository(t *testing.T) {
	suite.Run(t, new(TemplateRepositorySuite))
}

type TemplateRepositorySuite struct {
	suite.Suite
	db         *database.DB
	ctx        context.Context
	repo       TemplateRepositoryInterface
	volunteers VolunteerRepositoryInterface
}

func (s *TemplateRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.repo = NewTemplateRepository(s.db.DB)
	s.volunteers = NewVolunteerRepository(s.db.DB)
}

func (s *TemplateRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TemplateRepositorySuite) TestTemplateRepository_GetByNameAndDuplicate() {
	template := &models.CommunicationTemplate{
		Name:    "donation_thanks",
		Channel: models.ChannelEmail,
		Subject: "Thank you {{donor_name}}",
		Body:    "We received {{amount}}.",
	}
	s.Require().NoError(s.repo.Create(s.ctx, template))

	found, err := s.repo.GetByName(s.ctx, " donation_thanks ")
	s.Require().NoError(err)
	s.Equal(template.ID, found.ID)

	_, err = s.repo.GetByName(s.ctx, "missing")
	s.ErrorIs(err, ErrTemplateNotFound)

	err = s.repo.Create(s.ctx, &models.CommunicationTemplate{Name: "donation_thanks", Channel: models.ChannelSMS, Body: "hi"})
	s.ErrorIs(err, ErrTemplateAlreadyExists)
}

func (s *TemplateRepositorySuite) TestTemplateRepository_RecreateAfterDelete() {
	template := &models.CommunicationTemplate{Name: "festival_notice", Channel: models.ChannelSMS, Body: "{{festival}} starts soon"}
	s.Require().NoError(s.repo.Create(s.ctx, template))
	s.Require().NoError(s.repo.Delete(s.ctx, template.ID))

	_, err := s.repo.GetByName(s.ctx, "festival_notice")
	s.ErrorIs(err, ErrTemplateNotFound)

	s.Require().NoError(s.repo.Create(s.ctx, &models.CommunicationTemplate{Name: "festival_notice", Channel: models.ChannelSMS, Body: "{{festival}} begins"}))

	found, err := s.repo.GetByName(s.ctx, "festival_notice")
	s.Require().NoError(err)
	s.Equal("{{festival}} begins", found.Body)
}

func (s *TemplateRepositorySuite) TestTemplateRepository_ListIncludesSharedTemplates() {
	community := database.CreateTestCommunity(s.T(), s.db, "Krishna Temple")
	other := database.CreateTestCommunity(s.T(), s.db, "Radha Temple")

	s.Require().NoError(s.repo.Create(s.ctx, &models.CommunicationTemplate{Name: "shared", Channel: models.ChannelSMS, Body: "x"}))
	s.Require().NoError(s.repo.Create(s.ctx, &models.CommunicationTemplate{Name: "own", CommunityID: &community.ID, Channel: models.ChannelSMS, Body: "x"}))
	s.Require().NoError(s.repo.Create(s.ctx, &models.CommunicationTemplate{Name: "foreign", CommunityID: &other.ID, Channel: models.ChannelWhatsApp, Body: "x"}))

	items, total, err := s.repo.List(s.ctx, models.TemplateFilters{CommunityID: &community.ID})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Equal("own", items[0].Name)
	s.Equal("shared", items[1].Name)

	_, total, err = s.repo.List(s.ctx, models.TemplateFilters{Channel: models.ChannelWhatsApp})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}

func (s *TemplateRepositorySuite) TestVolunteerRepository_ListBySkill() {
	community := database.CreateTestCommunity(s.T(), s.db, "Shirdi Sai Temple")

	s.Require().NoError(s.volunteers.Create(s.ctx, &models.Volunteer{CommunityID: community.ID, Name: "Anil", Skills: "Cooking, Cleaning"}))
	s.Require().NoError(s.volunteers.Create(s.ctx, &models.Volunteer{CommunityID: community.ID, Name: "Bina", Skills: "music"}))

	items, total, err := s.volunteers.List(s.ctx, models.VolunteerFilters{Skill: "cooking"})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Anil", items[0].Name)

	v := items[0]
	v.Status = models.StatusInactive
	s.Require().NoError(s.volunteers.Update(s.ctx, &v))

	_, total, err = s.volunteers.List(s.ctx, models.VolunteerFilters{CommunityID: &community.ID, Status: models.StatusActive})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}
