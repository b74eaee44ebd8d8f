package repositories

import (
	"context"
	"testing"

	"temple-admin/internal/database"
	"temple-admin/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestCommunityRepository(t *testing.T) {
	suite.Run(t, new(CommunityRepositorySuite))
}

type CommunityRepositorySuite struct {
	suite.Suite
	db         *database.DB
	ctx        context.Context
	repo       CommunityRepositoryInterface
	memberRepo MemberRepositoryInterface
	appRepo    ApplicationRepositoryInterface
}

func (s *CommunityRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.repo = NewCommunityRepository(s.db.DB)
	s.memberRepo = NewMemberRepository(s.db.DB)
	s.appRepo = NewApplicationRepository(s.db.DB)
}

func (s *CommunityRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CommunityRepositorySuite) TestCommunityRepository_CreateAndGet() {
	community := &models.Community{Name: "Sri Ganesha Temple", City: "Austin", Country: "USA"}

	s.Require().NoError(s.repo.Create(s.ctx, community))
	s.NotEqual(uuid.Nil, community.ID)
	s.Equal(models.StatusActive, community.Status)

	found, err := s.repo.GetByID(s.ctx, community.ID)
	s.Require().NoError(err)
	s.Equal("Sri Ganesha Temple", found.Name)

	_, err = s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrCommunityNotFound)
}

func (s *CommunityRepositorySuite) TestCommunityRepository_DuplicateName() {
	s.Require().NoError(s.repo.Create(s.ctx, &models.Community{Name: "Murugan Temple"}))

	err := s.repo.Create(s.ctx, &models.Community{Name: "Murugan Temple"})
	s.ErrorIs(err, ErrCommunityAlreadyExists)
}

func (s *CommunityRepositorySuite) TestCommunityRepository_ListSearch() {
	for _, name := range []string{"Balaji Temple", "Shiva Vishnu Temple", "100% Devotion Hall"} {
		s.Require().NoError(s.repo.Create(s.ctx, &models.Community{Name: name, City: "Houston"}))
	}

	items, total, err := s.repo.List(s.ctx, models.CommunityFilters{Query: "TEMPLE"})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Equal("Balaji Temple", items[0].Name)

	items, total, err = s.repo.List(s.ctx, models.CommunityFilters{Query: "100%"})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("100% Devotion Hall", items[0].Name)

	items, total, err = s.repo.List(s.ctx, models.CommunityFilters{ListOptions: models.ListOptions{Limit: 1, Offset: 1}})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Len(items, 1)
}

func (s *CommunityRepositorySuite) TestCommunityRepository_DeleteAndExists() {
	community := database.CreateTestCommunity(s.T(), s.db, "Durga Temple")

	exists, err := s.repo.Exists(s.ctx, community.ID)
	s.Require().NoError(err)
	s.True(exists)

	s.Require().NoError(s.repo.Delete(s.ctx, community.ID))

	exists, err = s.repo.Exists(s.ctx, community.ID)
	s.Require().NoError(err)
	s.False(exists)

	s.ErrorIs(s.repo.Delete(s.ctx, community.ID), ErrCommunityNotFound)
}

func (s *CommunityRepositorySuite) TestCommunityRepository_RecreateAfterDelete() {
	first := &models.Community{Name: "Murugan Temple"}
	s.Require().NoError(s.repo.Create(s.ctx, first))
	s.Require().NoError(s.repo.Delete(s.ctx, first.ID))

	_, err := s.repo.GetByID(s.ctx, first.ID)
	s.ErrorIs(err, ErrCommunityNotFound)

	second := &models.Community{Name: "Murugan Temple"}
	s.Require().NoError(s.repo.Create(s.ctx, second))
	s.NotEqual(first.ID, second.ID)

	err = s.repo.Create(s.ctx, &models.Community{Name: "Murugan Temple"})
	s.ErrorIs(err, ErrCommunityAlreadyExists)
}

func (s *CommunityRepositorySuite) TestMemberRepository_ListFilters() {
	community := database.CreateTestCommunity(s.T(), s.db, "Venkateswara Temple")
	other := database.CreateTestCommunity(s.T(), s.db, "Hanuman Temple")

	members := []*models.Member{
		{CommunityID: community.ID, FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Role: models.MemberRoleTrustee},
		{CommunityID: community.ID, FirstName: "Vikram", LastName: "Iyer", Email: "vikram@example.com"},
		{CommunityID: other.ID, FirstName: "Meera", LastName: "Nair", Email: "meera@example.com"},
	}
	for _, m := range members {
		s.Require().NoError(s.memberRepo.Create(s.ctx, m))
	}

	items, total, err := s.memberRepo.List(s.ctx, models.MemberFilters{CommunityID: &community.ID})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Equal("Iyer", items[0].LastName)

	items, total, err = s.memberRepo.List(s.ctx, models.MemberFilters{Role: models.MemberRoleTrustee})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Asha", items[0].FirstName)

	_, total, err = s.memberRepo.List(s.ctx, models.MemberFilters{Query: "MEERA"})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
}

func (s *CommunityRepositorySuite) TestMemberRepository_DuplicateEmailInCommunity() {
	community := database.CreateTestCommunity(s.T(), s.db, "Kali Temple")

	s.Require().NoError(s.memberRepo.Create(s.ctx, &models.Member{
		CommunityID: community.ID, FirstName: "Ravi", LastName: "Shankar", Email: "ravi@example.com",
	}))

	err := s.memberRepo.Create(s.ctx, &models.Member{
		CommunityID: community.ID, FirstName: "Ravi", LastName: "S", Email: "RAVI@example.com",
	})
	s.ErrorIs(err, ErrMemberAlreadyExists)
}

func (s *CommunityRepositorySuite) TestMemberRepository_RecreateAfterDelete() {
	community := database.CreateTestCommunity(s.T(), s.db, "Meenakshi Temple")

	member := &models.Member{CommunityID: community.ID, FirstName: "Anil", LastName: "Kumar", Email: "anil@example.com"}
	s.Require().NoError(s.memberRepo.Create(s.ctx, member))
	s.Require().NoError(s.memberRepo.Delete(s.ctx, member.ID))

	again := &models.Member{CommunityID: community.ID, FirstName: "Anil", LastName: "Kumar", Email: "anil@example.com"}
	s.Require().NoError(s.memberRepo.Create(s.ctx, again))

	stored, err := s.memberRepo.GetByID(s.ctx, again.ID)
	s.Require().NoError(err)
	s.Equal("anil@example.com", stored.Email)
}

func (s *CommunityRepositorySuite) TestApplicationRepository_Approve() {
	community := database.CreateTestCommunity(s.T(), s.db, "Ayyappa Temple")
	reviewer := database.CreateTestUser(s.T(), s.db, "admin@example.com", models.RoleAdmin)

	application := &models.Application{
		CommunityID: community.ID,
		FirstName:   "Lakshmi",
		LastName:    "Menon",
		Email:       "lakshmi@example.com",
	}
	s.Require().NoError(s.appRepo.Create(s.ctx, application))

	approved, member, err := s.appRepo.Approve(s.ctx, application.ID, reviewer.ID, "welcome")
	s.Require().NoError(err)
	s.Equal(models.ApplicationStatusApproved, approved.Status)
	s.Require().NotNil(approved.MemberID)
	s.Equal(member.ID, *approved.MemberID)

	stored, err := s.memberRepo.GetByID(s.ctx, member.ID)
	s.Require().NoError(err)
	s.Equal("lakshmi@example.com", stored.Email)

	_, _, err = s.appRepo.Approve(s.ctx, application.ID, reviewer.ID, "again")
	s.ErrorIs(err, models.ErrApplicationReviewed)

	_, _, err = s.appRepo.Approve(s.ctx, uuid.New(), reviewer.ID, "")
	s.ErrorIs(err, ErrApplicationNotFound)
}

func (s *CommunityRepositorySuite) TestApplicationRepository_ApproveRollsBackOnDuplicateMember() {
	community := database.CreateTestCommunity(s.T(), s.db, "Saraswati Temple")
	reviewer := database.CreateTestUser(s.T(), s.db, "admin@example.com", models.RoleAdmin)

	s.Require().NoError(s.memberRepo.Create(s.ctx, &models.Member{
		CommunityID: community.ID, FirstName: "Gita", LastName: "Das", Email: "gita@example.com",
	}))

	application := &models.Application{
		CommunityID: community.ID, FirstName: "Gita", LastName: "Das", Email: "gita@example.com",
	}
	s.Require().NoError(s.appRepo.Create(s.ctx, application))

	_, _, err := s.appRepo.Approve(s.ctx, application.ID, reviewer.ID, "")
	s.ErrorIs(err, ErrMemberAlreadyExists)

	stored, err := s.appRepo.GetByID(s.ctx, application.ID)
	s.Require().NoError(err)
	s.Equal(models.ApplicationStatusPending, stored.Status)
}
