package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"temple-admin/internal/dto"
	"temple-admin/internal/models"
	"temple-admin/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	demoMembersPerCommunity      = 8
	demoVolunteersPerCommunity   = 4
	demoDonationsPerCommunity    = 12
	demoExpensesPerCommunity     = 6
	demoPujasPerCommunity        = 5
	demoApplicationsPerCommunity = 3

	// MaxDemoCommunities bounds a single seed run
	MaxDemoCommunities = 50
)

var (
	ErrInvalidDemoSize = fmt.Errorf("communities must be between 1 and %d", MaxDemoCommunities)

	demoDeities   = []string{"Ganesha", "Shiva", "Vishnu", "Lakshmi", "Durga", "Murugan", "Hanuman"}
	demoPujaNames = []string{"Abhishekam", "Archana", "Sahasranama", "Homam", "Aarti", "Satyanarayana Puja"}
	demoLocations = []string{"Main Sanctum", "Community Hall", "Yagashala", "Garden Pavilion"}
	demoSkills    = []string{"cooking", "decoration", "music", "accounting", "parking", "teaching", "first aid"}
)

// DemoRepositories groups the stores the seeder writes to
type DemoRepositories struct {
	Communities  repositories.CommunityRepositoryInterface
	Members      repositories.MemberRepositoryInterface
	Applications repositories.ApplicationRepositoryInterface
	Volunteers   repositories.VolunteerRepositoryInterface
	Donations    repositories.DonationRepositoryInterface
	Expenses     repositories.ExpenseRepositoryInterface
	Pujas        repositories.PujaRepositoryInterface
	Templates    repositories.TemplateRepositoryInterface
}

type demoSeeder struct {
	repos  DemoRepositories
	faker  *gofakeit.Faker
	now    func() time.Time
	logger *slog.Logger
}

// NewDemoSeeder creates a seeder. The same seed produces the same records.
func NewDemoSeeder(repos DemoRepositories, seed uint64, logger *slog.Logger) DemoSeederInterface {
	return &demoSeeder{
		repos:  repos,
		faker:  gofakeit.New(seed),
		now:    time.Now,
		logger: logger,
	}
}

// Seed creates the given number of communities, each with members,
// applications, volunteers, ledger activity and a puja calendar.
func (s *demoSeeder) Seed(ctx context.Context, communities int) (*dto.DemoSeedResult, error) {
	if communities < 1 || communities > MaxDemoCommunities {
		return nil, ErrInvalidDemoSize
	}

	result := &dto.DemoSeedResult{}

	if err := s.seedTemplates(ctx, result); err != nil {
		return result, err
	}

	for i := 0; i < communities; i++ {
		community := &models.Community{
			Name:         fmt.Sprintf("%s %s Temple %s", s.faker.City(), s.faker.RandomString(demoDeities), s.faker.LetterN(4)),
			Description:  s.faker.Sentence(12),
			Address:      s.faker.Street(),
			City:         s.faker.City(),
			State:        s.faker.State(),
			Country:      s.faker.Country(),
			ContactEmail: s.faker.Email(),
			ContactPhone: s.faker.Phone(),
			Status:       models.StatusActive,
		}
		if err := s.repos.Communities.Create(ctx, community); err != nil {
			return result, fmt.Errorf("failed to seed community: %w", err)
		}
		result.Communities++

		if err := s.seedCommunity(ctx, community, result); err != nil {
			return result, err
		}

		s.logger.InfoContext(ctx, "seeded demo community",
			"community_id", community.ID,
			"name", community.Name)
	}

	return result, nil
}

func (s *demoSeeder) seedCommunity(ctx context.Context, community *models.Community, result *dto.DemoSeedResult) error {
	members := make([]*models.Member, 0, demoMembersPerCommunity)
	for i := 0; i < demoMembersPerCommunity; i++ {
		member := &models.Member{
			CommunityID: community.ID,
			FirstName:   s.faker.FirstName(),
			LastName:    s.faker.LastName(),
			Email:       fmt.Sprintf("%d.%s", i, s.faker.Email()),
			Phone:       s.faker.Phone(),
			Role:        s.faker.RandomString([]string{models.MemberRoleMember, models.MemberRoleMember, models.MemberRoleTrustee, models.MemberRoleVolunteerLead}),
			JoinedAt:    s.faker.DateRange(s.now().AddDate(-5, 0, 0), s.now()).UTC(),
		}
		if err := s.repos.Members.Create(ctx, member); err != nil {
			return fmt.Errorf("failed to seed member: %w", err)
		}
		members = append(members, member)
		result.Members++
	}

	for i := 0; i < demoApplicationsPerCommunity; i++ {
		application := &models.Application{
			CommunityID: community.ID,
			FirstName:   s.faker.FirstName(),
			LastName:    s.faker.LastName(),
			Email:       s.faker.Email(),
			Phone:       s.faker.Phone(),
			Message:     s.faker.Sentence(10),
		}
		if err := s.repos.Applications.Create(ctx, application); err != nil {
			return fmt.Errorf("failed to seed application: %w", err)
		}
		result.Applications++
	}

	for i := 0; i < demoVolunteersPerCommunity; i++ {
		member := members[i%len(members)]
		volunteer := &models.Volunteer{
			CommunityID:  community.ID,
			MemberID:     &member.ID,
			Name:         member.FullName(),
			Email:        member.Email,
			Phone:        member.Phone,
			Skills:       s.faker.RandomString(demoSkills) + ", " + s.faker.RandomString(demoSkills),
			Availability: s.faker.RandomString([]string{"weekends", "weekday evenings", "festivals only"}),
		}
		if err := s.repos.Volunteers.Create(ctx, volunteer); err != nil {
			return fmt.Errorf("failed to seed volunteer: %w", err)
		}
		result.Volunteers++
	}

	for i := 0; i < demoDonationsPerCommunity; i++ {
		donation := &models.Donation{
			CommunityID:   community.ID,
			DonorName:     s.faker.Name(),
			DonorEmail:    s.faker.Email(),
			Amount:        s.amount(11, 5000),
			Purpose:       s.faker.RandomString(models.DonationPurposes),
			PaymentMethod: s.faker.RandomString([]string{models.PaymentMethodCash, models.PaymentMethodUPI, models.PaymentMethodCard, models.PaymentMethodCheque}),
			DonatedAt:     s.faker.DateRange(s.now().AddDate(-1, 0, 0), s.now()).UTC(),
		}
		if i%3 == 0 {
			member := members[i%len(members)]
			donation.MemberID = &member.ID
			donation.DonorName = member.FullName()
			donation.DonorEmail = member.Email
		}
		if err := s.repos.Donations.CreateWithLedger(ctx, donation); err != nil {
			return fmt.Errorf("failed to seed donation: %w", err)
		}
		result.Donations++
	}

	for i := 0; i < demoExpensesPerCommunity; i++ {
		expense := &models.Expense{
			CommunityID: community.ID,
			Category: s.faker.RandomString([]string{
				models.ExpenseCategoryUtilities, models.ExpenseCategoryMaintenance,
				models.ExpenseCategoryPujaSupplies, models.ExpenseCategoryEvents,
			}),
			Vendor:      s.faker.Company(),
			Description: s.faker.Sentence(6),
			Amount:      s.amount(20, 1500),
			IncurredAt:  s.faker.DateRange(s.now().AddDate(-1, 0, 0), s.now()).UTC(),
		}
		if err := s.repos.Expenses.CreateWithLedger(ctx, expense); err != nil {
			return fmt.Errorf("failed to seed expense: %w", err)
		}
		result.Expenses++
	}

	// one puja per day keeps the calendar free of overlaps
	start := s.now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 1).Add(7 * time.Hour)
	for i := 0; i < demoPujasPerCommunity; i++ {
		deity := s.faker.RandomString(demoDeities)
		puja := &models.Puja{
			CommunityID:     community.ID,
			Name:            deity + " " + s.faker.RandomString(demoPujaNames),
			Deity:           deity,
			PriestName:      s.faker.Name(),
			Location:        s.faker.RandomString(demoLocations),
			ScheduledAt:     start.AddDate(0, 0, i),
			DurationMinutes: s.faker.RandomInt([]int{30, 45, 60, 90}),
			SponsorName:     s.faker.Name(),
			Fee:             s.amount(51, 501),
		}
		if err := s.repos.Pujas.Create(ctx, puja); err != nil {
			return fmt.Errorf("failed to seed puja: %w", err)
		}
		result.Pujas++
	}

	return nil
}

func (s *demoSeeder) seedTemplates(ctx context.Context, result *dto.DemoSeedResult) error {
	templates := []models.CommunicationTemplate{
		{
			Name:    "donation_receipt",
			Channel: models.ChannelEmail,
			Subject: "Receipt {{receipt_number}}",
			Body:    "Dear {{donor_name}},\n\nThank you for your donation of {{amount}}.",
		},
		{
			Name:    "puja_reminder",
			Channel: models.ChannelSMS,
			Body:    "Reminder: {{puja_name}} at {{location}} on {{date}}.",
		},
	}

	for i := range templates {
		_, err := s.repos.Templates.GetByName(ctx, templates[i].Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repositories.ErrTemplateNotFound) {
			return fmt.Errorf("failed to check template: %w", err)
		}
		if err := s.repos.Templates.Create(ctx, &templates[i]); err != nil {
			return fmt.Errorf("failed to seed template: %w", err)
		}
		result.Templates++
	}

	return nil
}

func (s *demoSeeder) amount(minValue, maxValue float64) decimal.Decimal {
	return decimal.NewFromFloat(s.faker.Price(minValue, maxValue)).Round(models.MaxAmountScale)
}
