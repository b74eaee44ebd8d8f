package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonation_BeforeCreate(t *testing.T) {
	donatedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	donation := &Donation{
		CommunityID:   uuid.New(),
		DonorName:     "Lakshmi Iyer",
		Amount:        decimal.RequireFromString("1001"),
		PaymentMethod: PaymentMethodUPI,
		DonatedAt:     donatedAt,
	}

	require.NoError(t, donation.BeforeCreate(nil))
	assert.Equal(t, DonationPurposeGeneral, donation.Purpose)
	assert.True(t, strings.HasPrefix(donation.ReceiptNumber, "DON-20260314-"))
	assert.Len(t, donation.ReceiptNumber, len("DON-20260314-ABCDEF"))
}

func TestDonation_Validate(t *testing.T) {
	base := func() Donation {
		return Donation{
			CommunityID:   uuid.New(),
			DonorName:     "Ravi",
			Amount:        decimal.NewFromInt(51),
			Purpose:       DonationPurposePuja,
			PaymentMethod: PaymentMethodCash,
		}
	}

	valid := base()
	assert.NoError(t, valid.Validate())

	noAmount := base()
	noAmount.Amount = decimal.Zero
	assert.ErrorIs(t, noAmount.Validate(), ErrInvalidAmount)

	badPurpose := base()
	badPurpose.Purpose = "lottery"
	assert.Error(t, badPurpose.Validate())

	badMethod := base()
	badMethod.PaymentMethod = "crypto"
	assert.Error(t, badMethod.Validate())

	noDonor := base()
	noDonor.DonorName = " "
	assert.Error(t, noDonor.Validate())
}

func TestDonation_LedgerEntry(t *testing.T) {
	donation := &Donation{
		ID:            uuid.New(),
		CommunityID:   uuid.New(),
		DonorName:     "Anand",
		Amount:        decimal.RequireFromString("250.5"),
		Purpose:       DonationPurposeAnnadanam,
		ReceiptNumber: "DON-20260101-AAAAAA",
		DonatedAt:     time.Now().UTC(),
	}

	entry := donation.LedgerEntry()

	assert.Equal(t, TransactionTypeIncome, entry.Type)
	assert.Equal(t, "250.50", entry.Amount)
	assert.Equal(t, "donation:annadanam", entry.Category)
	assert.Equal(t, TransactionSourceDonation, entry.Source)
	assert.Equal(t, donation.ID, *entry.SourceID)
	assert.Equal(t, donation.CommunityID, *entry.CommunityID)
	assert.Equal(t, donation.ReceiptNumber, entry.Reference)
	assert.NoError(t, entry.Validate())
}

func TestExpense_LedgerEntry(t *testing.T) {
	expense := &Expense{
		ID:          uuid.New(),
		CommunityID: uuid.New(),
		Category:    ExpenseCategoryUtilities,
		Description: "Electricity bill",
		Amount:      decimal.RequireFromString("3200"),
		IncurredAt:  time.Now().UTC(),
	}
	require.NoError(t, expense.Validate())

	entry := expense.LedgerEntry()

	assert.Equal(t, TransactionTypeExpense, entry.Type)
	assert.Equal(t, "3200.00", entry.Amount)
	assert.Equal(t, "expense:utilities", entry.Category)
	assert.Equal(t, TransactionSourceExpense, entry.Source)
	assert.False(t, entry.IsManual())
}

func TestApplication_Review(t *testing.T) {
	reviewer := uuid.New()
	app := &Application{
		CommunityID: uuid.New(),
		FirstName:   "Meena",
		LastName:    "Das",
		Email:       "meena@example.org",
		Status:      ApplicationStatusPending,
	}
	require.NoError(t, app.Validate())

	member := app.ToMember()
	assert.Equal(t, app.CommunityID, member.CommunityID)
	assert.Equal(t, "Meena Das", member.FullName())

	require.NoError(t, app.Approve(reviewer, member.ID, "welcome"))
	assert.Equal(t, ApplicationStatusApproved, app.Status)
	assert.Equal(t, member.ID, *app.MemberID)
	assert.Equal(t, reviewer, *app.ReviewedBy)
	assert.NotNil(t, app.ReviewedAt)

	assert.ErrorIs(t, app.Approve(reviewer, member.ID, ""), ErrApplicationReviewed)
	assert.ErrorIs(t, app.Reject(reviewer, ""), ErrApplicationReviewed)
}

func TestPuja_Overlaps(t *testing.T) {
	community := uuid.New()
	start := time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC)
	morning := &Puja{ID: uuid.New(), CommunityID: community, Location: "Main Hall", ScheduledAt: start, DurationMinutes: 90, Status: PujaStatusScheduled}

	tests := []struct {
		name  string
		other Puja
		want  bool
	}{
		{"same slot", Puja{ScheduledAt: start, DurationMinutes: 30, Location: "main hall"}, true},
		{"starts inside", Puja{ScheduledAt: start.Add(60 * time.Minute), DurationMinutes: 60, Location: "Main Hall"}, true},
		{"back to back", Puja{ScheduledAt: start.Add(90 * time.Minute), DurationMinutes: 60, Location: "Main Hall"}, false},
		{"other location", Puja{ScheduledAt: start, DurationMinutes: 60, Location: "Shrine"}, false},
		{"other community", Puja{ScheduledAt: start, DurationMinutes: 60, Location: "Main Hall", CommunityID: uuid.New()}, false},
		{"cancelled", Puja{ScheduledAt: start, DurationMinutes: 60, Location: "Main Hall", Status: PujaStatusCancelled}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := tt.other
			other.ID = uuid.New()
			if other.CommunityID == uuid.Nil {
				other.CommunityID = community
			}
			if other.Status == "" {
				other.Status = PujaStatusScheduled
			}
			assert.Equal(t, tt.want, morning.Overlaps(&other))
		})
	}

	assert.False(t, morning.Overlaps(morning))
}

func TestPuja_Lifecycle(t *testing.T) {
	puja := &Puja{
		CommunityID: uuid.New(),
		Name:        "Satyanarayana Puja",
		Location:    "Main Hall",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, puja.BeforeCreate(nil))
	assert.Equal(t, PujaStatusScheduled, puja.Status)
	assert.Equal(t, DefaultPujaDurationMinutes, puja.DurationMinutes)

	require.NoError(t, puja.Complete())
	assert.Equal(t, PujaStatusCompleted, puja.Status)
	assert.ErrorIs(t, puja.Cancel(), ErrPujaClosed)

	puja.Fee = decimal.NewFromInt(-1)
	assert.Error(t, puja.Validate())
}

func TestCommunicationTemplate_Render(t *testing.T) {
	tmpl := &CommunicationTemplate{
		Name:    "donation-thanks",
		Channel: ChannelEmail,
		Subject: "Thank you {{ donorName }}",
		Body:    "Dear {{donorName}}, we received {{amount}} for {{purpose}}.",
	}
	require.NoError(t, tmpl.Validate())
	assert.Equal(t, []string{"amount", "donorName", "purpose"}, tmpl.Placeholders())

	subject, body, err := tmpl.Render(map[string]string{
		"donorName": "Kavya",
		"amount":    "501.00",
		"purpose":   "festival",
		"unused":    "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "Thank you Kavya", subject)
	assert.Equal(t, "Dear Kavya, we received 501.00 for festival.", body)

	_, _, err = tmpl.Render(map[string]string{"donorName": "Kavya"})
	var missing *MissingVariablesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"amount", "purpose"}, missing.Names)
}

func TestCommunicationTemplate_Validate(t *testing.T) {
	sms := &CommunicationTemplate{Name: "reminder", Channel: ChannelSMS, Body: "Puja at {{time}}"}
	assert.NoError(t, sms.Validate())

	email := &CommunicationTemplate{Name: "welcome", Channel: ChannelEmail, Body: "Hi"}
	assert.Error(t, email.Validate())

	fax := &CommunicationTemplate{Name: "old", Channel: "fax", Body: "Hi"}
	assert.Error(t, fax.Validate())
}

func TestVolunteer_SkillList(t *testing.T) {
	v := &Volunteer{Skills: "cooking, ,sound system , decoration"}
	assert.Equal(t, []string{"cooking", "sound system", "decoration"}, v.SkillList())
	assert.Nil(t, (&Volunteer{}).SkillList())
}

func TestListOptions_Normalize(t *testing.T) {
	assert.Equal(t, ListOptions{Limit: DefaultListLimit}, ListOptions{}.Normalize())
	assert.Equal(t, ListOptions{Limit: MaxListLimit, Offset: 0}, ListOptions{Limit: 1000, Offset: -4}.Normalize())
	assert.Equal(t, ListOptions{Limit: 5, Offset: 10}, ListOptions{Limit: 5, Offset: 10}.Normalize())
}
