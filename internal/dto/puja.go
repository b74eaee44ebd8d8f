package dto

import "time"

type CreatePujaRequest struct {
	CommunityID     string    `json:"communityId" validate:"required,uuid"`
	Name            string    `json:"name" validate:"required,min=1,max=200"`
	Deity           string    `json:"deity" validate:"max=100"`
	Description     string    `json:"description" validate:"max=2000"`
	PriestName      string    `json:"priestName" validate:"max=200"`
	Location        string    `json:"location" validate:"required,min=1,max=200"`
	ScheduledAt     time.Time `json:"scheduledAt" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"omitempty,min=1,max=1440"`
	SponsorName     string    `json:"sponsorName" validate:"max=200"`
	Fee             string    `json:"fee" validate:"omitempty,decimal_amount"`
}

// UpdatePujaRequest reschedules or edits a puja that is still scheduled
type UpdatePujaRequest struct {
	Name            *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Deity           *string    `json:"deity" validate:"omitempty,max=100"`
	Description     *string    `json:"description" validate:"omitempty,max=2000"`
	PriestName      *string    `json:"priestName" validate:"omitempty,max=200"`
	Location        *string    `json:"location" validate:"omitempty,min=1,max=200"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	DurationMinutes *int       `json:"durationMinutes" validate:"omitempty,min=1,max=1440"`
	SponsorName     *string    `json:"sponsorName" validate:"omitempty,max=200"`
	Fee             *string    `json:"fee" validate:"omitempty,decimal_amount"`
}
