package dto

type CreateVolunteerRequest struct {
	CommunityID  string  `json:"communityId" validate:"required,uuid"`
	MemberID     *string `json:"memberId" validate:"omitempty,uuid"`
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Email        string  `json:"email" validate:"omitempty,email"`
	Phone        string  `json:"phone" validate:"max=30"`
	Skills       string  `json:"skills" validate:"max=1000"`
	Availability string  `json:"availability" validate:"max=200"`
}

type UpdateVolunteerRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	Skills       *string `json:"skills" validate:"omitempty,max=1000"`
	Availability *string `json:"availability" validate:"omitempty,max=200"`
	Status       *string `json:"status" validate:"omitempty,record_status"`
}
