package dto

type CreateMemberRequest struct {
	CommunityID string `json:"communityId" validate:"required,uuid"`
	FirstName   string `json:"firstName" validate:"required,min=1,max=100"`
	LastName    string `json:"lastName" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=30"`
	Role        string `json:"role" validate:"omitempty,member_role"`
}

type UpdateMemberRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Role      *string `json:"role" validate:"omitempty,member_role"`
	Status    *string `json:"status" validate:"omitempty,record_status"`
}
