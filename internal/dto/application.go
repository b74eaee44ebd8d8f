package dto

// SubmitApplicationRequest is the public membership form
type SubmitApplicationRequest struct {
	CommunityID string `json:"communityId" validate:"required,uuid"`
	FirstName   string `json:"firstName" validate:"required,min=1,max=100"`
	LastName    string `json:"lastName" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=30"`
	Message     string `json:"message" validate:"max=2000"`
}
