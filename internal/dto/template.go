package dto

type CreateTemplateRequest struct {
	CommunityID *string `json:"communityId" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=1,max=150"`
	Channel     string  `json:"channel" validate:"required,template_channel"`
	Subject     string  `json:"subject" validate:"max=255"`
	Body        string  `json:"body" validate:"required,min=1"`
}

type UpdateTemplateRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=150"`
	Channel *string `json:"channel" validate:"omitempty,template_channel"`
	Subject *string `json:"subject" validate:"omitempty,max=255"`
	Body    *string `json:"body" validate:"omitempty,min=1"`
}

type RenderTemplateRequest struct {
	Variables map[string]string `json:"variables"`
}

type RenderTemplateResponse struct {
	Channel string `json:"channel"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}
