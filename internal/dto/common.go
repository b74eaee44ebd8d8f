package dto

// ListMeta describes the page returned by a list endpoint
type ListMeta struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// ReviewRequest carries the reviewer's note for approve/reject actions
type ReviewRequest struct {
	Note string `json:"note" validate:"max=1000"`
}
