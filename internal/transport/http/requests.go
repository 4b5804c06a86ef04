package http

type registerRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email"`
	InstitutionID string `json:"institution_id" validate:"omitempty,entity_id"`
	Password      string `json:"password" validate:"required,min=8,max=100"`
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type newArticleRequest struct {
	Title          string   `json:"title" validate:"required,min=5,max=255"`
	Abstract       string   `json:"abstract" validate:"required,min=10"`
	Keywords       []string `json:"keywords" validate:"required,min=1,dive,min=1"`
	Disciplines    []string `json:"disciplines" validate:"required,min=1,dive,min=1"`
	References     string   `json:"references"`
	FullText       string   `json:"full_text"`
	License        string   `json:"license"`
	WorkingGroupID string   `json:"working_group_id" validate:"omitempty,entity_id"`
}

type commentRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	ParentID string `json:"parent_id" validate:"omitempty,entity_id"`
}

type reviewRequest struct {
	Recommendation string `json:"recommendation" validate:"required,oneof='Accept' 'Minor Revisions' 'Major Revisions' 'Reject'"`
	Comment        string `json:"comment" validate:"required,min=1"`
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,entity_id"`
	Text        string `json:"text" validate:"required,min=1"`
}

type suggestRequest struct {
	Abstract string `json:"abstract" validate:"required,min=10"`
}

type newGroupRequest struct {
	Name         string `json:"name" validate:"required,min=3,max=100"`
	Description  string `json:"description" validate:"required,min=10"`
	Bibliography string `json:"bibliography"`
}

type addMemberRequest struct {
	UserID string `json:"user_id" validate:"required,entity_id"`
}

type newInstitutionRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	City        string `json:"city" validate:"required"`
	Country     string `json:"country" validate:"required"`
	WebsiteURL  string `json:"website_url"`
	Description string `json:"description"`
}
