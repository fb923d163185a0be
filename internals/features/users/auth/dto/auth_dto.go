package dto

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserLanguage string `json:"user_language" validate:"omitempty,oneof=ar en"`

	// Optional: create an organization in the same call and make the new
	// user its owner.
	OrgName string `json:"org_name" validate:"omitempty,min=2,max=120"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type SwitchOrgRequest struct {
	OrgID string `json:"org_id" validate:"required,uuid"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	OrgID        string `json:"org_id,omitempty"`
	OrgRole      string `json:"org_role,omitempty"`
}
