package dto

// RegisterRequest menerima JSON maupun form (OAuth2 password style).
// Code: key lama "registration_code", alias pendek "code".
type RegisterRequest struct {
	Username         string  `json:"username" form:"username" validate:"required,min=1,max=50"`
	Password         string  `json:"password" form:"password" validate:"required,min=1"`
	RegistrationCode *string `json:"registration_code" form:"registration_code" validate:"omitempty,max=64"`
	Code             *string `json:"code" form:"code" validate:"omitempty,max=64"`
}

// CodeValue: registration_code menang kalau dua-duanya dikirim.
func (r *RegisterRequest) CodeValue() *string {
	if r.RegistrationCode != nil && *r.RegistrationCode != "" {
		return r.RegistrationCode
	}
	return r.Code
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Permission  int    `json:"permission,omitempty"`
}

func NewTokenResponse(token string, permission int) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: "bearer", Permission: permission}
}
