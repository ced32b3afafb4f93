package vo

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthLogin struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	ScopeID     string `json:"scope_id,omitempty"`
}
