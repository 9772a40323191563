package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/HoangPhan2008/FE-Driveshare-Staff-Admin/internal/services/console/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges credentials for backend tokens.
func (c *Client) Login(ctx context.Context, email string, password string) (session.Credentials, error) {
	resp, err := call[loginResult](ctx, c, request{
		endpoint: "auth.login",
		method:   http.MethodPost,
		path:     "Auth/login",
		body:     loginRequest{Email: email, Password: password},
	})
	if err != nil {
		return session.Credentials{}, err
	}
	return session.Credentials{
		AccessToken:  strings.TrimSpace(resp.Result.AccessToken),
		RefreshToken: strings.TrimSpace(resp.Result.RefreshToken),
	}, nil
}

// Logout tells the backend accessToken is no longer used.
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	_, err := call[json.RawMessage](ctx, c, request{
		endpoint: "auth.logout",
		method:   http.MethodPost,
		path:     "auth/logout",
		token:    accessToken,
	})
	return err
}

var _ session.Authenticator = (*Client)(nil)
