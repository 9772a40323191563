package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// User is one account row on the users page.
type User struct {
	ID            string
	FullName      string
	Email         string
	PhoneNumber   string
	AvatarURL     string
	Status        string
	RoleName      string
	Address       string
	CreatedAt     string
	DateOfBirth   string
	EmailVerified bool
	PhoneVerified bool
}

// UserQuery filters and orders the user listing.
type UserQuery struct {
	Page          PageRequest
	Search        string
	SortField     string
	SortDirection string
}

type userDTO struct {
	UserID          flexString      `json:"userId"`
	FullName        string          `json:"fullName"`
	Email           string          `json:"email"`
	PhoneNumber     string          `json:"phoneNumber"`
	AvatarURL       string          `json:"avatarUrl"`
	Status          string          `json:"status"`
	RoleName        string          `json:"roleName"`
	Role            json.RawMessage `json:"role"`
	Address         string          `json:"address"`
	CreatedAt       string          `json:"createdAt"`
	DateOfBirth     string          `json:"dateOfBirth"`
	IsEmailVerified bool            `json:"isEmailVerified"`
	IsPhoneVerified bool            `json:"isPhoneVerified"`
}

func (u userDTO) toUser() User {
	return User{
		ID:            u.UserID.String(),
		FullName:      u.FullName,
		Email:         u.Email,
		PhoneNumber:   u.PhoneNumber,
		AvatarURL:     u.AvatarURL,
		Status:        u.Status,
		RoleName:      u.roleName(),
		Address:       u.Address,
		CreatedAt:     u.CreatedAt,
		DateOfBirth:   u.DateOfBirth,
		EmailVerified: u.IsEmailVerified,
		PhoneVerified: u.IsPhoneVerified,
	}
}

// roleName prefers roleName, then role as a string or {roleName}.
func (u userDTO) roleName() string {
	if name := strings.TrimSpace(u.RoleName); name != "" {
		return name
	}
	if len(u.Role) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(u.Role, &asString); err == nil {
		return strings.TrimSpace(asString)
	}
	var asObject struct {
		RoleName string `json:"roleName"`
	}
	if err := json.Unmarshal(u.Role, &asObject); err == nil {
		return strings.TrimSpace(asObject.RoleName)
	}
	return ""
}

// ListUsers fetches one page of accounts.
func (c *Client) ListUsers(ctx context.Context, q UserQuery) (Page[User], error) {
	query := q.Page.values()
	setIf(query, "search", q.Search)
	setIf(query, "sortField", q.SortField)
	setIf(query, "sortDirection", q.SortDirection)
	resp, err := call[pageDTO[userDTO]](ctx, c, request{
		endpoint: "user.list",
		method:   http.MethodGet,
		path:     "User",
		query:    query,
	})
	if err != nil {
		return Page[User]{}, err
	}
	return mapPage(resp.Result, q.Page, userDTO.toUser), nil
}
