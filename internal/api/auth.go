package api

import "context"

// User is the identity record returned by login. The backend carries no
// bearer token; role and username travel client-side after login.
type User struct {
	Username          string `json:"username"`
	Role              string `json:"role"`
	FirstLogin        bool   `json:"first_login"`
	Message           string `json:"message,omitempty"`
	IsProfileComplete bool   `json:"isProfileComplete"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*User, error) {
	var user User
	if err := c.post(ctx, "/auth/login", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.post(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	return c.put(ctx, "/auth/reset-password", req, nil)
}
