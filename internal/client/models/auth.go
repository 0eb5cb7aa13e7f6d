// Package models defines the JSON payloads exchanged with the WillBank
// microservices.
package models

type ClientRole string

const (
	RoleClient ClientRole = "CLIENT"
	RoleAgent  ClientRole = "AGENT"
	RoleAdmin  ClientRole = "ADMIN"
)

type ClientStatus string

const (
	ClientActive    ClientStatus = "ACTIVE"
	ClientBlocked   ClientStatus = "BLOCKED"
	ClientPending   ClientStatus = "PENDING"
	ClientSuspended ClientStatus = "SUSPENDED"
)

// Client is a bank customer profile as returned by the client service.
// It is also cached locally under the currentUser key.
type Client struct {
	ID        int64        `json:"id,omitempty"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone,omitempty"`
	Address   string       `json:"address,omitempty"`
	CIN       string       `json:"cin,omitempty"`
	Role      ClientRole   `json:"role,omitempty"`
	Status    ClientStatus `json:"status,omitempty"`
	LastLogin string       `json:"lastLogin,omitempty"`
	CreatedAt string       `json:"createdAt,omitempty"`
	UpdatedAt string       `json:"updatedAt,omitempty"`
}

// FullName joins first and last name.
func (c Client) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FCMToken string `json:"fcmToken,omitempty"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CIN       string `json:"cin"`
	FCMToken  string `json:"fcmToken,omitempty"`
}

// LoginResponse is returned by login, register and refresh. ExpiresIn is in
// seconds.
type LoginResponse struct {
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
	TokenType    string  `json:"tokenType"`
	ExpiresIn    int64   `json:"expiresIn"`
	Client       *Client `json:"client,omitempty"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// APIError is the error body the services send with non-2xx responses.
type APIError struct {
	Message   string `json:"message"`
	Status    int    `json:"status,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
