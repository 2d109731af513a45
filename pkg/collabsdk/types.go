package collabsdk

import "time"

// ErrorResponse is the service's standard error envelope.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "INVALID_INVITE_CODE")
	Error string `json:"error"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// SignupRequest registers a new member account.
type SignupRequest struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName,omitempty"`
	Password    string `json:"password"`
}

// MemberResponse is the public view of a member.
type MemberResponse struct {
	ID          string `json:"id"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
}

// LoginRequest exchanges credentials for an access token.
type LoginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

// LoginResponse carries the minted access token.
type LoginResponse struct {
	AccessToken string         `json:"accessToken"`
	TokenType   string         `json:"tokenType"`
	ExpiresIn   int            `json:"expiresIn"`
	Member      MemberResponse `json:"member"`
}

// CreateProjectRequest creates a new project owned by the caller.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// ProjectResponse is the public view of a project.
type ProjectResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// InviteResponse carries a project invite code and when it stops working.
type InviteResponse struct {
	InviteCode string    `json:"inviteCode"`
	ExpiredAt  time.Time `json:"expiredAt"`
}

// JoinRequest redeems an invite code on behalf of the caller.
type JoinRequest struct {
	InviteCode string `json:"inviteCode"`
}

// HealthResponse is returned by the liveness and readiness endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
