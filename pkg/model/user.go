package model

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// AgentStatus tracks a user's outstanding agent application. It is empty for
// users who never applied; approval flips Role to agent instead of adding a
// status value.
type AgentStatus string

const (
	AgentStatusNone     AgentStatus = ""
	AgentStatusPending  AgentStatus = "pending"
	AgentStatusRejected AgentStatus = "rejected"
)

type User struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name" validate:"required,min=2,max=100"`
	Email       string      `json:"email" validate:"required,email"`
	Role        Role        `json:"role" validate:"required,oneof=user agent admin"`
	AgentStatus AgentStatus `json:"agentStatus,omitempty" validate:"omitempty,oneof=pending rejected"`
}

type SignupRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AgentApplication struct {
	ID             string      `json:"_id,omitempty"`
	UserRef        string      `json:"user,omitempty"`
	Agency         string      `json:"agency" validate:"required,min=2,max=100"`
	Specialization string      `json:"specialization" validate:"required,min=2,max=100"`
	Bio            string      `json:"bio" validate:"required,min=10,max=1000"`
	Phone          string      `json:"phone" validate:"required,e164"`
	Status         AgentStatus `json:"status,omitempty"`
}
