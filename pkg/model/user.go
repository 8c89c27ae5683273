package model

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleClient    Role = "client"
)

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role,omitempty"`
}

type RegisterReq struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        Role   `json:"role,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

type AuthUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	CompanyName string `json:"company_name,omitempty"`
}

type AuthRes struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
