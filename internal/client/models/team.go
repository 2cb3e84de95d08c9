package models

import "time"

// TeamRole is the permission level of a member within a team.
type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleMember TeamRole = "member"
)

// Team groups users sharing documents and models under one business account.
type Team struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Members   []TeamMember `json:"members,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// TeamMember is a user's membership record within a team.
type TeamMember struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
	Role   TeamRole `json:"role"`
}

// TeamSpec is the payload for creating or renaming a team.
type TeamSpec struct {
	Name string `json:"name"`
}

// MemberSpec is the payload for adding a member or changing a role.
type MemberSpec struct {
	Email string   `json:"email,omitempty"`
	Role  TeamRole `json:"role"`
}
