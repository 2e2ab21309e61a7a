package entity

import "time"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// IsValid проверяет роль участника команды
func (r Role) IsValid() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleMember
}

type Team struct {
	ID          string
	Name        string
	Description *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TeamMember struct {
	ID       string
	TeamID   string
	UserID   string
	Role     Role
	JoinedAt time.Time
	// Email заполняется только при загрузке вместе с профилями
	Email string
}

type TeamWithMembers struct {
	Team
	Members []TeamMember
	// UserRole роль текущего пользователя в команде
	UserRole Role
}

// Membership строка team_members пользователя вместе с командой
type Membership struct {
	Team *Team
	Role Role
}
