package models

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User is consumed, not managed, by this service: session issuance lives
// elsewhere, the review engine only needs a stable identity and role. Seeded
// users double as the pseudo-author pool for synthetic reviews.
type User struct {
	BaseModel
	Name     string   `gorm:"not null" json:"name"`
	Username string   `gorm:"uniqueIndex;not null" json:"username"`
	Email    string   `gorm:"uniqueIndex;not null" json:"email"`
	Avatar   string   `json:"avatar"`
	Role     UserRole `gorm:"type:varchar(16);not null;default:'user'" json:"role"`
}
