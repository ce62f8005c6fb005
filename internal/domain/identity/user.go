package identity

// Role identifies what a user is allowed to do across all services.
type Role string

const (
	RoleClient          Role = "client"
	RoleRestaurantAdmin Role = "restaurant_admin"
	RoleSystemAdmin     Role = "system_admin"
)

// ParseRole validates a role string and returns the typed role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleRestaurantAdmin, RoleSystemAdmin:
		return Role(s), true
	}
	return "", false
}

// Roles returns every known role, for error messages and validation.
func Roles() []Role {
	return []Role{RoleClient, RoleRestaurantAdmin, RoleSystemAdmin}
}

// User is the account record owned by the auth service.
// Other services never persist users; they hold the ID as a remote reference.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;not null"`
	Role         Role   `gorm:"not null;default:client;index"`
}

// TableName implements the gorm table naming convention
func (User) TableName() string {
	return "users"
}
