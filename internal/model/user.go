package model

// Role strings carried by API users. An endpoint guarded by the role
// middleware accepts a caller whose role set intersects the required set.
const (
	RolePlantMonitoring = "plant_monitoring"
	RoleAdmin           = "admin"
)

// User is an API user as stored in the identity collection.
// Password holds the bcrypt hash, never the plaintext; Token is the last
// issued access token, reused while it is still valid.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Password string   `json:"-"`
	Roles    []string `json:"role"`
	Token    string   `json:"-"`
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
