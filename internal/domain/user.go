package domain

// User is a registered member of the review platform, keyed by username.
// Users are read-only through this API: they are seeded out of band and
// referenced by reviews (as owner) and comments (as author).
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
