// Mapping of GitHub REST API responses into structures.

package githubapi

// UserSummary is one entry of the paginated /users listing.
type UserSummary struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
}

// UserDetail is the per-login detail response.
type UserDetail struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
}
