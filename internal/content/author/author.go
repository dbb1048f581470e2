package author

// Author is the public profile of a content author. Optional profile
// fields stay nil when the source row holds no value.
type Author struct {
	ID        int     `json:"id"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Website   *string `json:"website,omitempty"`
}
