package taxonomy

// CategoryRef is the single-level parent reference carried by a [Category].
// Parent chains are never resolved further than one level.
type CategoryRef struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Category groups posts into a browsable hierarchy, one parent level deep.
type Category struct {
	ID          int          `json:"id"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Parent      *CategoryRef `json:"parent,omitempty"`
}

// Tag is a flat, free-form label attached to posts.
type Tag struct {
	ID          int     `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
