package models

// Blog represents a blog post attached to the storefront.
//
// Blogs are write-once: there is no update or delete path, only create and
// read. OwnerEmail follows the same server-side stamping rule as Item.
type Blog struct {
	// ID is the unique identifier for the post (UUID format), assigned by
	// the store on insert.
	ID string `json:"id"`

	// Title is the post headline.
	Title string `json:"title"`

	// Content is the post body.
	Content string `json:"content"`

	// Image is an optional cover image URI.
	Image string `json:"image,omitempty"`

	// OwnerEmail identifies the author. Stamped from the verified token
	// claim at creation time.
	OwnerEmail string `json:"owner_email"`

	// CreatedAt is the Unix timestamp when the post was created.
	CreatedAt int64 `json:"created_at"`
}
