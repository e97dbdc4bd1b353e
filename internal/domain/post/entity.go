package post

import "time"

// Post represents a published blog post.
type Post struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	AuthorImage string    `json:"authorImage"`
	Date        time.Time `json:"date"`
	Categories  []string  `json:"categories"`
	ImageURL    string    `json:"imageUrl"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"` // HTML
	Likes       int       `json:"likes"`
	Comments    []Comment `json:"comments"`
}

// Comment is scoped to its parent post and never edited after creation.
type Comment struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	AuthorImage string    `json:"authorImage"`
	Text        string    `json:"text"`
	Date        time.Time `json:"date"`
}

// Category is a static reference entry; not mutable through the API.
type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CreatePostRequest represents the payload to create a post.
type CreatePostRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	ImageURL   string   `json:"imageUrl"`
	Categories []string `json:"categories,omitempty"`
}

// UpdatePostRequest represents the payload to update a post.
// Empty fields leave the stored value untouched.
type UpdatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// AddCommentRequest represents the payload to comment on a post.
type AddCommentRequest struct {
	Text string `json:"text"`
}
