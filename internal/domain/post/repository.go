package post

// Repository defines the contract for post storage operations.
//
// Mutations targeting an existing post go through Update, which applies fn to
// the stored post as a single atomic step: two concurrent Update calls on the
// same slug observe each other's writes in arrival order, and Update never
// resurrects a post removed by Remove.
type Repository interface {
	// List returns all posts, newest first.
	List() ([]Post, error)
	// ListByCategory returns posts tagged with the category name, newest first.
	ListByCategory(name string) ([]Post, error)
	FindBySlug(slug string) (*Post, error)
	// Insert fails with ErrSlugTaken when the slug is already present.
	Insert(p *Post) error
	// Update applies fn to the post under the repository's write lock and
	// returns the resulting post. Fails with ErrNotFound for unknown slugs;
	// an error from fn aborts the update without modifying the post.
	Update(slug string, fn func(*Post) error) (*Post, error)
	// Remove fails with ErrNotFound for unknown slugs.
	Remove(slug string) error
	Count() (int, error)
}

// CategoryRepository provides the static category reference list.
type CategoryRepository interface {
	List() ([]Category, error)
	FindBySlug(slug string) (*Category, error)
}
