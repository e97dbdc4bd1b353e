package repository

import "inkwell/internal/domain/post"

// categoryMemoryRepository serves the fixed category reference list.
type categoryMemoryRepository struct {
	categories []post.Category
}

// NewCategoryMemoryRepository creates a category repository over a fixed list.
func NewCategoryMemoryRepository(categories []post.Category) post.CategoryRepository {
	return &categoryMemoryRepository{categories: categories}
}

func (r *categoryMemoryRepository) List() ([]post.Category, error) {
	return append([]post.Category(nil), r.categories...), nil
}

func (r *categoryMemoryRepository) FindBySlug(slug string) (*post.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			copied := c
			return &copied, nil
		}
	}
	return nil, post.ErrCategoryNotFound
}
