package repository

import (
	"sort"
	"sync"

	"inkwell/internal/domain/post"
)

// postMemoryRepository owns the post collection. All mutations run under one
// write lock, which gives every post a total mutation order equal to arrival
// order at the repository: no lost likes, no comment appended after a delete.
type postMemoryRepository struct {
	mu     sync.RWMutex
	bySlug map[string]*post.Post
}

// NewPostMemoryRepository creates an empty in-memory post repository.
func NewPostMemoryRepository() post.Repository {
	return &postMemoryRepository{
		bySlug: make(map[string]*post.Post),
	}
}

func (r *postMemoryRepository) List() ([]post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*post.Post) bool { return true }), nil
}

func (r *postMemoryRepository) ListByCategory(name string) ([]post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(p *post.Post) bool {
		for _, c := range p.Categories {
			if c == name {
				return true
			}
		}
		return false
	}), nil
}

// collect snapshots matching posts newest first. Callers hold at least a
// read lock.
func (r *postMemoryRepository) collect(match func(*post.Post) bool) []post.Post {
	posts := make([]post.Post, 0, len(r.bySlug))
	for _, p := range r.bySlug {
		if match(p) {
			posts = append(posts, clonePost(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Date.Equal(posts[j].Date) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].Date.After(posts[j].Date)
	})
	return posts
}

func (r *postMemoryRepository) FindBySlug(slug string) (*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.bySlug[slug]
	if !ok {
		return nil, post.ErrNotFound
	}
	copied := clonePost(p)
	return &copied, nil
}

func (r *postMemoryRepository) Insert(p *post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bySlug[p.Slug]; exists {
		return post.ErrSlugTaken
	}

	stored := clonePost(p)
	r.bySlug[stored.Slug] = &stored
	return nil
}

func (r *postMemoryRepository) Update(slug string, fn func(*post.Post) error) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.bySlug[slug]
	if !ok {
		return nil, post.ErrNotFound
	}

	// Mutate a copy so a failing fn leaves the stored post untouched.
	updated := clonePost(p)
	if err := fn(&updated); err != nil {
		return nil, err
	}

	if updated.Slug != slug {
		if _, exists := r.bySlug[updated.Slug]; exists {
			return nil, post.ErrSlugTaken
		}
		delete(r.bySlug, slug)
	}
	r.bySlug[updated.Slug] = &updated

	result := clonePost(&updated)
	return &result, nil
}

func (r *postMemoryRepository) Remove(slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bySlug[slug]; !ok {
		return post.ErrNotFound
	}
	delete(r.bySlug, slug)
	return nil
}

func (r *postMemoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bySlug), nil
}

// clonePost deep-copies the slices so callers never alias stored state.
func clonePost(p *post.Post) post.Post {
	copied := *p
	copied.Categories = append([]string(nil), p.Categories...)
	copied.Comments = append([]post.Comment(nil), p.Comments...)
	return copied
}
