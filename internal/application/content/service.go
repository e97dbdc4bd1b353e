package content

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/domain/post"
)

// Author identifies who performed a mutating operation. Posts and comments
// record display fields, not account ids.
type Author struct {
	Name  string
	Image string
}

// Service defines the business logic for posts, categories and comments
type Service interface {
	ListPosts() ([]post.Post, error)
	GetPost(slug string) (*post.Post, error)
	ListCategories() ([]post.Category, error)
	GetCategory(slug string) (*post.Category, error)
	ListPostsByCategory(categorySlug string) ([]post.Post, error)
	CreatePost(req post.CreatePostRequest, author Author) (*post.Post, error)
	UpdatePost(slug string, req post.UpdatePostRequest) (*post.Post, error)
	DeletePost(slug string) error
	LikePost(slug string) (*post.Post, error)
	AddComment(slug string, req post.AddCommentRequest, author Author) (*post.Post, error)
}

type service struct {
	posts      post.Repository
	categories post.CategoryRepository
}

// NewService creates a new content service
func NewService(posts post.Repository, categories post.CategoryRepository) Service {
	return &service{
		posts:      posts,
		categories: categories,
	}
}

func (s *service) ListPosts() ([]post.Post, error) {
	return s.posts.List()
}

func (s *service) GetPost(slug string) (*post.Post, error) {
	return s.posts.FindBySlug(slug)
}

func (s *service) ListCategories() ([]post.Category, error) {
	return s.categories.List()
}

func (s *service) GetCategory(slug string) (*post.Category, error) {
	return s.categories.FindBySlug(slug)
}

func (s *service) ListPostsByCategory(categorySlug string) ([]post.Post, error) {
	category, err := s.categories.FindBySlug(categorySlug)
	if err != nil {
		return nil, err
	}
	return s.posts.ListByCategory(category.Name)
}

func (s *service) CreatePost(req post.CreatePostRequest, author Author) (*post.Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, post.ErrInvalidTitle
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, post.ErrInvalidContent
	}

	// A title of pure punctuation slugifies to "", which no route can address.
	slug := post.Slugify(req.Title)
	if slug == "" {
		return nil, post.ErrInvalidTitle
	}

	categories := req.Categories
	if len(categories) == 0 {
		categories = []string{"Technology"}
	}

	p := &post.Post{
		ID:          uuid.New().String(),
		Slug:        slug,
		Title:       req.Title,
		Author:      author.Name,
		AuthorImage: author.Image,
		Date:        time.Now(),
		Categories:  categories,
		ImageURL:    req.ImageURL,
		Excerpt:     makeExcerpt(req.Content),
		Content:     req.Content,
		Likes:       0,
		Comments:    []post.Comment{},
	}

	if err := s.posts.Insert(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdatePost(slug string, req post.UpdatePostRequest) (*post.Post, error) {
	return s.posts.Update(slug, func(p *post.Post) error {
		if req.Title != "" && req.Title != p.Title {
			slug := post.Slugify(req.Title)
			if slug == "" {
				return post.ErrInvalidTitle
			}
			p.Title = req.Title
			p.Slug = slug
		}
		if req.Content != "" {
			p.Content = req.Content
			p.Excerpt = makeExcerpt(req.Content)
		}
		if req.ImageURL != "" {
			p.ImageURL = req.ImageURL
		}
		return nil
	})
}

func (s *service) DeletePost(slug string) error {
	return s.posts.Remove(slug)
}

func (s *service) LikePost(slug string) (*post.Post, error) {
	return s.posts.Update(slug, func(p *post.Post) error {
		p.Likes++
		return nil
	})
}

func (s *service) AddComment(slug string, req post.AddCommentRequest, author Author) (*post.Post, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, post.ErrInvalidContent
	}

	return s.posts.Update(slug, func(p *post.Post) error {
		comment := post.Comment{
			ID:          fmt.Sprintf("c%s-%d", p.ID, len(p.Comments)+1),
			Author:      author.Name,
			AuthorImage: author.Image,
			Text:        req.Text,
			Date:        time.Now(),
		}
		p.Comments = append(p.Comments, comment)
		return nil
	})
}

var htmlTags = regexp.MustCompile(`<[^>]+>`)

// makeExcerpt strips markup from the first 150 characters of content.
func makeExcerpt(content string) string {
	if runes := []rune(content); len(runes) > 150 {
		content = string(runes[:150])
	}
	return htmlTags.ReplaceAllString(content, "") + "..."
}
