// Package seed loads the starter accounts, categories and posts so the
// store is browsable immediately after startup.
package seed

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/domain/account"
	"inkwell/internal/domain/post"
)

// Categories returns the static category reference list.
func Categories() []post.Category {
	return []post.Category{
		{Name: "Web Design", Slug: "web-design"},
		{Name: "Technology", Slug: "technology"},
		{Name: "Personal Growth", Slug: "personal-growth"},
		{Name: "Creative Writing", Slug: "creative-writing"},
		{Name: "UI/UX", Slug: "ui-ux"},
	}
}

// Accounts inserts the admin account unless it already exists.
func Accounts(repo account.Repository) error {
	if _, err := repo.GetByEmail("admin@example.com"); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	return repo.Create(&account.Account{
		ID:           "1",
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	})
}

// Posts inserts the starter posts into an empty repository.
func Posts(repo post.Repository) error {
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, p := range starterPosts() {
		if err := repo.Insert(&p); err != nil {
			return fmt.Errorf("seeding post %q: %w", p.Slug, err)
		}
	}
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func starterPosts() []post.Post {
	return []post.Post{
		{
			ID:          "1",
			Slug:        "the-art-of-minimalism-in-modern-web-design",
			Title:       "The Art of Minimalism in Modern Web Design",
			Author:      "Eleanor Vance",
			AuthorImage: "https://placehold.co/100x100.png",
			Date:        day(2024, time.July, 21),
			Categories:  []string{"Web Design", "UI/UX"},
			ImageURL:    "https://placehold.co/800x400.png",
			Excerpt:     "Discover how stripping back to the essentials can create a more powerful and engaging user experience in the digital age.",
			Content: `<p>In a world saturated with information, minimalism in web design isn't just a stylistic choice; it's a strategic one. By embracing negative space, clean typography, and a limited color palette, designers can guide users more effectively and create a sense of calm and clarity.</p>
<h2>The Philosophy of "Less is More"</h2>
<p>The core principle of minimalism is to remove all that is unnecessary to let the content shine. This means every element on the page must have a purpose. If it doesn't contribute to the user's understanding or journey, it's noise.</p>
<blockquote>"Simplicity is the ultimate sophistication." - Leonardo da Vinci</blockquote>
<p>Ultimately, a minimalist design respects the user's time and attention.</p>`,
			Likes: 128,
			Comments: []post.Comment{
				{ID: "c1-1", Author: "Liam Gallagher", AuthorImage: "https://placehold.co/40x40.png", Text: "Great read! This really clarifies the purpose behind minimalism.", Date: day(2024, time.July, 22)},
				{ID: "c1-2", Author: "Sophia Chen", AuthorImage: "https://placehold.co/40x40.png", Text: "I've been trying to implement this in my projects. The point about whitespace is key.", Date: day(2024, time.July, 22)},
			},
		},
		{
			ID:          "2",
			Slug:        "navigating-the-future-of-ai",
			Title:       "Navigating the Future of Artificial Intelligence",
			Author:      "Marcus Holloway",
			AuthorImage: "https://placehold.co/100x100.png",
			Date:        day(2024, time.July, 20),
			Categories:  []string{"Technology"},
			ImageURL:    "https://placehold.co/800x450.png",
			Excerpt:     "AI is evolving at an unprecedented rate. What does this mean for our future, and how can we prepare for the changes to come?",
			Content: `<h2>The AI Revolution is Here</h2>
<p>Artificial Intelligence is no longer a concept from science fiction; it's a driving force in our daily lives. From recommendation algorithms to autonomous vehicles, AI's integration into society is reshaping industries and creating new possibilities.</p>
<p>The future of AI is not predetermined. It is a future we will all build together through our choices, policies, and innovations.</p>`,
			Likes: 256,
			Comments: []post.Comment{
				{ID: "c2-1", Author: "David Lee", AuthorImage: "https://placehold.co/40x40.png", Text: "A very balanced perspective on a complex topic.", Date: day(2024, time.July, 21)},
			},
		},
		{
			ID:          "3",
			Slug:        "the-power-of-habit",
			Title:       "The Power of Habit: Small Changes, Remarkable Results",
			Author:      "Aria Montgomery",
			AuthorImage: "https://placehold.co/100x100.png",
			Date:        day(2024, time.July, 18),
			Categories:  []string{"Personal Growth"},
			ImageURL:    "https://placehold.co/800x500.png",
			Excerpt:     "Your life today is essentially the sum of your habits. How can you build good ones and break bad ones to achieve your goals?",
			Content: `<h2>Understanding the Habit Loop</h2>
<p>At its core, every habit follows a simple neurological loop: cue, routine, and reward. Understanding this structure is the first step to taking control of your habits.</p>
<blockquote>"We are what we repeatedly do. Excellence, then, is not an act, but a habit." - Will Durant</blockquote>
<p>Start small. Over time, these small, consistent actions compound into significant personal transformation.</p>`,
			Likes:    312,
			Comments: []post.Comment{},
		},
		{
			ID:          "4",
			Slug:        "a-journey-through-the-stars",
			Title:       "A Journey Through the Stars: A Short Story",
			Author:      "Kaelen",
			AuthorImage: "https://placehold.co/100x100.png",
			Date:        day(2024, time.July, 15),
			Categories:  []string{"Creative Writing", "Technology"},
			ImageURL:    "https://placehold.co/800x550.png",
			Excerpt:     "The freighter hummed, a lonely sound in the vast emptiness. Elara watched the nebulae swirl outside the viewport, a cosmic ballet of dust and gas.",
			Content: `<p>The freighter hummed, a lonely sound in the vast emptiness. Elara watched the nebulae swirl outside the viewport, a cosmic ballet of dust and gas. Her destination: Xylos, a planet said to be made of crystal, orbiting a dying star.</p>
<h2>The Whisper of a Legend</h2>
<p>The legend spoke of a place where light itself was trapped, refracting through the planet's core to create a perpetual dawn. As the ship broke through the stellar dust, Xylos came into view. She had found it. And now, she had a new map to create.</p>`,
			Likes: 450,
			Comments: []post.Comment{
				{ID: "c4-1", Author: "Jenna", AuthorImage: "https://placehold.co/40x40.png", Text: "Beautifully written!", Date: day(2024, time.July, 16)},
				{ID: "c4-2", Author: "Markus", AuthorImage: "https://placehold.co/40x40.png", Text: "I could picture everything perfectly. More stories please!", Date: day(2024, time.July, 17)},
			},
		},
	}
}
