package journal

import (
	"errors"
	"strconv"
	"sync"
	"time"
)

var ErrNotFound = errors.New("post not found")

type Repository interface {
	List() []Post
	GetBySlug(slug string) (Post, error)
	Add(now time.Time) Post
	Update(id string, u Update) (bool, error)
	Delete(id string) bool
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	posts  []Post
	lastID int64
}

func NewInMemoryRepository(seed []Post) *InMemoryRepository {
	return &InMemoryRepository{posts: append([]Post(nil), seed...)}
}

func (r *InMemoryRepository) List() []Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Post{}, r.posts...)
}

func (r *InMemoryRepository) GetBySlug(slug string) (Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.Slug != "" && p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// Add prepends a draft post stamped with now.
func (r *InMemoryRepository) Add(now time.Time) Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	sid := strconv.FormatInt(id, 10)

	p := Post{
		ID:      sid,
		Title:   "New Fashion Insight",
		Excerpt: "Short excerpt...",
		Content: "Write your story here...",
		Author:  "Admin",
		Date:    now.UTC().Format(time.DateOnly),
		Image:   coverImage,
		Slug:    "new-insight-" + sid,
	}
	r.posts = append([]Post{p}, r.posts...)
	return p
}

func (r *InMemoryRepository) Update(id string, u Update) (bool, error) {
	if err := u.validate(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			u.apply(&r.posts[i])
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return true
		}
	}
	return false
}
