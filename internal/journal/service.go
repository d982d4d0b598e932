package journal

import "time"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List() []Post {
	return s.repo.List()
}

func (s *Service) GetBySlug(slug string) (Post, error) {
	return s.repo.GetBySlug(slug)
}

// Add creates a draft at the top of the journal.
func (s *Service) Add() Post {
	return s.repo.Add(s.now())
}

func (s *Service) Update(id string, u Update) (bool, error) {
	return s.repo.Update(id, u)
}

func (s *Service) Delete(id string) bool {
	return s.repo.Delete(id)
}
