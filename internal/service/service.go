package service

import (
	"blogapi/internal/config"
	"blogapi/internal/repository"
	"blogapi/internal/storage"
)

type Service struct {
	Post  PostService
	Auth  AuthService
	Stats StatsService
	Media MediaService
}

// NewService wires the services. store may be nil, in which case Media is nil
// and the media routes are not registered.
func NewService(rep *repository.Repository, cfg *config.Config, store storage.Storage) *Service {
	s := &Service{
		Post:  NewPostService(rep.Post),
		Auth:  NewAuthService(cfg.Auth),
		Stats: NewStatsService(rep.Stats),
	}
	if store != nil {
		s.Media = NewMediaService(store, cfg.MaxUploadSize)
	}
	return s
}
