package handlers

import (
	"blogapi/internal/config"
	"blogapi/internal/service"
)

type Handlers struct {
	PostService  service.PostService
	AuthService  service.AuthService
	StatsService service.StatsService
	MediaService service.MediaService
	Cfg          *config.Config
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		PostService:  service.Post,
		AuthService:  service.Auth,
		StatsService: service.Stats,
		MediaService: service.Media,
		Cfg:          config,
	}
}
