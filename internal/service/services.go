package service

import (
	"github.com/Gav1n0112/keya/internal/config"
	"github.com/Gav1n0112/keya/internal/repository"
)

type Services struct {
	Auth     *AuthService
	Software *SoftwareService
	Key      *KeyService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, cfg),
		Software: NewSoftwareService(repos.Software, repos.Key),
		Key:      NewKeyService(repos.Key, repos.Software),
	}
}
