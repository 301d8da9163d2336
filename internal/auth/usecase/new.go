package usecase

import (
	"smartmeet/internal/auth"
	"smartmeet/internal/auth/repository"
	"smartmeet/pkg/encrypter"
	"smartmeet/pkg/log"
	"smartmeet/pkg/scope"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	jwt       scope.Manager
	encrypter encrypter.Encrypter
	verifier  auth.TokenVerifier // nil when Google login is not configured
}

// New creates a new auth UseCase implementation.
func New(l log.Logger, repo repository.Repository, jwt scope.Manager, enc encrypter.Encrypter, verifier auth.TokenVerifier) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		jwt:       jwt,
		encrypter: enc,
		verifier:  verifier,
	}
}
