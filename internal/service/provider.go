package service

import (
	"context"

	"fixerhub-backend/internal/domain"
	"fixerhub-backend/internal/repository"
)

type providerService struct {
	providers repository.ProviderRepository
	jobs      repository.JobRepository
}

func NewProviderService(providers repository.ProviderRepository, jobs repository.JobRepository) ProviderService {
	return &providerService{providers: providers, jobs: jobs}
}

func (s *providerService) GetProvider(ctx context.Context, username string) (*domain.Provider, error) {
	return s.providers.GetByUsername(ctx, username)
}

func (s *providerService) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	return s.providers.List(ctx)
}

func (s *providerService) ListProviderJobs(ctx context.Context, username string) ([]domain.Job, error) {
	provider, err := s.providers.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.jobs.ListByProvider(ctx, provider.ID)
}
