package impl

import (
	"context"
	"io"
	"log/slog"

	"boutique/config"
	"boutique/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCatalogConfig(defaultListLimit int) *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			DefaultListLimit: defaultListLimit,
			PublicBaseURL:    "https://shop.example.com",
		},
	}
}

// fakeTxManager runs the transactional closure directly against a fixed
// repository factory, so tests exercise the same code path as a committed
// transaction and see the closure's error propagated.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeRepositoryFactory hands out the repository mocks configured by the test.
type fakeRepositoryFactory struct {
	productRepo      repository.ProductRepository
	cartRepo         repository.CartRepository
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
}

func (f *fakeRepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.productRepo
}

func (f *fakeRepositoryFactory) CartRepo() repository.CartRepository {
	return f.cartRepo
}

func (f *fakeRepositoryFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return f.refreshTokenRepo
}
