package handlers

import (
	"github.com/sahyadri-sports/backoffice/internal/redissvc"
	repo "github.com/sahyadri-sports/backoffice/internal/repo"
)

var (
	productRepo  repo.ProductRepository
	customerRepo repo.CustomerRepository
	orderRepo    repo.OrderRepository
	settingsRepo repo.SettingsRepository
	userRepo     repo.UserRepository

	viewCache *redissvc.RedisService
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCustomerRepo(r repo.CustomerRepository) {
	customerRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetSettingsRepo(r repo.SettingsRepository) {
	settingsRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

// SetRedisService wires the optional view-model cache. Handlers work without
// it; a nil service just means every request recomputes.
func SetRedisService(rs *redissvc.RedisService) {
	viewCache = rs
}

func cachedView(key string, dest any) bool {
	return viewCache != nil && viewCache.GetView(key, dest)
}

func cacheView(key string, value any) {
	if viewCache != nil {
		viewCache.SetView(key, value)
	}
}

func invalidateViews() {
	if viewCache != nil {
		viewCache.InvalidateViews()
	}
}
