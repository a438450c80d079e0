package handlers

import (
	"github.com/rogerio-castellano/inventree/internal/inventory"
	"github.com/rogerio-castellano/inventree/internal/notify"
	"github.com/rogerio-castellano/inventree/internal/repo"
	"github.com/rogerio-castellano/inventree/internal/settings"
)

var (
	itemRepo      repo.ItemRepository
	historyRepo   repo.HistoryRepository
	dashboardRepo repo.DashboardRepository
	userRepo      repo.UserRepository

	gateway       notify.Gateway
	settingsStore *settings.Store

	engine          *inventory.Service
	defaultLowStock = 1
)

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
	rebuildEngine()
}

func SetHistoryRepo(r repo.HistoryRepository) {
	historyRepo = r
	rebuildEngine()
}

func SetDashboardRepo(r repo.DashboardRepository) {
	dashboardRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetNotificationGateway(g notify.Gateway) {
	gateway = g
}

func SetSettingsStore(s *settings.Store) {
	settingsStore = s
}

func SetDefaultLowStock(threshold int) {
	defaultLowStock = threshold
	rebuildEngine()
}

func rebuildEngine() {
	if itemRepo != nil && historyRepo != nil {
		engine = inventory.NewService(itemRepo, historyRepo, defaultLowStock)
	}
}
