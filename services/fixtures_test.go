package services_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/CrisOrc/prueba-tecnica-Konecta/pkg/password"
	"github.com/CrisOrc/prueba-tecnica-Konecta/repository/memory"
	"github.com/CrisOrc/prueba-tecnica-Konecta/services"
)

// fixture bundles the memory store with services built on top of it.
type fixture struct {
	store     *memory.Store
	employees *services.EmployeeService
	requests  *services.RequestService
}

func newStoreWithServices(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	hasher := password.NewHasher()
	logger := zap.NewNop()
	return &fixture{
		store:     store,
		employees: services.NewEmployeeService(store.Employees(), store.Users(), hasher, logger),
		requests:  services.NewRequestService(store.Requests(), store.Employees(), store.Users(), logger),
	}
}
