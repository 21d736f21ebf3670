package mocks

import (
	"context"

	"github.com/UnknownOlympus/rutas/internal/models"
	"github.com/stretchr/testify/mock"
)

// Interface is a mock type for the repository.Interface type.
type Interface struct {
	mock.Mock
}

// FetchPlannedRoutes provides a mock function with given fields: ctx, limit
func (_m *Interface) FetchPlannedRoutes(ctx context.Context, limit int) ([]models.PlannedStop, error) {
	ret := _m.Called(ctx, limit)

	var stops []models.PlannedStop
	if rf, ok := ret.Get(0).(func(context.Context, int) []models.PlannedStop); ok {
		stops = rf(ctx, limit)
	} else if ret.Get(0) != nil {
		stops = ret.Get(0).([]models.PlannedStop)
	}

	return stops, ret.Error(1)
}

// Ping provides a mock function with given fields: ctx
func (_m *Interface) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	return ret.Error(0)
}

// NewInterface creates a new instance of Interface. It also registers a testing interface on the mock
// and a cleanup function to assert the mocks expectations.
func NewInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *Interface {
	m := &Interface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
