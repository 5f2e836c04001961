package mocks

import (
	"context"

	"scamgame/internal/gemini"

	"github.com/stretchr/testify/mock"
)

// Provider is a mock of the model provider consumed by scenario.Service.
type Provider struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, req
func (_m *Provider) Generate(ctx context.Context, req gemini.Request) (gemini.Response, error) {
	ret := _m.Called(ctx, req)

	var r0 gemini.Response
	if rf, ok := ret.Get(0).(func(context.Context, gemini.Request) gemini.Response); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(gemini.Response)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, gemini.Request) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewProvider creates a new instance of Provider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *Provider {
	m := &Provider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
