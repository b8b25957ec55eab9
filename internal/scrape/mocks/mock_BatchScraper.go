// Package mocks provides test doubles for the scrape package.
package mocks

import (
	"context"
	"time"

	model "github.com/ammar944/AI-GOS-sub011/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockBatchScraper is a mock type for the BatchScraper type
type MockBatchScraper struct {
	mock.Mock
}

type MockBatchScraper_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBatchScraper) EXPECT() *MockBatchScraper_Expecter {
	return &MockBatchScraper_Expecter{mock: &_m.Mock}
}

// IsAvailable provides a mock function with given fields:
func (_m *MockBatchScraper) IsAvailable() bool {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for IsAvailable")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockBatchScraper_IsAvailable_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IsAvailable'
type MockBatchScraper_IsAvailable_Call struct {
	*mock.Call
}

// IsAvailable is a helper method to define mock.On call
func (_e *MockBatchScraper_Expecter) IsAvailable() *MockBatchScraper_IsAvailable_Call {
	return &MockBatchScraper_IsAvailable_Call{Call: _e.mock.On("IsAvailable")}
}

func (_c *MockBatchScraper_IsAvailable_Call) Run(run func()) *MockBatchScraper_IsAvailable_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockBatchScraper_IsAvailable_Call) Return(_a0 bool) *MockBatchScraper_IsAvailable_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBatchScraper_IsAvailable_Call) RunAndReturn(run func() bool) *MockBatchScraper_IsAvailable_Call {
	_c.Call.Return(run)
	return _c
}

// BatchScrape provides a mock function with given fields: ctx, urls, timeout
func (_m *MockBatchScraper) BatchScrape(ctx context.Context, urls []string, timeout time.Duration) model.BatchScrapeResult {
	ret := _m.Called(ctx, urls, timeout)

	if len(ret) == 0 {
		panic("no return value specified for BatchScrape")
	}

	var r0 model.BatchScrapeResult
	if rf, ok := ret.Get(0).(func(context.Context, []string, time.Duration) model.BatchScrapeResult); ok {
		r0 = rf(ctx, urls, timeout)
	} else {
		r0 = ret.Get(0).(model.BatchScrapeResult)
	}

	return r0
}

// MockBatchScraper_BatchScrape_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'BatchScrape'
type MockBatchScraper_BatchScrape_Call struct {
	*mock.Call
}

// BatchScrape is a helper method to define mock.On call
//   - ctx context.Context
//   - urls []string
//   - timeout time.Duration
func (_e *MockBatchScraper_Expecter) BatchScrape(ctx interface{}, urls interface{}, timeout interface{}) *MockBatchScraper_BatchScrape_Call {
	return &MockBatchScraper_BatchScrape_Call{Call: _e.mock.On("BatchScrape", ctx, urls, timeout)}
}

func (_c *MockBatchScraper_BatchScrape_Call) Run(run func(ctx context.Context, urls []string, timeout time.Duration)) *MockBatchScraper_BatchScrape_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]string), args[2].(time.Duration))
	})
	return _c
}

func (_c *MockBatchScraper_BatchScrape_Call) Return(_a0 model.BatchScrapeResult) *MockBatchScraper_BatchScrape_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockBatchScraper_BatchScrape_Call) RunAndReturn(run func(context.Context, []string, time.Duration) model.BatchScrapeResult) *MockBatchScraper_BatchScrape_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockBatchScraper creates a new instance of MockBatchScraper. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockBatchScraper(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBatchScraper {
	mock := &MockBatchScraper{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
