// Package mocks provides test doubles for the extract package.
package mocks

import (
	"context"

	extract "github.com/ammar944/AI-GOS-sub011/internal/extract"
	mock "github.com/stretchr/testify/mock"
)

// MockObjectStreamer is a mock type for the ObjectStreamer type
type MockObjectStreamer struct {
	mock.Mock
}

type MockObjectStreamer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockObjectStreamer) EXPECT() *MockObjectStreamer_Expecter {
	return &MockObjectStreamer_Expecter{mock: &_m.Mock}
}

// StreamObject provides a mock function with given fields: ctx, req
func (_m *MockObjectStreamer) StreamObject(ctx context.Context, req extract.ObjectRequest) (extract.TextStream, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for StreamObject")
	}

	var r0 extract.TextStream
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, extract.ObjectRequest) (extract.TextStream, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, extract.ObjectRequest) extract.TextStream); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(extract.TextStream)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, extract.ObjectRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockObjectStreamer_StreamObject_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'StreamObject'
type MockObjectStreamer_StreamObject_Call struct {
	*mock.Call
}

// StreamObject is a helper method to define mock.On call
//   - ctx context.Context
//   - req extract.ObjectRequest
func (_e *MockObjectStreamer_Expecter) StreamObject(ctx interface{}, req interface{}) *MockObjectStreamer_StreamObject_Call {
	return &MockObjectStreamer_StreamObject_Call{Call: _e.mock.On("StreamObject", ctx, req)}
}

func (_c *MockObjectStreamer_StreamObject_Call) Run(run func(ctx context.Context, req extract.ObjectRequest)) *MockObjectStreamer_StreamObject_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(extract.ObjectRequest))
	})
	return _c
}

func (_c *MockObjectStreamer_StreamObject_Call) Return(_a0 extract.TextStream, _a1 error) *MockObjectStreamer_StreamObject_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockObjectStreamer_StreamObject_Call) RunAndReturn(run func(context.Context, extract.ObjectRequest) (extract.TextStream, error)) *MockObjectStreamer_StreamObject_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockObjectStreamer creates a new instance of MockObjectStreamer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockObjectStreamer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockObjectStreamer {
	mock := &MockObjectStreamer{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
