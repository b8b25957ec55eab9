// Package mocks provides test doubles for the anthropic client.
package mocks

import (
	"context"

	anthropic "github.com/ammar944/AI-GOS-sub011/pkg/anthropic"
	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client type
type MockClient struct {
	mock.Mock
}

type MockClient_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClient) EXPECT() *MockClient_Expecter {
	return &MockClient_Expecter{mock: &_m.Mock}
}

// CreateMessage provides a mock function with given fields: ctx, req
func (_m *MockClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for CreateMessage")
	}

	var r0 *anthropic.MessageResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, anthropic.MessageRequest) (*anthropic.MessageResponse, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, anthropic.MessageRequest) *anthropic.MessageResponse); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*anthropic.MessageResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, anthropic.MessageRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockClient_CreateMessage_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateMessage'
type MockClient_CreateMessage_Call struct {
	*mock.Call
}

// CreateMessage is a helper method to define mock.On call
//   - ctx context.Context
//   - req anthropic.MessageRequest
func (_e *MockClient_Expecter) CreateMessage(ctx interface{}, req interface{}) *MockClient_CreateMessage_Call {
	return &MockClient_CreateMessage_Call{Call: _e.mock.On("CreateMessage", ctx, req)}
}

func (_c *MockClient_CreateMessage_Call) Run(run func(ctx context.Context, req anthropic.MessageRequest)) *MockClient_CreateMessage_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(anthropic.MessageRequest))
	})
	return _c
}

func (_c *MockClient_CreateMessage_Call) Return(_a0 *anthropic.MessageResponse, _a1 error) *MockClient_CreateMessage_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClient_CreateMessage_Call) RunAndReturn(run func(context.Context, anthropic.MessageRequest) (*anthropic.MessageResponse, error)) *MockClient_CreateMessage_Call {
	_c.Call.Return(run)
	return _c
}

// StreamTool provides a mock function with given fields: ctx, req
func (_m *MockClient) StreamTool(ctx context.Context, req anthropic.ToolRequest) (anthropic.ToolStream, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for StreamTool")
	}

	var r0 anthropic.ToolStream
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, anthropic.ToolRequest) (anthropic.ToolStream, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, anthropic.ToolRequest) anthropic.ToolStream); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(anthropic.ToolStream)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, anthropic.ToolRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockClient_StreamTool_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'StreamTool'
type MockClient_StreamTool_Call struct {
	*mock.Call
}

// StreamTool is a helper method to define mock.On call
//   - ctx context.Context
//   - req anthropic.ToolRequest
func (_e *MockClient_Expecter) StreamTool(ctx interface{}, req interface{}) *MockClient_StreamTool_Call {
	return &MockClient_StreamTool_Call{Call: _e.mock.On("StreamTool", ctx, req)}
}

func (_c *MockClient_StreamTool_Call) Run(run func(ctx context.Context, req anthropic.ToolRequest)) *MockClient_StreamTool_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(anthropic.ToolRequest))
	})
	return _c
}

func (_c *MockClient_StreamTool_Call) Return(_a0 anthropic.ToolStream, _a1 error) *MockClient_StreamTool_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClient_StreamTool_Call) RunAndReturn(run func(context.Context, anthropic.ToolRequest) (anthropic.ToolStream, error)) *MockClient_StreamTool_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockClient creates a new instance of MockClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	mock := &MockClient{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
