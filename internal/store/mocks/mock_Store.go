// Package mocks provides test doubles for the store package.
package mocks

import (
	"context"
	"time"

	model "github.com/ammar944/AI-GOS-sub011/internal/model"
	store "github.com/ammar944/AI-GOS-sub011/internal/store"
	mock "github.com/stretchr/testify/mock"
)

// MockStore is a mock type for the Store type
type MockStore struct {
	mock.Mock
}

type MockStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStore) EXPECT() *MockStore_Expecter {
	return &MockStore_Expecter{mock: &_m.Mock}
}

// CreateBlueprint provides a mock function with given fields: ctx, bp
func (_m *MockStore) CreateBlueprint(ctx context.Context, bp *model.Blueprint) error {
	ret := _m.Called(ctx, bp)

	if len(ret) == 0 {
		panic("no return value specified for CreateBlueprint")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.Blueprint) error); ok {
		r0 = rf(ctx, bp)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_CreateBlueprint_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateBlueprint'
type MockStore_CreateBlueprint_Call struct {
	*mock.Call
}

// CreateBlueprint is a helper method to define mock.On call
//   - ctx context.Context
//   - bp *model.Blueprint
func (_e *MockStore_Expecter) CreateBlueprint(ctx interface{}, bp interface{}) *MockStore_CreateBlueprint_Call {
	return &MockStore_CreateBlueprint_Call{Call: _e.mock.On("CreateBlueprint", ctx, bp)}
}

func (_c *MockStore_CreateBlueprint_Call) Run(run func(ctx context.Context, bp *model.Blueprint)) *MockStore_CreateBlueprint_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*model.Blueprint))
	})
	return _c
}

func (_c *MockStore_CreateBlueprint_Call) Return(_a0 error) *MockStore_CreateBlueprint_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_CreateBlueprint_Call) RunAndReturn(run func(context.Context, *model.Blueprint) error) *MockStore_CreateBlueprint_Call {
	_c.Call.Return(run)
	return _c
}

// GetBlueprint provides a mock function with given fields: ctx, ownerID, id
func (_m *MockStore) GetBlueprint(ctx context.Context, ownerID string, id string) (*model.Blueprint, error) {
	ret := _m.Called(ctx, ownerID, id)

	if len(ret) == 0 {
		panic("no return value specified for GetBlueprint")
	}

	var r0 *model.Blueprint
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*model.Blueprint, error)); ok {
		return rf(ctx, ownerID, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *model.Blueprint); ok {
		r0 = rf(ctx, ownerID, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Blueprint)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, ownerID, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStore_GetBlueprint_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBlueprint'
type MockStore_GetBlueprint_Call struct {
	*mock.Call
}

// GetBlueprint is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - id string
func (_e *MockStore_Expecter) GetBlueprint(ctx interface{}, ownerID interface{}, id interface{}) *MockStore_GetBlueprint_Call {
	return &MockStore_GetBlueprint_Call{Call: _e.mock.On("GetBlueprint", ctx, ownerID, id)}
}

func (_c *MockStore_GetBlueprint_Call) Run(run func(ctx context.Context, ownerID string, id string)) *MockStore_GetBlueprint_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockStore_GetBlueprint_Call) Return(_a0 *model.Blueprint, _a1 error) *MockStore_GetBlueprint_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStore_GetBlueprint_Call) RunAndReturn(run func(context.Context, string, string) (*model.Blueprint, error)) *MockStore_GetBlueprint_Call {
	_c.Call.Return(run)
	return _c
}

// ListBlueprints provides a mock function with given fields: ctx, ownerID, page
func (_m *MockStore) ListBlueprints(ctx context.Context, ownerID string, page store.Page) ([]model.Blueprint, error) {
	ret := _m.Called(ctx, ownerID, page)

	if len(ret) == 0 {
		panic("no return value specified for ListBlueprints")
	}

	var r0 []model.Blueprint
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, store.Page) ([]model.Blueprint, error)); ok {
		return rf(ctx, ownerID, page)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, store.Page) []model.Blueprint); ok {
		r0 = rf(ctx, ownerID, page)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Blueprint)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, store.Page) error); ok {
		r1 = rf(ctx, ownerID, page)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStore_ListBlueprints_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListBlueprints'
type MockStore_ListBlueprints_Call struct {
	*mock.Call
}

// ListBlueprints is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - page store.Page
func (_e *MockStore_Expecter) ListBlueprints(ctx interface{}, ownerID interface{}, page interface{}) *MockStore_ListBlueprints_Call {
	return &MockStore_ListBlueprints_Call{Call: _e.mock.On("ListBlueprints", ctx, ownerID, page)}
}

func (_c *MockStore_ListBlueprints_Call) Run(run func(ctx context.Context, ownerID string, page store.Page)) *MockStore_ListBlueprints_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(store.Page))
	})
	return _c
}

func (_c *MockStore_ListBlueprints_Call) Return(_a0 []model.Blueprint, _a1 error) *MockStore_ListBlueprints_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStore_ListBlueprints_Call) RunAndReturn(run func(context.Context, string, store.Page) ([]model.Blueprint, error)) *MockStore_ListBlueprints_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateBlueprint provides a mock function with given fields: ctx, bp
func (_m *MockStore) UpdateBlueprint(ctx context.Context, bp *model.Blueprint) error {
	ret := _m.Called(ctx, bp)

	if len(ret) == 0 {
		panic("no return value specified for UpdateBlueprint")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.Blueprint) error); ok {
		r0 = rf(ctx, bp)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_UpdateBlueprint_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateBlueprint'
type MockStore_UpdateBlueprint_Call struct {
	*mock.Call
}

// UpdateBlueprint is a helper method to define mock.On call
//   - ctx context.Context
//   - bp *model.Blueprint
func (_e *MockStore_Expecter) UpdateBlueprint(ctx interface{}, bp interface{}) *MockStore_UpdateBlueprint_Call {
	return &MockStore_UpdateBlueprint_Call{Call: _e.mock.On("UpdateBlueprint", ctx, bp)}
}

func (_c *MockStore_UpdateBlueprint_Call) Run(run func(ctx context.Context, bp *model.Blueprint)) *MockStore_UpdateBlueprint_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*model.Blueprint))
	})
	return _c
}

func (_c *MockStore_UpdateBlueprint_Call) Return(_a0 error) *MockStore_UpdateBlueprint_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_UpdateBlueprint_Call) RunAndReturn(run func(context.Context, *model.Blueprint) error) *MockStore_UpdateBlueprint_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteBlueprint provides a mock function with given fields: ctx, ownerID, id
func (_m *MockStore) DeleteBlueprint(ctx context.Context, ownerID string, id string) error {
	ret := _m.Called(ctx, ownerID, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteBlueprint")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, ownerID, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_DeleteBlueprint_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteBlueprint'
type MockStore_DeleteBlueprint_Call struct {
	*mock.Call
}

// DeleteBlueprint is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - id string
func (_e *MockStore_Expecter) DeleteBlueprint(ctx interface{}, ownerID interface{}, id interface{}) *MockStore_DeleteBlueprint_Call {
	return &MockStore_DeleteBlueprint_Call{Call: _e.mock.On("DeleteBlueprint", ctx, ownerID, id)}
}

func (_c *MockStore_DeleteBlueprint_Call) Run(run func(ctx context.Context, ownerID string, id string)) *MockStore_DeleteBlueprint_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockStore_DeleteBlueprint_Call) Return(_a0 error) *MockStore_DeleteBlueprint_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_DeleteBlueprint_Call) RunAndReturn(run func(context.Context, string, string) error) *MockStore_DeleteBlueprint_Call {
	_c.Call.Return(run)
	return _c
}

// CreateMediaPlan provides a mock function with given fields: ctx, mp
func (_m *MockStore) CreateMediaPlan(ctx context.Context, mp *model.MediaPlan) error {
	ret := _m.Called(ctx, mp)

	if len(ret) == 0 {
		panic("no return value specified for CreateMediaPlan")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.MediaPlan) error); ok {
		r0 = rf(ctx, mp)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_CreateMediaPlan_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateMediaPlan'
type MockStore_CreateMediaPlan_Call struct {
	*mock.Call
}

// CreateMediaPlan is a helper method to define mock.On call
//   - ctx context.Context
//   - mp *model.MediaPlan
func (_e *MockStore_Expecter) CreateMediaPlan(ctx interface{}, mp interface{}) *MockStore_CreateMediaPlan_Call {
	return &MockStore_CreateMediaPlan_Call{Call: _e.mock.On("CreateMediaPlan", ctx, mp)}
}

func (_c *MockStore_CreateMediaPlan_Call) Run(run func(ctx context.Context, mp *model.MediaPlan)) *MockStore_CreateMediaPlan_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*model.MediaPlan))
	})
	return _c
}

func (_c *MockStore_CreateMediaPlan_Call) Return(_a0 error) *MockStore_CreateMediaPlan_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_CreateMediaPlan_Call) RunAndReturn(run func(context.Context, *model.MediaPlan) error) *MockStore_CreateMediaPlan_Call {
	_c.Call.Return(run)
	return _c
}

// GetMediaPlan provides a mock function with given fields: ctx, ownerID, id
func (_m *MockStore) GetMediaPlan(ctx context.Context, ownerID string, id string) (*model.MediaPlan, error) {
	ret := _m.Called(ctx, ownerID, id)

	if len(ret) == 0 {
		panic("no return value specified for GetMediaPlan")
	}

	var r0 *model.MediaPlan
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*model.MediaPlan, error)); ok {
		return rf(ctx, ownerID, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *model.MediaPlan); ok {
		r0 = rf(ctx, ownerID, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.MediaPlan)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, ownerID, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStore_GetMediaPlan_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetMediaPlan'
type MockStore_GetMediaPlan_Call struct {
	*mock.Call
}

// GetMediaPlan is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - id string
func (_e *MockStore_Expecter) GetMediaPlan(ctx interface{}, ownerID interface{}, id interface{}) *MockStore_GetMediaPlan_Call {
	return &MockStore_GetMediaPlan_Call{Call: _e.mock.On("GetMediaPlan", ctx, ownerID, id)}
}

func (_c *MockStore_GetMediaPlan_Call) Run(run func(ctx context.Context, ownerID string, id string)) *MockStore_GetMediaPlan_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockStore_GetMediaPlan_Call) Return(_a0 *model.MediaPlan, _a1 error) *MockStore_GetMediaPlan_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStore_GetMediaPlan_Call) RunAndReturn(run func(context.Context, string, string) (*model.MediaPlan, error)) *MockStore_GetMediaPlan_Call {
	_c.Call.Return(run)
	return _c
}

// ListMediaPlans provides a mock function with given fields: ctx, ownerID, page
func (_m *MockStore) ListMediaPlans(ctx context.Context, ownerID string, page store.Page) ([]model.MediaPlan, error) {
	ret := _m.Called(ctx, ownerID, page)

	if len(ret) == 0 {
		panic("no return value specified for ListMediaPlans")
	}

	var r0 []model.MediaPlan
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, store.Page) ([]model.MediaPlan, error)); ok {
		return rf(ctx, ownerID, page)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, store.Page) []model.MediaPlan); ok {
		r0 = rf(ctx, ownerID, page)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.MediaPlan)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, store.Page) error); ok {
		r1 = rf(ctx, ownerID, page)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStore_ListMediaPlans_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListMediaPlans'
type MockStore_ListMediaPlans_Call struct {
	*mock.Call
}

// ListMediaPlans is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - page store.Page
func (_e *MockStore_Expecter) ListMediaPlans(ctx interface{}, ownerID interface{}, page interface{}) *MockStore_ListMediaPlans_Call {
	return &MockStore_ListMediaPlans_Call{Call: _e.mock.On("ListMediaPlans", ctx, ownerID, page)}
}

func (_c *MockStore_ListMediaPlans_Call) Run(run func(ctx context.Context, ownerID string, page store.Page)) *MockStore_ListMediaPlans_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(store.Page))
	})
	return _c
}

func (_c *MockStore_ListMediaPlans_Call) Return(_a0 []model.MediaPlan, _a1 error) *MockStore_ListMediaPlans_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStore_ListMediaPlans_Call) RunAndReturn(run func(context.Context, string, store.Page) ([]model.MediaPlan, error)) *MockStore_ListMediaPlans_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateMediaPlan provides a mock function with given fields: ctx, mp
func (_m *MockStore) UpdateMediaPlan(ctx context.Context, mp *model.MediaPlan) error {
	ret := _m.Called(ctx, mp)

	if len(ret) == 0 {
		panic("no return value specified for UpdateMediaPlan")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.MediaPlan) error); ok {
		r0 = rf(ctx, mp)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_UpdateMediaPlan_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateMediaPlan'
type MockStore_UpdateMediaPlan_Call struct {
	*mock.Call
}

// UpdateMediaPlan is a helper method to define mock.On call
//   - ctx context.Context
//   - mp *model.MediaPlan
func (_e *MockStore_Expecter) UpdateMediaPlan(ctx interface{}, mp interface{}) *MockStore_UpdateMediaPlan_Call {
	return &MockStore_UpdateMediaPlan_Call{Call: _e.mock.On("UpdateMediaPlan", ctx, mp)}
}

func (_c *MockStore_UpdateMediaPlan_Call) Run(run func(ctx context.Context, mp *model.MediaPlan)) *MockStore_UpdateMediaPlan_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*model.MediaPlan))
	})
	return _c
}

func (_c *MockStore_UpdateMediaPlan_Call) Return(_a0 error) *MockStore_UpdateMediaPlan_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_UpdateMediaPlan_Call) RunAndReturn(run func(context.Context, *model.MediaPlan) error) *MockStore_UpdateMediaPlan_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteMediaPlan provides a mock function with given fields: ctx, ownerID, id
func (_m *MockStore) DeleteMediaPlan(ctx context.Context, ownerID string, id string) error {
	ret := _m.Called(ctx, ownerID, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteMediaPlan")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, ownerID, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_DeleteMediaPlan_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteMediaPlan'
type MockStore_DeleteMediaPlan_Call struct {
	*mock.Call
}

// DeleteMediaPlan is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - id string
func (_e *MockStore_Expecter) DeleteMediaPlan(ctx interface{}, ownerID interface{}, id interface{}) *MockStore_DeleteMediaPlan_Call {
	return &MockStore_DeleteMediaPlan_Call{Call: _e.mock.On("DeleteMediaPlan", ctx, ownerID, id)}
}

func (_c *MockStore_DeleteMediaPlan_Call) Run(run func(ctx context.Context, ownerID string, id string)) *MockStore_DeleteMediaPlan_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockStore_DeleteMediaPlan_Call) Return(_a0 error) *MockStore_DeleteMediaPlan_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_DeleteMediaPlan_Call) RunAndReturn(run func(context.Context, string, string) error) *MockStore_DeleteMediaPlan_Call {
	_c.Call.Return(run)
	return _c
}

// CreateConversation provides a mock function with given fields: ctx, c
func (_m *MockStore) CreateConversation(ctx context.Context, c *model.Conversation) error {
	ret := _m.Called(ctx, c)

	if len(ret) == 0 {
		panic("no return value specified for CreateConversation")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.Conversation) error); ok {
		r0 = rf(ctx, c)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_CreateConversation_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateConversation'
type MockStore_CreateConversation_Call struct {
	*mock.Call
}

// CreateConversation is a helper method to define mock.On call
//   - ctx context.Context
//   - c *model.Conversation
func (_e *MockStore_Expecter) CreateConversation(ctx interface{}, c interface{}) *MockStore_CreateConversation_Call {
	return &MockStore_CreateConversation_Call{Call: _e.mock.On("CreateConversation", ctx, c)}
}

func (_c *MockStore_CreateConversation_Call) Run(run func(ctx context.Context, c *model.Conversation)) *MockStore_CreateConversation_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*model.Conversation))
	})
	return _c
}

func (_c *MockStore_CreateConversation_Call) Return(_a0 error) *MockStore_CreateConversation_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_CreateConversation_Call) RunAndReturn(run func(context.Context, *model.Conversation) error) *MockStore_CreateConversation_Call {
	_c.Call.Return(run)
	return _c
}

// GetConversation provides a mock function with given fields: ctx, ownerID, id
func (_m *MockStore) GetConversation(ctx context.Context, ownerID string, id string) (*model.Conversation, error) {
	ret := _m.Called(ctx, ownerID, id)

	if len(ret) == 0 {
		panic("no return value specified for GetConversation")
	}

	var r0 *model.Conversation
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*model.Conversation, error)); ok {
		return rf(ctx, ownerID, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *model.Conversation); ok {
		r0 = rf(ctx, ownerID, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Conversation)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, ownerID, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStore_GetConversation_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetConversation'
type MockStore_GetConversation_Call struct {
	*mock.Call
}

// GetConversation is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - id string
func (_e *MockStore_Expecter) GetConversation(ctx interface{}, ownerID interface{}, id interface{}) *MockStore_GetConversation_Call {
	return &MockStore_GetConversation_Call{Call: _e.mock.On("GetConversation", ctx, ownerID, id)}
}

func (_c *MockStore_GetConversation_Call) Run(run func(ctx context.Context, ownerID string, id string)) *MockStore_GetConversation_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockStore_GetConversation_Call) Return(_a0 *model.Conversation, _a1 error) *MockStore_GetConversation_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStore_GetConversation_Call) RunAndReturn(run func(context.Context, string, string) (*model.Conversation, error)) *MockStore_GetConversation_Call {
	_c.Call.Return(run)
	return _c
}

// ListConversations provides a mock function with given fields: ctx, ownerID, page
func (_m *MockStore) ListConversations(ctx context.Context, ownerID string, page store.Page) ([]model.Conversation, error) {
	ret := _m.Called(ctx, ownerID, page)

	if len(ret) == 0 {
		panic("no return value specified for ListConversations")
	}

	var r0 []model.Conversation
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, store.Page) ([]model.Conversation, error)); ok {
		return rf(ctx, ownerID, page)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, store.Page) []model.Conversation); ok {
		r0 = rf(ctx, ownerID, page)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Conversation)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, store.Page) error); ok {
		r1 = rf(ctx, ownerID, page)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStore_ListConversations_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListConversations'
type MockStore_ListConversations_Call struct {
	*mock.Call
}

// ListConversations is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - page store.Page
func (_e *MockStore_Expecter) ListConversations(ctx interface{}, ownerID interface{}, page interface{}) *MockStore_ListConversations_Call {
	return &MockStore_ListConversations_Call{Call: _e.mock.On("ListConversations", ctx, ownerID, page)}
}

func (_c *MockStore_ListConversations_Call) Run(run func(ctx context.Context, ownerID string, page store.Page)) *MockStore_ListConversations_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(store.Page))
	})
	return _c
}

func (_c *MockStore_ListConversations_Call) Return(_a0 []model.Conversation, _a1 error) *MockStore_ListConversations_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStore_ListConversations_Call) RunAndReturn(run func(context.Context, string, store.Page) ([]model.Conversation, error)) *MockStore_ListConversations_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteConversation provides a mock function with given fields: ctx, ownerID, id
func (_m *MockStore) DeleteConversation(ctx context.Context, ownerID string, id string) error {
	ret := _m.Called(ctx, ownerID, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteConversation")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, ownerID, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_DeleteConversation_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteConversation'
type MockStore_DeleteConversation_Call struct {
	*mock.Call
}

// DeleteConversation is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - id string
func (_e *MockStore_Expecter) DeleteConversation(ctx interface{}, ownerID interface{}, id interface{}) *MockStore_DeleteConversation_Call {
	return &MockStore_DeleteConversation_Call{Call: _e.mock.On("DeleteConversation", ctx, ownerID, id)}
}

func (_c *MockStore_DeleteConversation_Call) Run(run func(ctx context.Context, ownerID string, id string)) *MockStore_DeleteConversation_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockStore_DeleteConversation_Call) Return(_a0 error) *MockStore_DeleteConversation_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_DeleteConversation_Call) RunAndReturn(run func(context.Context, string, string) error) *MockStore_DeleteConversation_Call {
	_c.Call.Return(run)
	return _c
}

// AddMessage provides a mock function with given fields: ctx, ownerID, m
func (_m *MockStore) AddMessage(ctx context.Context, ownerID string, m *model.Message) error {
	ret := _m.Called(ctx, ownerID, m)

	if len(ret) == 0 {
		panic("no return value specified for AddMessage")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, *model.Message) error); ok {
		r0 = rf(ctx, ownerID, m)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_AddMessage_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddMessage'
type MockStore_AddMessage_Call struct {
	*mock.Call
}

// AddMessage is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - m *model.Message
func (_e *MockStore_Expecter) AddMessage(ctx interface{}, ownerID interface{}, m interface{}) *MockStore_AddMessage_Call {
	return &MockStore_AddMessage_Call{Call: _e.mock.On("AddMessage", ctx, ownerID, m)}
}

func (_c *MockStore_AddMessage_Call) Run(run func(ctx context.Context, ownerID string, m *model.Message)) *MockStore_AddMessage_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(*model.Message))
	})
	return _c
}

func (_c *MockStore_AddMessage_Call) Return(_a0 error) *MockStore_AddMessage_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_AddMessage_Call) RunAndReturn(run func(context.Context, string, *model.Message) error) *MockStore_AddMessage_Call {
	_c.Call.Return(run)
	return _c
}

// ListMessages provides a mock function with given fields: ctx, ownerID, conversationID, page
func (_m *MockStore) ListMessages(ctx context.Context, ownerID string, conversationID string, page store.Page) ([]model.Message, error) {
	ret := _m.Called(ctx, ownerID, conversationID, page)

	if len(ret) == 0 {
		panic("no return value specified for ListMessages")
	}

	var r0 []model.Message
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, store.Page) ([]model.Message, error)); ok {
		return rf(ctx, ownerID, conversationID, page)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, store.Page) []model.Message); ok {
		r0 = rf(ctx, ownerID, conversationID, page)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Message)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, store.Page) error); ok {
		r1 = rf(ctx, ownerID, conversationID, page)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStore_ListMessages_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListMessages'
type MockStore_ListMessages_Call struct {
	*mock.Call
}

// ListMessages is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - conversationID string
//   - page store.Page
func (_e *MockStore_Expecter) ListMessages(ctx interface{}, ownerID interface{}, conversationID interface{}, page interface{}) *MockStore_ListMessages_Call {
	return &MockStore_ListMessages_Call{Call: _e.mock.On("ListMessages", ctx, ownerID, conversationID, page)}
}

func (_c *MockStore_ListMessages_Call) Run(run func(ctx context.Context, ownerID string, conversationID string, page store.Page)) *MockStore_ListMessages_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(store.Page))
	})
	return _c
}

func (_c *MockStore_ListMessages_Call) Return(_a0 []model.Message, _a1 error) *MockStore_ListMessages_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStore_ListMessages_Call) RunAndReturn(run func(context.Context, string, string, store.Page) ([]model.Message, error)) *MockStore_ListMessages_Call {
	_c.Call.Return(run)
	return _c
}

// CreateShare provides a mock function with given fields: ctx, ownerID, blueprintID, ttl
func (_m *MockStore) CreateShare(ctx context.Context, ownerID string, blueprintID string, ttl time.Duration) (*model.SharedBlueprint, error) {
	ret := _m.Called(ctx, ownerID, blueprintID, ttl)

	if len(ret) == 0 {
		panic("no return value specified for CreateShare")
	}

	var r0 *model.SharedBlueprint
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Duration) (*model.SharedBlueprint, error)); ok {
		return rf(ctx, ownerID, blueprintID, ttl)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Duration) *model.SharedBlueprint); ok {
		r0 = rf(ctx, ownerID, blueprintID, ttl)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.SharedBlueprint)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, time.Duration) error); ok {
		r1 = rf(ctx, ownerID, blueprintID, ttl)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStore_CreateShare_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateShare'
type MockStore_CreateShare_Call struct {
	*mock.Call
}

// CreateShare is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID string
//   - blueprintID string
//   - ttl time.Duration
func (_e *MockStore_Expecter) CreateShare(ctx interface{}, ownerID interface{}, blueprintID interface{}, ttl interface{}) *MockStore_CreateShare_Call {
	return &MockStore_CreateShare_Call{Call: _e.mock.On("CreateShare", ctx, ownerID, blueprintID, ttl)}
}

func (_c *MockStore_CreateShare_Call) Run(run func(ctx context.Context, ownerID string, blueprintID string, ttl time.Duration)) *MockStore_CreateShare_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(time.Duration))
	})
	return _c
}

func (_c *MockStore_CreateShare_Call) Return(_a0 *model.SharedBlueprint, _a1 error) *MockStore_CreateShare_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStore_CreateShare_Call) RunAndReturn(run func(context.Context, string, string, time.Duration) (*model.SharedBlueprint, error)) *MockStore_CreateShare_Call {
	_c.Call.Return(run)
	return _c
}

// GetShare provides a mock function with given fields: ctx, token
func (_m *MockStore) GetShare(ctx context.Context, token string) (*model.SharedBlueprint, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for GetShare")
	}

	var r0 *model.SharedBlueprint
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*model.SharedBlueprint, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *model.SharedBlueprint); ok {
		r0 = rf(ctx, token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.SharedBlueprint)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStore_GetShare_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetShare'
type MockStore_GetShare_Call struct {
	*mock.Call
}

// GetShare is a helper method to define mock.On call
//   - ctx context.Context
//   - token string
func (_e *MockStore_Expecter) GetShare(ctx interface{}, token interface{}) *MockStore_GetShare_Call {
	return &MockStore_GetShare_Call{Call: _e.mock.On("GetShare", ctx, token)}
}

func (_c *MockStore_GetShare_Call) Run(run func(ctx context.Context, token string)) *MockStore_GetShare_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockStore_GetShare_Call) Return(_a0 *model.SharedBlueprint, _a1 error) *MockStore_GetShare_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStore_GetShare_Call) RunAndReturn(run func(context.Context, string) (*model.SharedBlueprint, error)) *MockStore_GetShare_Call {
	_c.Call.Return(run)
	return _c
}

// Ping provides a mock function with given fields: ctx
func (_m *MockStore) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Ping")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_Ping_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Ping'
type MockStore_Ping_Call struct {
	*mock.Call
}

// Ping is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockStore_Expecter) Ping(ctx interface{}) *MockStore_Ping_Call {
	return &MockStore_Ping_Call{Call: _e.mock.On("Ping", ctx)}
}

func (_c *MockStore_Ping_Call) Run(run func(ctx context.Context)) *MockStore_Ping_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockStore_Ping_Call) Return(_a0 error) *MockStore_Ping_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_Ping_Call) RunAndReturn(run func(context.Context) error) *MockStore_Ping_Call {
	_c.Call.Return(run)
	return _c
}

// Migrate provides a mock function with given fields: ctx
func (_m *MockStore) Migrate(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Migrate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_Migrate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Migrate'
type MockStore_Migrate_Call struct {
	*mock.Call
}

// Migrate is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockStore_Expecter) Migrate(ctx interface{}) *MockStore_Migrate_Call {
	return &MockStore_Migrate_Call{Call: _e.mock.On("Migrate", ctx)}
}

func (_c *MockStore_Migrate_Call) Run(run func(ctx context.Context)) *MockStore_Migrate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockStore_Migrate_Call) Return(_a0 error) *MockStore_Migrate_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_Migrate_Call) RunAndReturn(run func(context.Context) error) *MockStore_Migrate_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function with given fields:
func (_m *MockStore) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStore_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockStore_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockStore_Expecter) Close() *MockStore_Close_Call {
	return &MockStore_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockStore_Close_Call) Run(run func()) *MockStore_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockStore_Close_Call) Return(_a0 error) *MockStore_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStore_Close_Call) RunAndReturn(run func() error) *MockStore_Close_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockStore creates a new instance of MockStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStore {
	mock := &MockStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
