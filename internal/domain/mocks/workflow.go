// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/bird-chinese-community/bird2-autotype/internal/domain"
	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// MockWorkflow is a testify mock for domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow that asserts its expectations when
// the test finishes.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mw := &MockWorkflow{}
	mw.Mock.Test(t)

	t.Cleanup(func() { mw.AssertExpectations(t) })

	return mw
}

func (mw *MockWorkflow) Process(args domain.ProcessArgs) error {
	return mw.Called(args).Error(0)
}

func (mw *MockWorkflow) Estimate(args domain.EstimateArgs) error {
	return mw.Called(args).Error(0)
}

func (mw *MockWorkflow) Review(args domain.EstimateArgs) error {
	return mw.Called(args).Error(0)
}

// MockEngine is a testify mock for domain.Engine.
type MockEngine struct {
	mock.Mock
}

// NewMockEngine creates a MockEngine that asserts its expectations when the
// test finishes.
func NewMockEngine(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEngine {
	me := &MockEngine{}
	me.Mock.Test(t)

	t.Cleanup(func() { me.AssertExpectations(t) })

	return me
}

func (me *MockEngine) ScanFile(buf []byte) ([]m.Decision, []m.Problem) {
	ret := me.Called(buf)

	var decisions []m.Decision
	if v := ret.Get(0); v != nil {
		decisions = v.([]m.Decision)
	}

	var problems []m.Problem
	if v := ret.Get(1); v != nil {
		problems = v.([]m.Problem)
	}

	return decisions, problems
}

func (me *MockEngine) PlanEdits(decisions []m.Decision) []m.Edit {
	ret := me.Called(decisions)

	var edits []m.Edit
	if v := ret.Get(0); v != nil {
		edits = v.([]m.Edit)
	}

	return edits
}

func (me *MockEngine) ApplyEdits(buf []byte, edits []m.Edit) []byte {
	ret := me.Called(buf, edits)

	var out []byte
	if v := ret.Get(0); v != nil {
		out = v.([]byte)
	}

	return out
}
