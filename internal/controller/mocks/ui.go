// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/bird-chinese-community/bird2-autotype/internal/controller"
	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// MockUI is a testify mock for controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI that asserts its expectations when the test
// finishes.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mu := &MockUI{}
	mu.Mock.Test(t)

	t.Cleanup(func() { mu.AssertExpectations(t) })

	return mu
}

func (mu *MockUI) DisplayResults(results []m.FileResult, opts controller.DisplayOptions) error {
	return mu.Called(results, opts).Error(0)
}

func (mu *MockUI) DisplayEstimation(results []m.FileResult) error {
	return mu.Called(results).Error(0)
}

func (mu *MockUI) Review(results []m.FileResult) error {
	return mu.Called(results).Error(0)
}

func (mu *MockUI) ReportSaved(path m.Path) {
	mu.Called(path)
}
