// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/bird-chinese-community/bird2-autotype/internal/adapter"
	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// MockConfFS is a testify mock for adapter.ConfFS.
type MockConfFS struct {
	mock.Mock
}

// NewMockConfFS creates a MockConfFS that asserts its expectations when the
// test finishes.
func NewMockConfFS(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockConfFS {
	mc := &MockConfFS{}
	mc.Mock.Test(t)

	t.Cleanup(func() { mc.AssertExpectations(t) })

	return mc
}

func (mc *MockConfFS) Get(roots []m.Path, exclude []string) ([]m.Source, error) {
	ret := mc.Called(roots, exclude)

	var sources []m.Source
	if v := ret.Get(0); v != nil {
		sources = v.([]m.Source)
	}

	return sources, ret.Error(1)
}

func (mc *MockConfFS) Walk(root m.Path, recursive bool, fn adapter.FilepathWalkFunc) error {
	return mc.Called(root, recursive, fn).Error(0)
}

func (mc *MockConfFS) ReadFile(path m.Path) ([]byte, error) {
	ret := mc.Called(path)

	var content []byte
	if v := ret.Get(0); v != nil {
		content = v.([]byte)
	}

	return content, ret.Error(1)
}

func (mc *MockConfFS) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return mc.Called(path, content, perm).Error(0)
}

func (mc *MockConfFS) Backup(path m.Path) (m.Path, error) {
	ret := mc.Called(path)
	return ret.Get(0).(m.Path), ret.Error(1)
}

func (mc *MockConfFS) FileInfo(path m.Path) (os.FileInfo, error) {
	ret := mc.Called(path)

	var info os.FileInfo
	if v := ret.Get(0); v != nil {
		info = v.(os.FileInfo)
	}

	return info, ret.Error(1)
}

func (mc *MockConfFS) HashFile(path m.Path) (string, error) {
	ret := mc.Called(path)
	return ret.String(0), ret.Error(1)
}

// MockReportStore is a testify mock for adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// NewMockReportStore creates a MockReportStore that asserts its expectations
// when the test finishes.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	ms := &MockReportStore{}
	ms.Mock.Test(t)

	t.Cleanup(func() { ms.AssertExpectations(t) })

	return ms
}

func (ms *MockReportStore) SaveRun(dir m.Path, results []m.FileResult) (m.Path, error) {
	ret := ms.Called(dir, results)
	return ret.Get(0).(m.Path), ret.Error(1)
}

func (ms *MockReportStore) LoadRun(path m.Path) (m.RunReport, error) {
	ret := ms.Called(path)
	return ret.Get(0).(m.RunReport), ret.Error(1)
}
