package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetectMessages(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Messages
	}{
		{"empty environment", map[string]string{}, catalogs["en"]},
		{"plain C locale", map[string]string{"LANG": "C.UTF-8"}, catalogs["en"]},
		{"english locale", map[string]string{"LANG": "en_US.UTF-8"}, catalogs["en"]},
		{"chinese LANG", map[string]string{"LANG": "zh_CN.UTF-8"}, catalogs["zh"]},
		{"chinese LC_ALL overrides", map[string]string{"LANG": "en_US.UTF-8", "LC_ALL": "zh_CN.UTF-8"}, catalogs["zh"]},
		{"chinese LC_MESSAGES", map[string]string{"LC_MESSAGES": "zh_TW.UTF-8"}, catalogs["zh"]},
		{"uppercase variant", map[string]string{"LANG": "ZH_CN.GBK"}, catalogs["zh"]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMessages(fakeEnv(tt.env)))
		})
	}
}
