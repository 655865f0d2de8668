package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "30m", want: 30 * time.Minute},
		{value: "168h", want: 168 * time.Hour},
		{value: "", want: time.Minute},
		{value: "soon", want: time.Minute},
		{value: "-5s", want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDuration(tt.value, time.Minute))
		})
	}
}

func TestAppConfig_IsProduction(t *testing.T) {
	assert.True(t, AppConfig{Env: "production"}.IsProduction())
	assert.False(t, AppConfig{Env: "development"}.IsProduction())
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
	assert.Equal(t, []string{"https://app.example.lk", "https://admin.example.lk"},
		splitList("https://app.example.lk, https://admin.example.lk,"))
}
