package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWellnessConfig() WellnessConfig {
	return WellnessConfig{
		BaseURL:         "https://app.wellnessapi.example/",
		Company:         "democlub",
		Username:        "service-account",
		Password:        "secret",
		ActivityTypeIDs: []int{1, 4},
		DaysRange:       50,
	}
}

func TestWellnessConfig_Validate(t *testing.T) {
	t.Run("complete config passes", func(t *testing.T) {
		cfg := validWellnessConfig()
		require.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*WellnessConfig)
		wantErr string
	}{
		{
			name:    "missing base url",
			mutate:  func(c *WellnessConfig) { c.BaseURL = "" },
			wantErr: "wellness.base_url is required",
		},
		{
			name:    "missing company",
			mutate:  func(c *WellnessConfig) { c.Company = "" },
			wantErr: "wellness.company is required",
		},
		{
			name:    "missing username",
			mutate:  func(c *WellnessConfig) { c.Username = "" },
			wantErr: "wellness.username is required",
		},
		{
			name:    "missing password",
			mutate:  func(c *WellnessConfig) { c.Password = "" },
			wantErr: "wellness.password is required",
		},
		{
			name:    "missing activity type ids",
			mutate:  func(c *WellnessConfig) { c.ActivityTypeIDs = nil },
			wantErr: "wellness.activity_type_ids is required",
		},
		{
			name:    "empty activity type ids",
			mutate:  func(c *WellnessConfig) { c.ActivityTypeIDs = []int{} },
			wantErr: "wellness.activity_type_ids is required",
		},
		{
			name:    "missing days range",
			mutate:  func(c *WellnessConfig) { c.DaysRange = 0 },
			wantErr: "wellness.days_range must be positive",
		},
		{
			name:    "negative days range",
			mutate:  func(c *WellnessConfig) { c.DaysRange = -50 },
			wantErr: "wellness.days_range must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validWellnessConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
