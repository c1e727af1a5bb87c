package config

import "fmt"

// WellnessConfig holds the connection settings for the upstream wellness
// management API. Every field is mandatory; the service refuses to start
// without them.
type WellnessConfig struct {
	// BaseURL of the wellness API, including trailing slash.
	BaseURL string `mapstructure:"base_url"`
	// Company is the tenant path segment inserted into every data endpoint.
	Company  string `mapstructure:"company"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// ActivityTypeIDs filters the authorization search to sale activities
	// that represent subscriptions.
	ActivityTypeIDs []int `mapstructure:"activity_type_ids"`
	// DaysRange is the step, in days, of the windowed authorization fetch.
	DaysRange int `mapstructure:"days_range"`
}

func (c *WellnessConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("wellness.base_url is required")
	}
	if c.Company == "" {
		return fmt.Errorf("wellness.company is required")
	}
	if c.Username == "" {
		return fmt.Errorf("wellness.username is required")
	}
	if c.Password == "" {
		return fmt.Errorf("wellness.password is required")
	}
	if len(c.ActivityTypeIDs) == 0 {
		return fmt.Errorf("wellness.activity_type_ids is required")
	}
	if c.DaysRange <= 0 {
		return fmt.Errorf("wellness.days_range must be positive")
	}
	return nil
}
