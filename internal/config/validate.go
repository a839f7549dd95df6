package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4,31] (got %d)", c.Auth.BcryptCost)
	}

	if err := c.Dashboard.validate(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	return nil
}

func (d *DashboardConfig) validate() error {
	if d.ThresholdCeiling <= 0 {
		return fmt.Errorf("threshold_ceiling must be > 0 (got %d)", d.ThresholdCeiling)
	}
	if d.MaxShimThickness <= 0 {
		return fmt.Errorf("max_shim_thickness must be > 0 (got %d)", d.MaxShimThickness)
	}
	if d.DefaultQuantity <= 0 {
		return fmt.Errorf("default_quantity must be > 0 (got %d)", d.DefaultQuantity)
	}
	return nil
}
