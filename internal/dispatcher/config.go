package dispatcher

// Config holds dispatcher configuration options.
type Config struct {
	// ClampMovement keeps the cursor inside the buffer after plain moves:
	// row in [0, LineCount-1] and column in [0, LineLen(row)].
	// When false, moves only saturate at zero.
	ClampMovement bool

	// EnableMetrics enables per-action dispatch statistics.
	EnableMetrics bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ClampMovement: false,
		EnableMetrics: true,
	}
}

// WithClampMovement returns a copy of the config with movement clamping set.
func (c Config) WithClampMovement(clamp bool) Config {
	c.ClampMovement = clamp
	return c
}
