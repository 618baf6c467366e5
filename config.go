package atlas

// Default packer settings.
const (
	// DefaultPageSize is the default page dimension (1024x1024).
	DefaultPageSize = 1024

	// DefaultMaxPages is the default page limit.
	DefaultMaxPages = 1

	// MaxPageDimension is the largest accepted page width or height.
	MaxPageDimension = 65536
)

// Config holds packer configuration.
type Config struct {
	// Width is the page width in pixels.
	// Default: 1024
	Width int

	// Height is the page height in pixels.
	// Default: 1024
	Height int

	// MaxPages limits how many pages Add may open before failing with
	// ErrPageLimitReached.
	// Default: 1
	MaxPages int

	// Padding is added around each rectangle before placement: sizes grow
	// by twice the padding, returned offsets exclude it again. Padding is
	// applied before a potential rotation.
	// Default: 0
	Padding int

	// Flags select the packing heuristics. If neither WidestFirst nor
	// NarrowestFirst is set, rectangles are placed in their original order.
	// Default: WidestFirst
	Flags Flags
}

// DefaultConfig returns the default packer configuration.
func DefaultConfig() Config {
	return Config{
		Width:    DefaultPageSize,
		Height:   DefaultPageSize,
		MaxPages: DefaultMaxPages,
		Flags:    WidestFirst,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width < 1 {
		return &ConfigError{Field: "Width", Reason: "must be positive"}
	}
	if c.Width > MaxPageDimension {
		return &ConfigError{Field: "Width", Reason: "must be at most 65536"}
	}
	if c.Height < 1 {
		return &ConfigError{Field: "Height", Reason: "must be positive"}
	}
	if c.Height > MaxPageDimension {
		return &ConfigError{Field: "Height", Reason: "must be at most 65536"}
	}
	if c.MaxPages < 1 {
		return &ConfigError{Field: "MaxPages", Reason: "must be at least 1"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.Flags&WidestFirst != 0 && c.Flags&NarrowestFirst != 0 {
		return &ConfigError{Field: "Flags", Reason: "WidestFirst and NarrowestFirst are mutually exclusive"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
