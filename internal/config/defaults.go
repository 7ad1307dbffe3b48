package config

// Default values for optional configuration fields.
const (
	DefaultName        = "fixturegen"
	DefaultLogLevel    = "info"
	DefaultOutputDir   = "data/raw"
	DefaultFormat      = FormatJSON
	DefaultIndent      = 2
	DefaultWindowStart = "2018-09-01"
	DefaultLocation    = "Local"
)

// Output formats understood by the sink layer.
const (
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = DefaultName
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = DefaultLogLevel
	}

	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}

	if c.Window.Start == "" {
		c.Window.Start = DefaultWindowStart
	}
	if c.Window.Location == "" {
		c.Window.Location = DefaultLocation
	}
}
