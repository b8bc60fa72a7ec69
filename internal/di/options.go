package di

// Options carries the command line settings that shape the container
type Options struct {
	// ConfigFile replaces the config search path when set
	ConfigFile string

	// Verbose and JSONLog switch to the console logger
	Verbose bool
	JSONLog bool

	// Overrides are applied over the loaded configuration, keyed by
	// config key (for example "keywords.hot")
	Overrides map[string]any
}
