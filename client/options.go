package client

// ClientOptions configures the Linkar client behavior.
type ClientOptions struct {
	// Logger is the logger implementation to use.
	// If nil, a default logger is used.
	Logger Logger

	// LogLevel sets the minimum log level (DEBUG, INFO, WARN, ERROR).
	// Default: "INFO"
	LogLevel string

	// DebugMode logs every request with its argument size and digest, and
	// makes FormatError include cause chains.
	// Default: false
	DebugMode bool

	// MaxInFlight bounds how many asynchronous operations run at once.
	// Zero leaves the pool unbounded.
	// Default: 0
	MaxInFlight int

	// SkipOptionValidation sends option values without checking them.
	// Normally pagination ranges and random record id lengths are checked
	// before anything is sent, and invalid values fail with an
	// *options.ConfigError without calling the transport. Conversion's Type
	// is checked regardless: it has no default and no wire value outside
	// INPUT and OUTPUT.
	// Default: false
	SkipOptionValidation bool

	// Hooks are registered in order when the client is created.
	Hooks []Hook

	// OnFutureStateChange is called on every state change of a Future.
	OnFutureStateChange StateChangeHandler
}

// DefaultOptions returns ClientOptions with default values.
func DefaultOptions() ClientOptions {
	return ClientOptions{
		LogLevel:             "INFO",
		DebugMode:            false,
		MaxInFlight:          0,
		SkipOptionValidation: false,
	}
}
