package domain

// ConfigFileName is the name of the optional config file in the stack root.
const ConfigFileName = "stackup.toml"

// Config represents the launcher configuration.
type Config struct {
	Backend  ChildConfig // [backend] settings
	Frontend ChildConfig // [frontend] settings
	Log      LogConfig   // [log] settings
}

// ChildConfig holds per-child settings from the [backend] and [frontend]
// sections.
type ChildConfig struct {
	Dir     string // Directory of the child, relative to the stack root
	Command string // Shell command that starts the child
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when no config file
// exists. The directories and commands match the stock stack layout:
// the backend API beside the launcher, the frontend dashboard beside the
// launcher's parent directory.
func NewDefaultConfig() *Config {
	return &Config{
		Backend: ChildConfig{
			Dir:     "backend",
			Command: "python app.py",
		},
		Frontend: ChildConfig{
			Dir:     "../frontend",
			Command: "streamlit run app.py",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
