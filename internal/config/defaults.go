package config

const (
	defaultGlossaryPath          = "src/appendix/glossary.md"
	defaultCheckerRoot           = "."
	defaultPassiveVoiceThreshold = 20
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Glossary: Glossary{
			Path: defaultGlossaryPath,
		},
		Checker: Checker{
			Root:                  defaultCheckerRoot,
			PassiveVoiceThreshold: defaultPassiveVoiceThreshold,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
