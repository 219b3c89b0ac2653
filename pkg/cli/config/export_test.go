package config

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, inventory string) *Repository {
	return &Repository{
		backend:   backend,
		inventory: inventory,
	}
}

// NewGenerationForTest creates a Generation config for testing purposes
func NewGenerationForTest(configPath string, length, maxAttempts int, seed uint64) *Generation {
	return &Generation{
		configPath:  configPath,
		length:      length,
		maxAttempts: maxAttempts,
		seed:        seed,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewMetricsForTest creates a Metrics config for testing purposes
func NewMetricsForTest(file string) *Metrics {
	return &Metrics{file: file}
}

var ParseGCSPath = parseGCSPath
