package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/webgraph-lab/webrank/pkg/models"
	"github.com/webgraph-lab/webrank/pkg/utils/logger"
)

// The configuration parameters for the CLI.
type Config struct {
	Log       *logger.Aggregate
	LogWriter io.Writer
	Alpha     float64
	Samples   int
}

// NewConfig() returns a config with default parameters.
func NewConfig() *Config {
	return &Config{
		LogWriter: os.Stdout,
		Alpha:     models.DefaultAlpha,
		Samples:   models.DefaultSampleCount,
	}
}

// LoadConfig() reads the variables from the enviroment and parses them
// into a config struct. A .env file is loaded first if present; it does
// not override variables that are already set.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var config = NewConfig()
	var err error

	for _, item := range os.Environ() {
		keyVal := strings.SplitN(item, "=", 2)
		key, val := keyVal[0], keyVal[1]

		switch key {
		case "WEBRANK_LOGS":
			// LogWriter gets updated if a .log file is specified; otherwise it remains os.Stdout
			if strings.HasSuffix(val, ".log") {
				config.LogWriter, err = os.OpenFile(val, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
				if err != nil {
					return nil, fmt.Errorf("error opening file \"%v\": %v", val, err)
				}
			}

		case "WEBRANK_DAMPING":
			config.Alpha, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "WEBRANK_SAMPLES":
			config.Samples, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}
		}
	}

	config.Log = logger.New(config.LogWriter)
	return config, nil
}
