package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadFile reads the JSON configuration file at the path given.
func ReadFile(path string) (config Config, err error) {
	file, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("opening configuration file: %w", err)
	}

	decoder := json.NewDecoder(file)
	err = decoder.Decode(&config)
	if err != nil {
		_ = file.Close()
		return config, fmt.Errorf("decoding configuration file %s: %w", path, err)
	}

	err = file.Close()
	if err != nil {
		return config, fmt.Errorf("closing configuration file: %w", err)
	}

	return config, nil
}
