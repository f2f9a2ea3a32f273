package utils

import (
	"fmt"
	"os"

	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// LoadConfig reads the yaml file at path on top of the defaults. An empty path yields the defaults.
func LoadConfig(path string) (*entities.CarbonjConfig, error) {
	config := entities.DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Error reading config file %s: %w", path, err)
	}

	var payload map[string]interface{}
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("Error unmarshalling the config: %w", err)
	}

	if err := DecodeAndValidate(payload, config); err != nil {
		return nil, fmt.Errorf("Invalid config: %w", err)
	}

	return config, nil
}

// DecodeAndValidate decodes payload into target with mapstructure and checks its validate tags.
func DecodeAndValidate(payload map[string]interface{}, target interface{}) error {
	if err := mapstructure.Decode(payload, target); err != nil {
		return err
	}

	return validate.Struct(target)
}
