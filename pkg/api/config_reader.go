package api

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-envconfig"
	yaml "gopkg.in/yaml.v2"
)

// ConfigReader reads the pipeline config from file
type ConfigReader interface {
	ReadConfigFromFile(configPath string) (*RunnerConfig, error)
}

type configReaderImpl struct {
	envPrefix string
}

// NewConfigReader returns a new api.ConfigReader
func NewConfigReader(envPrefix string) ConfigReader {
	return &configReaderImpl{
		envPrefix: envPrefix,
	}
}

// ReadConfigFromFile reads the yaml config checked in next to the solution
func (h *configReaderImpl) ReadConfigFromFile(configPath string) (config *RunnerConfig, err error) {

	log.Info().Msgf("Reading %v file...", configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, err
	}

	// unmarshal into structs
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, err
	}

	// override values from envvars
	lookuper := envconfig.PrefixLookuper(h.envPrefix, envconfig.OsLookuper())
	if err = envconfig.ProcessWith(context.Background(), config, lookuper); err != nil {
		return
	}

	// fill in all the defaults for empty values
	config.SetDefaults()

	// validate the config
	err = config.Validate()
	if err != nil {
		return
	}

	log.Info().Msgf("Finished reading %v file successfully", configPath)

	return
}
