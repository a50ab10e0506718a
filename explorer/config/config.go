package config

import (
	"bikeshare/communication"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"os"
)

const (
	configFilepath        = "./explorer/config/config.yaml"
	configPathEnv         = "CONFIG_PATH"
	dataDirEnv            = "DATA_DIR"
	rabbitURLEnv          = "RABBIT_URL"
	logLevelEnv           = "LOG_LEVEL"
	defaultRawPageSize    = 5
	defaultLogLevel       = "info"
	defaultContentType    = "application/json"
	defaultTimeoutSeconds = 5
)

// ExplorerConfig configuration of the interactive explorer
// + DataDir: directory with one trips CSV per city
// + TimestampLayout: Go layout of the Start Time and End Time values
// + RawPageSize: amount of raw trips shown per page
// + LogLevel: logrus level
// + StationSources: optional stations CSV per city, enables distance stats
// + Publisher: optional RabbitMQ publisher of the computed reports
type ExplorerConfig struct {
	DataDir         string                        `yaml:"data_dir" validate:"required"`
	TimestampLayout string                        `yaml:"timestamp_layout"`
	RawPageSize     int                           `yaml:"raw_page_size" validate:"gte=0"`
	LogLevel        string                        `yaml:"log_level"`
	StationSources  map[string]string             `yaml:"station_sources" validate:"omitempty,dive,required"`
	Publisher       communication.PublisherConfig `yaml:"publisher"`
}

// LoadConfig loads the config file pointed by CONFIG_PATH, or the default one
func LoadConfig() (*ExplorerConfig, error) {
	path := os.Getenv(configPathEnv)
	if path == "" {
		path = configFilepath
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads, overrides with environment variables, sets defaults and validates the config
func LoadConfigFrom(path string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", dataErrors.ErrConfiguration, err.Error())
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing explorer config file: %s", dataErrors.ErrConfiguration, err.Error())
	}

	if dataDir := os.Getenv(dataDirEnv); dataDir != "" {
		explorerConfig.DataDir = dataDir
	}

	if rabbitURL := os.Getenv(rabbitURLEnv); rabbitURL != "" {
		explorerConfig.Publisher.URL = rabbitURL
	}

	if logLevel := os.Getenv(logLevelEnv); logLevel != "" {
		explorerConfig.LogLevel = logLevel
	}

	explorerConfig.setDefaults()

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}

	return &explorerConfig, nil
}

func (ec *ExplorerConfig) setDefaults() {
	if ec.TimestampLayout == "" {
		ec.TimestampLayout = trip.TimestampLayout
	}

	if ec.RawPageSize == 0 {
		ec.RawPageSize = defaultRawPageSize
	}

	if ec.LogLevel == "" {
		ec.LogLevel = defaultLogLevel
	}

	if ec.Publisher.ContentType == "" {
		ec.Publisher.ContentType = defaultContentType
	}

	if ec.Publisher.TimeoutSeconds == 0 {
		ec.Publisher.TimeoutSeconds = defaultTimeoutSeconds
	}
}

// Validate checks the struct tags plus the rules that involve the fixed vocabularies
func (ec *ExplorerConfig) Validate() error {
	if err := validator.New().Struct(ec); err != nil {
		return fmt.Errorf("%w: %s", dataErrors.ErrConfiguration, err.Error())
	}

	for city := range ec.StationSources {
		if !utils.ContainsString(city, trip.Cities()) {
			return fmt.Errorf("%w: station source for unknown city %q", dataErrors.ErrConfiguration, city)
		}
	}

	if ec.Publisher.Enabled && ec.Publisher.OutputQueue.Name == "" {
		return fmt.Errorf("%w: publisher enabled without output queue name", dataErrors.ErrConfiguration)
	}

	return nil
}
