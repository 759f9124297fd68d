package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Vision  VisionConfig  `yaml:"vision"`
}

type StorageConfig struct {
	DataPath    string `yaml:"dataPath"`
	UploadsPath string `yaml:"uploadsPath"`
	PublicPath  string `yaml:"publicPath"`
}

type ServerConfig struct {
	Port        int         `yaml:"port"`
	SizeLimit   int         `yaml:"sizeLimit"` // request body limit in MB
	LogConfig   LogConfig   `yaml:"log"`
	CleanConfig CleanConfig `yaml:"clean"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule    string `yaml:"schedule"`
	MinAgeHours int    `yaml:"minAgeHours"`
}

type VisionConfig struct {
	BaseURL        string  `yaml:"baseUrl"`
	Model          string  `yaml:"model"`
	Temperature    float64 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeoutSeconds"`
}

// LoadConfiguration reads the YAML configuration file. A missing file is not
// an error; every field has a usable default.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	var config Configuration
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		if err = yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	}
	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Configuration) {
	if config.Server.Port == 0 {
		config.Server.Port = 3000
	}
	if config.Server.SizeLimit == 0 {
		config.Server.SizeLimit = 10
	}
	if config.Server.CleanConfig.Schedule == "" {
		config.Server.CleanConfig.Schedule = "@hourly"
	}
	if config.Server.CleanConfig.MinAgeHours == 0 {
		config.Server.CleanConfig.MinAgeHours = 24
	}
	if config.Storage.DataPath == "" {
		config.Storage.DataPath = "data"
	}
	if config.Storage.UploadsPath == "" {
		config.Storage.UploadsPath = "uploads"
	}
	if config.Storage.PublicPath == "" {
		config.Storage.PublicPath = "public"
	}
	if config.Vision.BaseURL == "" {
		config.Vision.BaseURL = "https://api.openai.com/v1"
	}
	if config.Vision.Model == "" {
		config.Vision.Model = "gpt-4o"
	}
	if config.Vision.Temperature == 0 {
		config.Vision.Temperature = 0.2
	}
	if config.Vision.TimeoutSeconds == 0 {
		config.Vision.TimeoutSeconds = 30
	}
}
