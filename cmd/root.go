package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mockinterview/interview-coach/internal/interviewer"
	"github.com/mockinterview/interview-coach/internal/server"
)

const (
	app = "interview-coach"
)

type Config struct {
	Backend *BackendConfig `mapstructure:"backend"`
	AI      *AIConfig      `mapstructure:"ai"`
	Server  *ServerConfig  `mapstructure:"server"`
	Export  *ExportConfig  `mapstructure:"export"`
}

type BackendConfig struct {
	URL       string        `mapstructure:"url"`
	UserAgent string        `mapstructure:"user-agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
	TokenFile string        `mapstructure:"token-file"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "interview-coach turns mock interview evaluation metrics into candidate feedback",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envs := map[string]string{
		"backend.url":            "INTERVIEW_API_URL",
		"backend.token-file":     "INTERVIEW_API_TOKEN_FILE",
		"ai.gemini.api-key-file": "GEMINI_API_KEY_FILE",
		"server.addr":            "INTERVIEW_COACH_ADDR",
	}
	for key, env := range envs {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	viper.SetDefault("backend.url", interviewer.DefaultAPIURL)
	viper.SetDefault("backend.timeout", interviewer.DefaultTimeout)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("server.addr", server.DefaultAddr)
	viper.SetDefault("export.dir", ".")

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interview-coach.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless it was asked for explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Backend == nil {
		config.Backend = &BackendConfig{}
	}
	if config.Server == nil {
		config.Server = &ServerConfig{}
	}
	if config.Export == nil {
		config.Export = &ExportConfig{}
	}

	return config, nil
}
