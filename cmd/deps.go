package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mockinterview/interview-coach/internal/ai"
	"github.com/mockinterview/interview-coach/internal/ai/gemini"
	"github.com/mockinterview/interview-coach/internal/interviewer"
	"github.com/mockinterview/interview-coach/internal/logger"
	"github.com/mockinterview/interview-coach/internal/secrets"
)

// setup builds the logger and reads the config. Failures here are fatal.
func setup(command string) (*zap.Logger, *Config) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the interview-coach", zap.String("command", command), zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return logger, config
}

func newBackend(config *BackendConfig, logger *zap.Logger) (*interviewer.Client, error) {
	token, err := secrets.Optional(secrets.Source{
		Name: "backend token",
		File: config.TokenFile,
	})
	if err != nil {
		return nil, err
	}

	client := interviewer.New(logger, config.URL, token)

	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}
	if config.Timeout > 0 {
		client.HTTPClient.Timeout = config.Timeout
	}

	return client, nil
}

// newNarrator returns nil without error when AI narratives are disabled.
func newNarrator(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Narrator, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, genLogger, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries)
	if err != nil {
		return nil, err
	}

	return gemini.NewCoach(generator, logger, cfg.Gemini.MaxLogLength), nil
}
