package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/DjordjeVuckovic/rpn-calc/pkg/config/env"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/utils"
)

const DefaultMaxExpressionLength = 1024

type Config struct {
	Port                string
	UseHttp2            bool
	CorsOrigins         []string
	MaxExpressionLength int
}

// LoadConfig reads the HTTP server settings from the environment.
// Call env.LoadDotEnv beforehand to pick up a .env file.
func LoadConfig() (*Config, error) {
	useHttp2 := env.GetOrDefault("USE_HTTP2", "false") == "true"

	port := env.GetOrDefault("PORT", "8080")
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.RemoveEmptyStrings(utils.SplitTrim(env.GetOrDefault("CORS_ORIGINS", ""), ","))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxLen, err := env.GetInt("MAX_EXPRESSION_LENGTH", DefaultMaxExpressionLength)
	if err != nil {
		return nil, err
	}
	if maxLen < 1 {
		return nil, errors.New("MAX_EXPRESSION_LENGTH must be positive")
	}

	return &Config{
		Port:                port,
		UseHttp2:            useHttp2,
		CorsOrigins:         origins,
		MaxExpressionLength: maxLen,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
