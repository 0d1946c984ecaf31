// Package database builds the DynamoDB client shared by the repositories.
package database

import (
	"context"
	"fmt"
	"os"

	"mutual_cartera/internal/infrastructure/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Settings are read from the environment.
//
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (static credentials when both are set)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://localhost:8000 for DynamoDB Local)
type Settings struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

func SettingsFromEnv() Settings {
	return Settings{
		Region:    getenvDefault("AWS_REGION", "us-east-1"),
		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
	}
}

// ConnectDynamoDB returns a client configured from the environment.
func ConnectDynamoDB(ctx context.Context, logger *logging.Logger) (*dynamodb.Client, error) {
	s := SettingsFromEnv()
	cfg, err := LoadAWSConfig(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	})

	logger.Info().
		Str("region", s.Region).
		Str("endpoint", s.Endpoint).
		Msg("dynamodb client ready")
	return client, nil
}

func LoadAWSConfig(ctx context.Context, s Settings) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(s.Region),
	}

	// DynamoDB Local ignores credentials, but the SDK still signs requests.
	switch {
	case s.AccessKey != "" && s.SecretKey != "":
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.AccessKey, s.SecretKey, ""),
		))
	case s.Endpoint != "":
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
