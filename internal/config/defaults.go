package config

import "time"

// Defaults applied before any other source.
const (
	DefaultHTTPAddress         = "localhost:8080"
	DefaultRequestTimeout      = 60 * time.Second
	DefaultTokenIssuer         = "go-tenant-vet"
	DefaultTokenDuration       = 24 * time.Hour
	DefaultEstimatedCompletion = 15 * time.Minute
	DefaultDispatchTimeout     = 30 * time.Second
	DefaultPollTimeout         = 10 * time.Second
	DefaultHealthTimeout       = 5 * time.Second
	DefaultStageDuration       = 2 * time.Second
	DefaultFallbackDelay       = 2 * time.Second
	DefaultHealthInterval      = 30 * time.Second
	DefaultDotEnvPath          = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:         DefaultTokenIssuer,
			TokenDuration:       DefaultTokenDuration,
			EstimatedCompletion: DefaultEstimatedCompletion,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			DispatchTimeout: DefaultDispatchTimeout,
			PollTimeout:     DefaultPollTimeout,
			HealthTimeout:   DefaultHealthTimeout,
		},
		Workers: Workers{
			StageDuration:  DefaultStageDuration,
			FallbackDelay:  DefaultFallbackDelay,
			HealthInterval: DefaultHealthInterval,
		},
		DotEnvPath: DefaultDotEnvPath,
	}
}
