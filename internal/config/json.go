package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
// Durations accept either a Go duration string or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		EstimatedCompletion Duration `json:"estimated_completion"`
		Version             string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Enabled          bool     `json:"orchestration_enabled"`
		OrchestrationURL string   `json:"orchestration_url"`
		APIKey           string   `json:"orchestration_api_key"`
		CallbackBaseURL  string   `json:"callback_base_url"`
		DispatchTimeout  Duration `json:"dispatch_timeout"`
		PollTimeout      Duration `json:"poll_timeout"`
		HealthTimeout    Duration `json:"health_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		StageDuration  Duration `json:"stage_duration"`
		FallbackDelay  Duration `json:"fallback_delay"`
		HealthInterval Duration `json:"health_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.App.TokenDuration),
			EstimatedCompletion: time.Duration(jsonCfg.App.EstimatedCompletion),
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Enabled:          jsonCfg.Adapter.Enabled,
			OrchestrationURL: jsonCfg.Adapter.OrchestrationURL,
			APIKey:           jsonCfg.Adapter.APIKey,
			CallbackBaseURL:  jsonCfg.Adapter.CallbackBaseURL,
			DispatchTimeout:  time.Duration(jsonCfg.Adapter.DispatchTimeout),
			PollTimeout:      time.Duration(jsonCfg.Adapter.PollTimeout),
			HealthTimeout:    time.Duration(jsonCfg.Adapter.HealthTimeout),
		},
		Workers: Workers{
			StageDuration:  time.Duration(jsonCfg.Workers.StageDuration),
			FallbackDelay:  time.Duration(jsonCfg.Workers.FallbackDelay),
			HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
