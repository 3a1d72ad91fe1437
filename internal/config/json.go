package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		SessionDuration Duration `json:"session_duration"`
		Version         string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Email struct {
		Host string `json:"host"`
		Port int    `json:"port"`
		User string `json:"user"`
		Pass string `json:"pass"`
		From string `json:"from"`
	} `json:"email,omitempty"`

	SMS struct {
		AccountSID string `json:"account_sid"`
		AuthToken  string `json:"auth_token"`
		FromNumber string `json:"from_number"`
	} `json:"sms,omitempty"`

	Assistant struct {
		APIKey string `json:"api_key"`
		Model  string `json:"model"`
	} `json:"assistant,omitempty"`

	News struct {
		FeedURL        string   `json:"feed_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"news,omitempty"`

	Workers struct {
		ReportInterval Duration `json:"report_interval"`
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
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			SessionDuration: time.Duration(jsonCfg.App.SessionDuration),
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Email: Email{
			Host: jsonCfg.Email.Host,
			Port: jsonCfg.Email.Port,
			User: jsonCfg.Email.User,
			Pass: jsonCfg.Email.Pass,
			From: jsonCfg.Email.From,
		},
		SMS: SMS{
			AccountSID: jsonCfg.SMS.AccountSID,
			AuthToken:  jsonCfg.SMS.AuthToken,
			FromNumber: jsonCfg.SMS.FromNumber,
		},
		Assistant: Assistant{
			APIKey: jsonCfg.Assistant.APIKey,
			Model:  jsonCfg.Assistant.Model,
		},
		News: News{
			FeedURL:        jsonCfg.News.FeedURL,
			RequestTimeout: time.Duration(jsonCfg.News.RequestTimeout),
		},
		Workers: Workers{
			ReportInterval: time.Duration(jsonCfg.Workers.ReportInterval),
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
