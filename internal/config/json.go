package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
type StructuredJSONConfig struct {
	Vault struct {
		ID                          string `json:"id"`
		Cipher                      string `json:"cipher"`
		MinPassphraseLength         int    `json:"min_passphrase_length"`
		RecommendedPassphraseLength int    `json:"recommended_passphrase_length"`
		SkipWriteVerification       bool   `json:"skip_write_verification"`
	} `json:"vault,omitempty"`

	KDF struct {
		Time         uint32 `json:"time"`
		MemoryKiB    uint32 `json:"memory_kib"`
		Threads      uint8  `json:"threads"`
		MaxTime      uint32 `json:"max_time"`
		MaxMemoryKiB uint32 `json:"max_memory_kib"`
		MaxThreads   uint8  `json:"max_threads"`
	} `json:"kdf,omitempty"`

	Storage struct {
		Driver     string `json:"driver"`
		DSN        string `json:"dsn"`
		Dir        string `json:"dir"`
		QuotaBytes int64  `json:"quota_bytes"`
	} `json:"storage,omitempty"`

	Adapter struct {
		AIAddress      string   `json:"ai_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Log struct {
		Dir string `json:"dir"`
	} `json:"log,omitempty"`
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
		Vault: Vault{
			ID:                          jsonCfg.Vault.ID,
			Cipher:                      jsonCfg.Vault.Cipher,
			MinPassphraseLength:         jsonCfg.Vault.MinPassphraseLength,
			RecommendedPassphraseLength: jsonCfg.Vault.RecommendedPassphraseLength,
			SkipWriteVerification:       jsonCfg.Vault.SkipWriteVerification,
		},
		KDF: KDF{
			Time:         jsonCfg.KDF.Time,
			MemoryKiB:    jsonCfg.KDF.MemoryKiB,
			Threads:      jsonCfg.KDF.Threads,
			MaxTime:      jsonCfg.KDF.MaxTime,
			MaxMemoryKiB: jsonCfg.KDF.MaxMemoryKiB,
			MaxThreads:   jsonCfg.KDF.MaxThreads,
		},
		Storage: Storage{
			Driver:     jsonCfg.Storage.Driver,
			DSN:        jsonCfg.Storage.DSN,
			Dir:        jsonCfg.Storage.Dir,
			QuotaBytes: jsonCfg.Storage.QuotaBytes,
		},
		Adapter: Adapter{
			AIAddress:      jsonCfg.Adapter.AIAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Log: Log{Dir: jsonCfg.Log.Dir},
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
