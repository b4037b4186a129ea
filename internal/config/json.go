// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Storage struct {
		Dir string `json:"dir"`
	} `json:"storage,omitempty"`

	Browser struct {
		StartDir string `json:"start_dir"`
	} `json:"browser,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Clipboard struct {
		Timeout Duration `json:"timeout"`
	} `json:"clipboard,omitempty"`

	Checks struct {
		NoRootCheck  bool `json:"no_root_check"`
		NoLinuxCheck bool `json:"no_linux_check"`
		NoSizeCheck  bool `json:"no_size_check"`
	} `json:"checks,omitempty"`

	Mouse bool `json:"mouse"`
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
		Storage: Storage{
			Dir: jsonCfg.Storage.Dir,
		},
		Browser: Browser{
			StartDir: jsonCfg.Browser.StartDir,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		Clipboard: Clipboard{
			Timeout: time.Duration(jsonCfg.Clipboard.Timeout),
		},
		Checks: Checks{
			NoRootCheck:  jsonCfg.Checks.NoRootCheck,
			NoLinuxCheck: jsonCfg.Checks.NoLinuxCheck,
			NoSizeCheck:  jsonCfg.Checks.NoSizeCheck,
		},
		Mouse:        jsonCfg.Mouse,
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
