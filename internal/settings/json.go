package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonSettings struct {
	Source struct {
		EnvFile string `json:"env_file"`
		AllEnv  bool   `json:"all_env"`
		NoEnv   bool   `json:"no_env"`
	} `json:"source"`

	Log struct {
		Level string `json:"level"`
	} `json:"log"`

	Inspector struct {
		Address     string   `json:"address"`
		AuthKey     string   `json:"auth_key"`
		ReadTimeout Duration `json:"read_timeout"`
	} `json:"inspector"`

	Probe struct {
		Timeout Duration `json:"timeout"`
	} `json:"probe"`
}

func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var js jsonSettings
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&js); err != nil {
		return nil, fmt.Errorf("error decoding json settings: %w", err)
	}

	s := &Settings{
		Source: Source{
			EnvFile: js.Source.EnvFile,
			AllEnv:  js.Source.AllEnv,
			NoEnv:   js.Source.NoEnv,
		},
		Log: Log{
			Level: js.Log.Level,
		},
		Inspector: Inspector{
			Address:     js.Inspector.Address,
			AuthKey:     js.Inspector.AuthKey,
			ReadTimeout: time.Duration(js.Inspector.ReadTimeout),
		},
		Probe: Probe{
			Timeout: time.Duration(js.Probe.Timeout),
		},
	}

	return s, nil
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
