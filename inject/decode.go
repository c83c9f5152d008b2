package inject

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hydr8/config"

	"github.com/goccy/go-yaml"
)

// Decode copies src into target through its yaml struct tags, then applies
// config.Defaulter and config.Validator hooks when target implements them.
// It is meant for AsDict arguments and collector maps:
//
//	var db DBConfig
//	if err := inject.Decode(args["config"].(map[string]any), &db); err != nil { ... }
func Decode[T any](src map[string]any, target *T) error {
	data, err := yaml.Marshal(src)
	if err != nil {
		return fmt.Errorf("encoding error: %w", err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("decoding error: %w", err)
	}

	targetDefaulter, isDefaulter := any(target).(config.Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			slog.Debug("defaults applied", slog.String("type", fmt.Sprintf("%T", target)))
		}
	}

	targetValidatable, isValidatable := any(target).(config.Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return fmt.Errorf("validating error: %w", err)
		}
	}

	return nil
}
