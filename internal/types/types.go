package types

import (
	"fmt"
	"go/token"
	"strings"
)

// Issue represents a lint issue found in the code base.
type Issue struct {
	Rule     string
	Category string
	Filename string
	Message  string
	Note     string
	Start    token.Position
	End      token.Position
	Severity Severity
}

// Severity is the level a rule reports at. SeverityOff disables the rule.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// MarshalYAML writes a severity in its configuration spelling.
func (s Severity) MarshalYAML() (interface{}, error) {
	return strings.ToLower(s.String()), nil
}

// UnmarshalYAML parses a severity from its configuration spelling.
// A bare `off` resolves as the YAML boolean false, so that form is
// accepted too.
func (s *Severity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	if b, ok := raw.(bool); ok && !b {
		*s = SeverityOff
		return nil
	}

	str, ok := raw.(string)
	if !ok {
		return fmt.Errorf("unknown severity: %v", raw)
	}
	switch strings.ToLower(str) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity: %q", str)
	}
	return nil
}

// ConfigRule is the per-rule section of the configuration file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// Config is the root of the configuration file.
type Config struct {
	Rules       map[string]ConfigRule `yaml:"rules"`
	IgnorePaths []string              `yaml:"ignore_paths"`
}
