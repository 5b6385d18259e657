package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSeverityUnmarshalYAML(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected Severity
		wantErr  bool
	}{
		{name: "error", input: "severity: error", expected: SeverityError},
		{name: "warning", input: "severity: warning", expected: SeverityWarning},
		{name: "info", input: "severity: info", expected: SeverityInfo},
		{name: "quoted off", input: `severity: "off"`, expected: SeverityOff},
		{name: "bare off resolves as YAML boolean", input: "severity: off", expected: SeverityOff},
		{name: "mixed case", input: "severity: WARNING", expected: SeverityWarning},
		{name: "unknown", input: "severity: loud", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var rule ConfigRule
			err := yaml.Unmarshal([]byte(tc.input), &rule)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rule.Severity)
		})
	}
}

func TestSeverityMarshalRoundTrip(t *testing.T) {
	t.Parallel()
	out, err := yaml.Marshal(ConfigRule{Severity: SeverityWarning})
	require.NoError(t, err)
	assert.Equal(t, "severity: warning\n", string(out))

	var rule ConfigRule
	require.NoError(t, yaml.Unmarshal(out, &rule))
	assert.Equal(t, SeverityWarning, rule.Severity)
}

func TestSeverityString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ERROR", SeverityError.String())
	assert.Equal(t, "WARNING", SeverityWarning.String())
	assert.Equal(t, "INFO", SeverityInfo.String())
	assert.Equal(t, "OFF", SeverityOff.String())
}
