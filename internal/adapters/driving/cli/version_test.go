package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Metadata(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_PrintsVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"dev build", "dev", "corpusfetch version dev"},
		{"release build", "0.4.1", "corpusfetch version 0.4.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t, nil, nil)
			original := version
			t.Cleanup(func() { version = original })
			version = tt.version

			out, err := execute(t, "version")

			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}
