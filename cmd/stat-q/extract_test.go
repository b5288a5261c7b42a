package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newResolveCmd builds a throwaway command carrying only the flag under test.
func newResolveCmd(t *testing.T, flag, value string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().String(flag, "", "")
	if value != "" {
		require.NoError(t, cmd.Flags().Set(flag, value))
	}
	return cmd
}

func TestResolveDir(t *testing.T) {
	tests := []struct {
		name     string
		flagVal  string
		viperVal string
		want     string
		wantErr  bool
	}{
		{
			name:     "flag beats config key",
			flagVal:  "/from/flag",
			viperVal: "/from/config",
			want:     "/from/flag",
		},
		{
			name:     "config key fills in for empty flag",
			viperVal: "/from/config",
			want:     "/from/config",
		},
		{
			name:    "flag alone",
			flagVal: "/from/flag",
			want:    "/from/flag",
		},
		{
			name:    "both empty is an error",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			if tt.viperVal != "" {
				viper.Set("source_directory", tt.viperVal)
			}

			cmd := newResolveCmd(t, "source-dir", tt.flagVal)
			got, err := resolveDir(cmd, "source-dir", "source_directory")

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "--source-dir")
				assert.Contains(t, err.Error(), "source_directory")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
