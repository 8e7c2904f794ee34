package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "zero config",
			cfg:  StructuredConfig{},
		},
		{
			name: "valid server and log",
			cfg: StructuredConfig{
				Server: Server{HTTPAddress: "localhost:8088", RequestTimeout: time.Second},
				Log:    Log{Level: "debug"},
			},
		},
		{
			name:    "address without port",
			cfg:     StructuredConfig{Server: Server{HTTPAddress: "localhost"}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative timeout",
			cfg:     StructuredConfig{Server: Server{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown log level",
			cfg:     StructuredConfig{Log: Log{Level: "verbose"}},
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name: "backend url is not validated",
			cfg:  StructuredConfig{Build: Build{BackendURL: "::not a url::"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHost_HostEnabled(t *testing.T) {
	assert.False(t, Host{}.HostEnabled())
	assert.True(t, Host{Enabled: true}.HostEnabled())
	assert.True(t, Host{Globals: map[string]string{"A": "1"}}.HostEnabled())
}
