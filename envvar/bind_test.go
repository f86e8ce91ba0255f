// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envvar

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/envtyped/env"
)

type serverConfig struct {
	Host    string        `env:"HOST" envDefault:"localhost"`
	Port    int           `env:"PORT" envDefault:"8080"`
	Debug   bool          `env:"DEBUG"`
	Hosts   []string      `env:"HOSTS" envSeparator:","`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Token   string        `env:"TOKEN"`
}

func TestAccessor_Bind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		vars    map[string]string
		opts    []BindOption
		want    serverConfig
		wantErr bool
	}{
		{
			name: "defaults",
			vars: nil,
			want: serverConfig{Host: "localhost", Port: 8080, Timeout: 5 * time.Second},
		},
		{
			name: "values from store",
			vars: map[string]string{
				"HOST":    "example.com",
				"PORT":    "9090",
				"DEBUG":   "yes",
				"HOSTS":   "a,b",
				"TIMEOUT": "1m",
			},
			want: serverConfig{
				Host:    "example.com",
				Port:    9090,
				Debug:   true,
				Hosts:   []string{"a", "b"},
				Timeout: time.Minute,
			},
		},
		{
			name: "truth table applies to booleans",
			vars: map[string]string{"DEBUG": "  On "},
			want: serverConfig{Host: "localhost", Port: 8080, Debug: true, Timeout: 5 * time.Second},
		},
		{
			name: "prefix",
			vars: map[string]string{"APP_PORT": "1234", "PORT": "1"},
			opts: []BindOption{WithPrefix("APP_")},
			want: serverConfig{Host: "localhost", Port: 1234, Timeout: 5 * time.Second},
		},
		{
			name:    "invalid boolean",
			vars:    map[string]string{"DEBUG": "nope"},
			wantErr: true,
		},
		{
			name:    "invalid number",
			vars:    map[string]string{"PORT": "eighty"},
			wantErr: true,
		},
		{
			name:    "required if no default",
			vars:    map[string]string{"DEBUG": "1", "HOSTS": "a"},
			opts:    []BindOption{RequiredIfNoDefault()},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := newTestAccessor(tt.vars)

			var got serverConfig
			err := a.Bind(&got, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "binding environment")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccessor_BindLogsAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := New(env.NewMapStore(map[string]string{"PORT": "1"}), WithLogger(logger))

	var cfg serverConfig
	require.NoError(t, a.Bind(&cfg))
	assert.Contains(t, buf.String(), "name=PORT")
	assert.Contains(t, buf.String(), "default=true")
}

func TestAccessor_BindNotAStruct(t *testing.T) {
	t.Parallel()

	a := newTestAccessor(nil)
	var n int
	assert.Error(t, a.Bind(&n))
	assert.Error(t, a.Bind(serverConfig{}))
}
