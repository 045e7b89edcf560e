package main

import (
	"strings"
	"testing"

	"finboard/internal/config"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    action
		wantErr string
	}{
		{name: "up", args: []string{"up"}, want: action{name: "up"}},
		{name: "version", args: []string{"version"}, want: action{name: "version"}},
		{name: "down defaults to one step", args: []string{"down"}, want: action{name: "down", n: 1}},
		{name: "down with steps", args: []string{"down", "3"}, want: action{name: "down", n: 3}},
		{name: "force", args: []string{"force", "1"}, want: action{name: "force", n: 1}},
		{name: "force to no version", args: []string{"force", "-1"}, want: action{name: "force", n: -1}},
		{name: "no command", args: nil, wantErr: "usage"},
		{name: "unknown command", args: []string{"drop"}, wantErr: "unknown command"},
		{name: "up with argument", args: []string{"up", "2"}, wantErr: "takes no arguments"},
		{name: "down zero steps", args: []string{"down", "0"}, wantErr: "invalid step count"},
		{name: "down non-numeric", args: []string{"down", "all"}, wantErr: "invalid step count"},
		{name: "force without version", args: []string{"force"}, wantErr: "needs a version"},
		{name: "force below -1", args: []string{"force", "-2"}, wantErr: "invalid version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseArgs(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestCheckSupported(t *testing.T) {
	for _, name := range []string{"up", "down", "force", "version"} {
		if err := checkSupported(config.StoreBackendPostgres, action{name: name}); err != nil {
			t.Errorf("postgres %s: unexpected error %v", name, err)
		}
	}

	for _, backend := range []config.StoreBackend{config.StoreBackendSQLite, config.StoreBackendMongo} {
		if err := checkSupported(backend, action{name: "up"}); err != nil {
			t.Errorf("%s up: unexpected error %v", backend, err)
		}
		for _, name := range []string{"down", "force", "version"} {
			err := checkSupported(backend, action{name: name})
			if err == nil || !strings.Contains(err.Error(), "only supported for the postgres backend") {
				t.Errorf("%s %s: expected rejection, got %v", backend, name, err)
			}
		}
	}
}
