package tui

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", cfg.IdleTimeout)
	}
	if err := cfg.Game.Validate(); err != nil {
		t.Errorf("default game config is invalid: %v", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	srv, err := NewSSHServer(cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store == nil {
		t.Error("server should have opened the scores database")
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}

func TestSSHServerConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2200", "ssh localhost -p 2200"},
		{"game.example.com:22", "ssh game.example.com -p 22"},
		{"badaddr", "ssh badaddr"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			srv := &SSHServer{config: SSHServerConfig{Address: tt.addr}}
			if got := srv.ConnectHint(); got != tt.want {
				t.Errorf("ConnectHint() = %q, expected %q", got, tt.want)
			}
		})
	}
}
