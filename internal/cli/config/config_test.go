package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsNil(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil || cfg != nil {
		t.Fatalf("cfg=%v err=%v", cfg, err)
	}
}

func TestSaveLoadResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config")
	gui := false
	cfg := &Config{
		CurrentContext: "lab",
		Contexts: map[string]*Context{
			"lab": {
				Host:        "wb-lab-01",
				Port:        32588,
				Release:     "251",
				ShowGUI:     &gui,
				Username:    "analyst",
				PasswordEnv: "WB_LAB_PASSWORD",
			},
		},
	}
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	ctx, name, err := loaded.Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if name != "lab" || ctx.Host != "wb-lab-01" || ctx.Port != 32588 || ctx.ShowGUI == nil || *ctx.ShowGUI {
		t.Fatalf("resolved %q: %+v", name, ctx)
	}

	t.Setenv("WB_LAB_PASSWORD", "s3cret")
	if ctx.Password() != "s3cret" {
		t.Fatalf("password=%q", ctx.Password())
	}

	if _, _, err := loaded.Resolve("prod"); !errors.Is(err, ErrContextNotFound) {
		t.Fatalf("expected ErrContextNotFound, got %v", err)
	}
}
