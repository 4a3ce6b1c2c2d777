package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tu "mogger/internal/testutil"
	"mogger/pkg/mogger"
)

func TestPath_DefaultAndOverride(t *testing.T) {
	tmp := tu.ConfigHome(t)

	p, err := Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if !strings.HasPrefix(p, tmp) || filepath.Base(p) != "config.yaml" {
		t.Fatalf("unexpected default path: %s", p)
	}

	override := filepath.Join(tmp, "elsewhere.yaml")
	defer tu.WithEnv(t, EnvPath, override)()
	p, err = Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if p != override {
		t.Fatalf("expected %s, got %s", override, p)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	tmp := tu.ConfigHome(t)

	s, err := Load(filepath.Join(tmp, "nope.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmp := tu.ConfigHome(t)
	p := filepath.Join(tmp, "mogger", "config.yaml")

	in := Settings{
		Config: mogger.NewBuilder().TimeFormat(mogger.TimeDefault).Build(),
		Format: mogger.FormatPlainText,
	}
	if err := Save(p, in); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if !strings.Contains(string(b), "time: default") || !strings.Contains(string(b), "level: none") {
		t.Fatalf("unexpected yaml:\n%s", b)
	}

	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != in {
		t.Fatalf("round trip mismatch: %+v != %+v", got, in)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmp := tu.ConfigHome(t)
	p := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(p, []byte("level: none\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Config.Level.Enabled() {
		t.Fatalf("level should be off")
	}
	if s.Config.Time != mogger.TimeClockDateMonthYear {
		t.Fatalf("time should keep its default, got %v", s.Config.Time)
	}
}

func TestLoad_UnknownValue(t *testing.T) {
	tmp := tu.ConfigHome(t)
	p := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(p, []byte("time: iso8601\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(p)
	if !errors.Is(err, mogger.ErrUnknownValue) {
		t.Fatalf("expected ErrUnknownValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "config key time") {
		t.Fatalf("error should name the key: %v", err)
	}
}

func TestSchema(t *testing.T) {
	b, err := MarshalSchema(Schema())
	if err != nil {
		t.Fatalf("MarshalSchema error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	if m["title"] != "mogger config" {
		t.Fatalf("unexpected title: %v", m["title"])
	}
	if !strings.Contains(string(b), "clock-date-month-year") {
		t.Fatalf("schema should list time formats:\n%s", b)
	}
}
