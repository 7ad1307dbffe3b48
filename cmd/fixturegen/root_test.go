package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fixturegen-go/internal/config"
	"fixturegen-go/internal/driver"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	t.Setenv(config.EnvOutputDir, "")
	t.Setenv(config.EnvSeed, "")
	t.Setenv(config.EnvLogLevel, "")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootGeneratesFixtures(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "raw")

	_, err := run(t, "--out", out, "--start", "2024-01-01", "--end", "2024-01-01",
		"--location", "UTC", "--seed", "7", "--log-level", "error", "--manifest",
		"--metrics-file", filepath.Join(dir, "fixturegen.prom"))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	for _, name := range []string{
		driver.SpotTradesFile, driver.FuturesTradesFile, driver.DepositsFile,
		driver.WithdrawalsFile, driver.StakingFile, driver.ManifestFile,
	} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(out, driver.SpotTradesFile))
	if err != nil {
		t.Fatalf("read spot trades: %v", err)
	}
	var spot []map[string]any
	if err := json.Unmarshal(raw, &spot); err != nil {
		t.Fatalf("decode spot trades: %v", err)
	}
	if len(spot) < 1 || len(spot) > 5 {
		t.Fatalf("single day should give 1..5 spot trades, got %d", len(spot))
	}
	wantTime := float64(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli())
	for _, tr := range spot {
		if tr["time"] != wantTime {
			t.Fatalf("time %v, want %v", tr["time"], wantTime)
		}
	}

	prom, err := os.ReadFile(filepath.Join(dir, "fixturegen.prom"))
	if err != nil {
		t.Fatalf("metrics textfile missing: %v", err)
	}
	if !strings.Contains(string(prom), "fixture_records_generated_total") {
		t.Fatalf("records metric not exported:\n%s", prom)
	}
}

func TestRootUsesConfigFileAndClock(t *testing.T) {
	dir := isolate(t)
	orig := now
	now = func() time.Time { return time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })

	cfg := config.Default()
	cfg.Output.Dir = filepath.Join(dir, "from-config")
	cfg.Output.Format = config.FormatJSONL
	cfg.Window.Start = "2024-01-01"
	cfg.Window.Location = "UTC"
	cfg.Seed = 11
	cfg.App.LogLevel = "error"
	if err := config.Save(defaultConfigPath, cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if _, err := run(t); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "from-config", "spot_trades.jsonl"))
	if err != nil {
		t.Fatalf("expected jsonl output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) < 3 || len(lines) > 15 {
		t.Fatalf("three days should give 3..15 spot lines, got %d", len(lines))
	}
}

func TestRootFlagsOverrideEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv(config.EnvOutputDir, filepath.Join(dir, "env"))

	flagDir := filepath.Join(dir, "flag")
	if _, err := run(t, "--out", flagDir, "--start", "2024-01-01", "--end", "2024-01-01", "--log-level", "error"); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(flagDir, driver.StakingFile)); err != nil {
		t.Fatalf("flag dir not used: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "env")); !os.IsNotExist(err) {
		t.Fatalf("env dir should not have been created")
	}
}

func TestRootExplicitMissingConfig(t *testing.T) {
	isolate(t)
	if _, err := run(t, "--config", "nope.yaml"); err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	isolate(t)
	if _, err := run(t, "--format", "csv"); err == nil || !strings.Contains(err.Error(), "output.format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestRootFailsWhenOutputIsAFile(t *testing.T) {
	dir := isolate(t)
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := run(t, "--out", blocker, "--start", "2024-01-01", "--end", "2024-01-01", "--log-level", "disabled"); err == nil {
		t.Fatalf("expected output dir error")
	}
}

func TestConfigInit(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "fixturegen.yaml")

	out, err := run(t, "config", "init", path)
	if err != nil {
		t.Fatalf("config init error: %v", err)
	}
	if !strings.Contains(out, "wrote") {
		t.Fatalf("unexpected output %q", out)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if *cfg != *config.Default() {
		t.Fatalf("written config differs from defaults: %+v", cfg)
	}

	if _, err := run(t, "config", "init", path); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if _, err := run(t, "config", "init", "--force", path); err != nil {
		t.Fatalf("--force should overwrite: %v", err)
	}
}

func TestRootDryRunWritesNothing(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "raw")

	logs, err := run(t, "--dry-run", "--out", out, "--start", "2024-01-01", "--end", "2024-01-02", "--location", "UTC", "--seed", "3")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create the output dir")
	}
	for _, name := range []string{driver.SpotTradesFile, driver.StakingFile} {
		if !strings.Contains(logs, name) {
			t.Fatalf("dry run log missing %s:\n%s", name, logs)
		}
	}
	if !strings.Contains(logs, "dry run, not written") {
		t.Fatalf("expected dry run report:\n%s", logs)
	}
}

func TestRootLogsOutputPath(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "raw")

	logs, err := run(t, "--out", out, "--start", "2024-01-01", "--end", "2024-01-01")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !strings.Contains(logs, `"path":"`+out+`"`) {
		t.Fatalf("start line should carry the sink path:\n%s", logs)
	}
}

func TestRootLogsConfigErrors(t *testing.T) {
	isolate(t)
	logs, err := run(t, "--format", "csv")
	if err == nil {
		t.Fatalf("expected format error")
	}
	if !strings.Contains(logs, `"level":"error"`) || !strings.Contains(logs, "resolve config") {
		t.Fatalf("config error should be logged through the logger:\n%s", logs)
	}
}
