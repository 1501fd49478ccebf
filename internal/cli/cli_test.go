package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCLI(t *testing.T) {
	cmd := BuildCLI()

	assert.NotNil(t, cmd, "BuildCLI should return a non-nil command")
	assert.Equal(t, "coordinator", cmd.Use, "Root command should be 'coordinator'")
	assert.Equal(t, "1.0.0", cmd.Version, "Version should be 1.0.0")

	commands := cmd.Commands()
	assert.Len(t, commands, 2, "Should have 2 subcommands")

	commandNames := make(map[string]bool)
	for _, c := range commands {
		commandNames[c.Name()] = true
	}

	assert.True(t, commandNames["serve"], "Should have 'serve' command")
	assert.True(t, commandNames["status"], "Should have 'status' command")

	configFlag := cmd.PersistentFlags().Lookup("config")
	assert.NotNil(t, configFlag, "Should have --config flag")
	assert.Equal(t, "configs/default.yaml", configFlag.DefValue, "Default config path should be configs/default.yaml")
}

func TestBuildServeCommand(t *testing.T) {
	cmd := buildServeCommand()

	assert.NotNil(t, cmd, "buildServeCommand should return a non-nil command")
	assert.Equal(t, "serve", cmd.Use, "Command should be 'serve'")
	assert.Contains(t, cmd.Short, "Start", "Short description should mention 'Start'")
	assert.NotNil(t, cmd.RunE, "RunE function should be set")

	addressFlag := cmd.Flags().Lookup("address")
	require.NotNil(t, addressFlag, "Should have --address flag")
	assert.Equal(t, "a", addressFlag.Shorthand, "Should have -a shorthand")
	assert.Equal(t, "localhost", addressFlag.DefValue, "Default address should be localhost")

	portFlag := cmd.Flags().Lookup("port")
	require.NotNil(t, portFlag, "Should have --port flag")
	assert.Equal(t, "p", portFlag.Shorthand, "Should have -p shorthand")
	assert.Equal(t, "50051", portFlag.DefValue, "Default port should be 50051")

	defectiveFlag := cmd.Flags().Lookup("defective")
	require.NotNil(t, defectiveFlag, "Should have --defective flag")
	assert.Equal(t, "d", defectiveFlag.Shorthand, "Should have -d shorthand")
	assert.Equal(t, "false", defectiveFlag.DefValue, "Defective should default to off")
}

func TestBuildStatusCommand(t *testing.T) {
	cmd := buildStatusCommand()

	assert.NotNil(t, cmd, "buildStatusCommand should return a non-nil command")
	assert.Equal(t, "status", cmd.Use, "Command should be 'status'")
	assert.Contains(t, cmd.Short, "status", "Short description should mention 'status'")
	assert.NotNil(t, cmd.RunE, "RunE function should be set")
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	configContent := `
worker:
  command: ["./worker", "--session-id={{id}}", "--checkin-address={{checkin}}"]
  checkin_wait: 5s
  checkin_address: "localhost:50051"

metrics:
  enabled: true
  port: 8080
`

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err, "failed to write test config file")

	cfg, err := loadConfig(configPath)
	require.NoError(t, err, "loadConfig should not return an error")
	require.NotNil(t, cfg, "Config should not be nil")

	assert.Equal(t, []string{"./worker", "--session-id={{id}}", "--checkin-address={{checkin}}"}, cfg.Worker.Command)
	assert.Equal(t, 5*time.Second, cfg.Worker.CheckinWait, "Checkin wait should be 5s")
	assert.Equal(t, "localhost:50051", cfg.Worker.CheckinAddress)

	assert.True(t, cfg.Metrics.Enabled, "Metrics should be enabled")
	assert.Equal(t, 8080, cfg.Metrics.Port, "Metrics port should be 8080")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := loadConfig("/nonexistent/config.yaml")

	assert.Error(t, err, "loadConfig should return an error for nonexistent file")
	assert.Nil(t, cfg, "Config should be nil on error")
	assert.Contains(t, err.Error(), "read config file", "Error should mention file reading failure")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
worker:
  command: "not a list"
  invalid yaml structure
    broken indentation
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err, "failed to write invalid YAML file")

	cfg, err := loadConfig(configPath)

	assert.Error(t, err, "loadConfig should return an error for invalid YAML")
	assert.Nil(t, cfg, "Config should be nil on parse error")
	assert.Contains(t, err.Error(), "parse config YAML", "Error should mention YAML parsing failure")
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "empty.yaml")

	err := os.WriteFile(configPath, []byte(""), 0644)
	require.NoError(t, err, "failed to write empty file")

	cfg, err := loadConfig(configPath)
	assert.NoError(t, err, "Empty YAML file should parse without error")
	assert.NotNil(t, cfg, "Config should not be nil for empty file")
	assert.Empty(t, cfg.Worker.Command, "Empty config should have zero values")
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	partialConfig := `
worker:
  checkin_wait: 10s
`

	err := os.WriteFile(configPath, []byte(partialConfig), 0644)
	require.NoError(t, err, "failed to write partial config")

	cfg, err := loadConfig(configPath)
	require.NoError(t, err, "Partial config should parse successfully")
	assert.Equal(t, 10*time.Second, cfg.Worker.CheckinWait)
	assert.Empty(t, cfg.Worker.Command, "Unset fields should have zero values")
	assert.False(t, cfg.Metrics.Enabled)
}

func TestConfigStructure(t *testing.T) {
	cfg := Config{}

	cfg.Worker.Command = []string{"./worker"}
	cfg.Worker.CheckinWait = 5 * time.Second
	cfg.Worker.CheckinAddress = "localhost:50051"
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = 9090

	assert.Equal(t, []string{"./worker"}, cfg.Worker.Command)
	assert.Equal(t, 5*time.Second, cfg.Worker.CheckinWait)
	assert.Equal(t, "localhost:50051", cfg.Worker.CheckinAddress)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)
}
