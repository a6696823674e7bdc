package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/snapshot"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "bank-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "bank")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/bank")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

// runBank runs the binary with stdin fed from input and returns stdout.
func runBank(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Stdin = strings.NewReader(input)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		t.Logf("stderr: %s", stderr.String())
	}
	return string(out), err
}

func initBank(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runBank(t, "", "init", dir, "--name", "Test Bank")
	require.NoError(t, err)
	return dir
}

func TestInit_CreatesFiles(t *testing.T) {
	dir := initBank(t)

	data, err := os.ReadFile(filepath.Join(dir, "bank.yaml"))
	require.NoError(t, err)
	contents := string(data)
	assert.Contains(t, contents, "name: Test Bank")
	assert.Contains(t, contents, "admin_password: admin123")

	records, err := snapshot.Load(filepath.Join(dir, "bank_data.csv"))
	require.NoError(t, err)
	assert.Empty(t, records)

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInit_RefusesExisting(t *testing.T) {
	dir := initBank(t)
	_, err := runBank(t, "", "init", dir)
	require.Error(t, err, "second init should fail")
}

func TestVersion(t *testing.T) {
	out, err := runBank(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:")
}
