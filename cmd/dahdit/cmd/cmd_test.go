package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds a config file whose history database lives in a temp dir
type testEnv struct {
	dir    string
	config string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "dahdit.toml")
	content := `[general]
log_level = "error"

[diagnostics]
color = "never"

[history]
enabled = false
path = "` + filepath.ToSlash(filepath.Join(dir, "history.db")) + `"
retention = "720h"
`
	if err := os.WriteFile(cfg, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return testEnv{dir: dir, config: cfg}
}

func (e testEnv) writeProgram(t *testing.T, name, source string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with fresh flag values
func execute(t *testing.T, env testEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, verbose = "", false
	runStrict, runHistory, runColor, runSummary = false, false, "", false
	encodeOutput = ""
	replMorse, replMaxHistory = false, 100
	historyFile, historyFailed, historyLimit, historySince = "", false, 20, 0
	historyJSON, historyOlderThan = false, 0
	versionShort = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", env.config}, args...))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

const (
	printFive     = ".--. .-. .. -. - / ..--- .-.-. ...-- ;\n"
	divideByZero  = ".--. .-. .. -. - / .---- -..-. ----- ;\n"
	printSixtyTwo = ".--. .-. .. -. - / -.... ..--- ;\n"
)

func TestRunFile(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeProgram(t, "five.dit", printFive)

	stdout, stderr, err := execute(t, env, "", "run", path)
	if err != nil {
		t.Fatalf("run error = %v (stderr %q)", err, stderr)
	}
	if stdout != "5\n" {
		t.Errorf("stdout = %q, want %q", stdout, "5\n")
	}
}

func TestRunStdin(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := execute(t, env, printSixtyTwo, "run")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if stdout != "62\n" {
		t.Errorf("stdout = %q, want %q", stdout, "62\n")
	}
}

func TestRunDiagnostics(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"lenient", []string{"run"}, false},
		{"strict", []string{"run", "--strict"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			path := env.writeProgram(t, "zero.dit", divideByZero+printFive)

			stdout, stderr, err := execute(t, env, "", append(tt.args, path)...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("run error = %v, wantErr %v", err, tt.wantErr)
			}
			if stdout != "5\n" {
				t.Errorf("statements after the failure should run, stdout = %q", stdout)
			}
			if !strings.Contains(stderr, "zero.dit:1:") || !strings.Contains(stderr, "error: division by zero") {
				t.Errorf("stderr = %q", stderr)
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := execute(t, env, "", "run", filepath.Join(env.dir, "missing.dit"))
	if err == nil {
		t.Fatal("running a missing file should fail")
	}
}

func TestRunRejectsBadColor(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := execute(t, env, printFive, "run", "--color", "sometimes")
	if err == nil || !strings.Contains(err.Error(), "sometimes") {
		t.Errorf("error = %v", err)
	}
}

func TestRunHistory(t *testing.T) {
	env := newTestEnv(t)
	good := env.writeProgram(t, "good.dit", printFive)
	bad := env.writeProgram(t, "bad.dit", divideByZero)

	for _, path := range []string{good, bad} {
		if _, _, err := execute(t, env, "", "run", "--history", path); err != nil {
			t.Fatalf("run %s error = %v", path, err)
		}
	}

	stdout, _, err := execute(t, env, "", "history", "list")
	if err != nil {
		t.Fatalf("history list error = %v", err)
	}
	if !strings.Contains(stdout, "good.dit") || !strings.Contains(stdout, "bad.dit") {
		t.Errorf("history list = %q", stdout)
	}

	stdout, _, err = execute(t, env, "", "history", "list", "--failed")
	if err != nil {
		t.Fatalf("history list --failed error = %v", err)
	}
	if strings.Contains(stdout, "good.dit") || !strings.Contains(stdout, "bad.dit") {
		t.Errorf("history list --failed = %q", stdout)
	}

	// The run ID is the first column of the only data row.
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	runID := strings.Fields(lines[len(lines)-1])[0]

	stdout, _, err = execute(t, env, "", "history", "show", runID)
	if err != nil {
		t.Fatalf("history show error = %v", err)
	}
	if !strings.Contains(stdout, "division by zero") {
		t.Errorf("history show = %q", stdout)
	}

	stdout, _, err = execute(t, env, "", "history", "stats")
	if err != nil {
		t.Fatalf("history stats error = %v", err)
	}
	if !strings.Contains(stdout, "Runs:        2") || !strings.Contains(stdout, "eval") {
		t.Errorf("history stats = %q", stdout)
	}

	stdout, _, err = execute(t, env, "", "history", "prune", "--older-than", "1ns")
	if err != nil {
		t.Fatalf("history prune error = %v", err)
	}
	if !strings.Contains(stdout, "Deleted 2 runs") {
		t.Errorf("history prune = %q", stdout)
	}
}

func TestHistoryShowUnknownRun(t *testing.T) {
	env := newTestEnv(t)
	if _, _, err := execute(t, env, "", "history", "show", "nope"); err == nil {
		t.Error("showing an unknown run should fail")
	}
}

func TestEncode(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := execute(t, env, "PRINT 2 + 3;\n", "encode")
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}
	if stdout != printFive {
		t.Errorf("encode = %q, want %q", stdout, printFive)
	}

	out := filepath.Join(env.dir, "out.dit")
	if _, _, err := execute(t, env, "PRINT 2 + 3;", "encode", "-o", out); err != nil {
		t.Fatalf("encode -o error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil || string(data) != printFive {
		t.Errorf("encoded file = %q, %v", data, err)
	}

	if _, _, err := execute(t, env, "PRINT (1);", "encode"); err == nil {
		t.Error("encoding '(' should fail")
	}
}

func TestEncodedProgramRuns(t *testing.T) {
	env := newTestEnv(t)
	encoded, _, err := execute(t, env, "VAR A = 6 * 7;\nPRINT A;\nPRINT \"done\";\n", "encode")
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}

	stdout, stderr, err := execute(t, env, encoded, "run", "--strict")
	if err != nil {
		t.Fatalf("run error = %v (stderr %q)", err, stderr)
	}
	if stdout != "42\ndone\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestTokens(t *testing.T) {
	env := newTestEnv(t)
	stdout, _, err := execute(t, env, printFive, "tokens")
	if err != nil {
		t.Fatalf("tokens error = %v", err)
	}
	for _, want := range []string{"LETTER(P)", "SEPARATOR", "PLUS", "TERMINATOR", "EOF"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("tokens output missing %s:\n%s", want, stdout)
		}
	}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	stdout, _, err := execute(t, env, "", "version", "--short")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(stdout, "dahdit ") {
		t.Errorf("version = %q", stdout)
	}
}

func TestExamplePrograms(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"hello.dit", "Hello, World!\nHELLO MORSE WORLD\n"},
		{"arithmetic.dit", "22\n12\n85\n3\n2\n14\n10\n-3\n-1\n"},
		{"variables.dit", "20\n25\n"},
		{"errors.dit", "still running\nbad run follows\n1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			env := newTestEnv(t)
			path := filepath.Join("..", "..", "..", "examples", tt.file)

			stdout, _, err := execute(t, env, "", "run", path)
			if err != nil {
				t.Fatalf("run error = %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}
