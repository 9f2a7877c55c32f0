package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/instance"
	"github.com/katalvlaran/lvknap/knapsack"
)

const scenarioText = "4 11\n8 4\n10 5\n15 8\n4 3\n"

// runCLI executes a fresh command tree and returns stdout, stderr and the
// exit code HandleError would produce.
func runCLI(t *testing.T, ctx context.Context, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	code := HandleError(root, err)

	return stdout.String(), stderr.String(), code
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSolve_Scenario(t *testing.T) {
	path := writeFile(t, "four.txt", scenarioText)

	for _, strategy := range []string{"dfs", "best-first", "both"} {
		t.Run(strategy, func(t *testing.T) {
			out, errOut, code := runCLI(t, context.Background(), "solve", "--strategy", strategy, path)
			require.Equal(t, ExitSuccess, code, errOut)
			assert.Equal(t, "19 1\n0 0 1 1\n", out)
		})
	}
}

func TestSolve_NodeLimitReportsNonOptimal(t *testing.T) {
	path := writeFile(t, "four.txt", scenarioText)

	out, errOut, code := runCLI(t, context.Background(), "solve", "--node-limit", "1", path)
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "18 0\n1 1 0 0\n", out)
	assert.Contains(t, errOut, "search stopped early")
}

func TestSolve_MultipleFilesKeepOrder(t *testing.T) {
	a := writeFile(t, "a.txt", scenarioText)
	b := writeFile(t, "b.txt", "1 0\n5 1\n")
	c := writeFile(t, "c.txt", "0 7\n")

	out, errOut, code := runCLI(t, context.Background(), "solve", "--parallel", "2", a, b, c)
	require.Equal(t, ExitSuccess, code, errOut)
	want := "# " + a + "\n19 1\n0 0 1 1\n" +
		"# " + b + "\n0 1\n0\n" +
		"# " + c + "\n0 1\n\n"
	assert.Equal(t, want, out)
}

func TestSolve_JSON(t *testing.T) {
	path := writeFile(t, "four.txt", scenarioText)

	out, errOut, code := runCLI(t, context.Background(), "solve", "-o", "json", "--strategy", "best-first", path)
	require.Equal(t, ExitSuccess, code, errOut)

	var reports []solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	rep := reports[0]
	assert.Equal(t, path, rep.File)
	assert.Equal(t, "best-first", rep.Strategy)
	assert.Equal(t, int64(19), rep.Value)
	assert.Equal(t, int64(11), rep.Weight)
	assert.True(t, rep.Optimal)
	assert.Equal(t, []int{0, 0, 1, 1}, rep.Selection)
	assert.Empty(t, rep.Abort)
	assert.Equal(t, int64(18), rep.Stats.GreedyValue)
	assert.InDelta(t, 21.75, rep.Stats.RootBound, 1e-9)
	assert.Positive(t, rep.Stats.Nodes)
}

func TestSolve_CompressedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "four.yaml.zst")
	inst, err := instance.Parse(strings.NewReader(scenarioText))
	require.NoError(t, err)
	require.NoError(t, instance.Save(path, inst))

	out, errOut, code := runCLI(t, context.Background(), "solve", path)
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "19 1\n0 0 1 1\n", out)
}

func TestSolve_ConfigFileAndFlagOverride(t *testing.T) {
	path := writeFile(t, "four.txt", scenarioText)
	cfg := writeFile(t, "knapsack.yaml", "solver:\n  node_limit: 1\n")

	out, errOut, code := runCLI(t, context.Background(), "--config", cfg, "solve", path)
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "18 0\n1 1 0 0\n", out, "config budget applies")

	out, errOut, code = runCLI(t, context.Background(), "--config", cfg, "solve", "--node-limit", "0", path)
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "19 1\n0 0 1 1\n", out, "explicit flag wins over config")
}

func TestSolve_Cancelled(t *testing.T) {
	path := writeFile(t, "four.txt", scenarioText)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, errOut, code := runCLI(t, ctx, "solve", path)
	assert.Equal(t, ExitCancelled, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Operation cancelled")
}

func TestCLI_Errors(t *testing.T) {
	good := writeFile(t, "four.txt", scenarioText)
	bad := writeFile(t, "bad.txt", "2 10\n1 1\n")
	badCfg := writeFile(t, "bad.yaml", "solver:\n  strategy: dfs\n  max_frontier: 5\n")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "no files", args: []string{"solve"}, code: ExitUsage},
		{name: "unknown flag", args: []string{"solve", "--bogus", good}, code: ExitUsage},
		{name: "unknown strategy", args: []string{"solve", "--strategy", "random", good}, code: ExitUsage},
		{name: "negative limit", args: []string{"solve", "--node-limit", "-1", good}, code: ExitUsage},
		{name: "bad output format", args: []string{"-o", "xml", "solve", good}, code: ExitUsage},
		{name: "invalid config", args: []string{"--config", badCfg, "solve", good}, code: ExitUsage},
		{name: "missing file", args: []string{"solve", filepath.Join(t.TempDir(), "nope.txt")}, code: ExitError},
		{name: "count mismatch", args: []string{"solve", bad}, code: ExitError},
		{name: "heuristic bad alpha", args: []string{"heuristic", "--alpha", "0", good}, code: ExitUsage},
		{name: "generate bad kind", args: []string{"generate", "--kind", "spiky"}, code: ExitUsage},
		{name: "generate bad range", args: []string{"generate", "--range", "0"}, code: ExitUsage},
		{name: "generate bad ratio", args: []string{"generate", "--capacity-ratio", "1.5"}, code: ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, code := runCLI(t, context.Background(), tt.args...)
			assert.Equal(t, tt.code, code, errOut)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "Error:")
		})
	}
}

func TestHeuristic(t *testing.T) {
	path := writeFile(t, "four.txt", scenarioText)
	args := []string{"heuristic", "--iterations", "20", "--seed", "7", "--colonies", "2", path}

	out, errOut, code := runCLI(t, context.Background(), args...)
	require.Equal(t, ExitSuccess, code, errOut)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	head := strings.Fields(lines[0])
	require.Len(t, head, 2)
	assert.Equal(t, "0", head[1], "heuristic results are never marked optimal")
	value, err := strconv.ParseInt(head[0], 10, 64)
	require.NoError(t, err)
	assert.LessOrEqual(t, value, int64(19))
	assert.Len(t, strings.Fields(lines[1]), 4)

	again, _, _ := runCLI(t, context.Background(), args...)
	assert.Equal(t, out, again, "fixed seed is reproducible")
}

func TestHeuristic_JSON(t *testing.T) {
	path := writeFile(t, "four.txt", scenarioText)

	out, errOut, code := runCLI(t, context.Background(), "-o", "json", "heuristic", "--iterations", "15", path)
	require.Equal(t, ExitSuccess, code, errOut)

	var rep heuristicReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 15, rep.Flights)
	assert.Len(t, rep.History, 15)
	assert.Equal(t, rep.Value, rep.History[len(rep.History)-1])
	assert.Len(t, rep.Selection, 4)
}

func TestGenerate_SolveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strong.txt.gz")

	_, errOut, code := runCLI(t, context.Background(),
		"generate", "--kind", "strong", "--n", "14", "--seed", "3", "--range", "50", "--out", path)
	require.Equal(t, ExitSuccess, code, errOut)

	inst, err := instance.Load(path)
	require.NoError(t, err)
	require.Equal(t, 14, inst.Count)
	want, err := knapsack.Solve(context.Background(), inst)
	require.NoError(t, err)
	require.True(t, want.Optimal)

	out, errOut, code := runCLI(t, context.Background(), "solve", "--strategy", "both", path)
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, want.String()+"\n", out)
}

func TestGenerate_StdoutYAML(t *testing.T) {
	out, errOut, code := runCLI(t, context.Background(), "generate", "--n", "6", "--format", "yaml", "--seed", "9")
	require.Equal(t, ExitSuccess, code, errOut)

	inst, err := instance.ParseYAML(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 6, inst.Count)

	again, _, _ := runCLI(t, context.Background(), "generate", "--n", "6", "--format", "yaml", "--seed", "9")
	assert.Equal(t, out, again)
}

func TestVersion(t *testing.T) {
	out, _, code := runCLI(t, context.Background(), "version")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "knapsack dev\n", out)
}

func TestGlobalFlags_Validate(t *testing.T) {
	tests := []struct {
		name    string
		flags   GlobalFlags
		wantErr bool
	}{
		{name: "defaults", flags: GlobalFlags{OutputFormat: "text"}},
		{name: "json output and log", flags: GlobalFlags{OutputFormat: "json", LogFormat: "json"}},
		{name: "bad output", flags: GlobalFlags{OutputFormat: "csv"}, wantErr: true},
		{name: "bad log format", flags: GlobalFlags{OutputFormat: "text", LogFormat: "xml"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flags.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var cliErr *CLIError
			require.ErrorAs(t, err, &cliErr)
			assert.Equal(t, ExitUsage, cliErr.Code)
		})
	}
}
