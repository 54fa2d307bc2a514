package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		code int
		want string
	}{
		{args: []string{"eval", "A∪B"}, want: "A∪B = {1, 2, 4, 5, 6, 7}  P = 0.75\n"},
		{args: []string{"eval", "A'"}, want: "A' = {2, 3, 6, 8}  P = 0.5\n"},
		{args: []string{"eval", "A∪"}, want: "A∪ = ∅  P = 0\n"},
		{args: []string{"eval", "--strict", "A∪"}, code: 1},
		{args: []string{"eval"}, code: 2},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			is := is.New(t)
			code, out, _ := runArgs(t, tt.args...)
			is.Equal(code, tt.code)
			if tt.want != "" {
				is.Equal(out, tt.want)
			}
		})
	}
}

func TestStrictReportsPosition(t *testing.T) {
	is := is.New(t)
	code, out, errOut := runArgs(t, "eval", "--strict", "A∩C", "(A∪B")
	is.Equal(code, 1)
	is.True(strings.HasPrefix(out, "A∩C = {4, 7}")) // valid expressions still print
	is.True(strings.Contains(errOut, "position 0"))
}

func TestRegions(t *testing.T) {
	is := is.New(t)
	code, out, _ := runArgs(t, "regions", "A∩B")
	is.Equal(code, 0)
	is.Equal(out, "5\tA∩B∩C'\n7\tA∩B∩C\n")

	_, out, _ = runArgs(t, "regions", "A∩A'")
	is.Equal(out, "∅\n")
}

func TestDist(t *testing.T) {
	is := is.New(t)
	code, out, _ := runArgs(t, "dist", "binomial", "-p", "n=2", "-p", "p=0.5")
	is.Equal(code, 0)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	is.Equal(len(lines), 4) // header and k = 0, 1, 2
	is.True(strings.HasPrefix(lines[0], "Binomial(n=2, p=0.5)"))
	is.True(strings.HasSuffix(lines[2], "0.500000"))

	code, out, _ = runArgs(t, "dist", "normal", "--cdf", "--from=-1", "--to=1", "--points", "3")
	is.Equal(code, 0)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	is.Equal(len(lines), 4)
	is.True(strings.HasSuffix(lines[2], "0.500000")) // Φ(0)

	code, _, _ = runArgs(t, "dist", "binomial", "-p", "n=2")
	is.Equal(code, 1) // p is required
	code, _, _ = runArgs(t, "dist", "cauchy")
	is.Equal(code, 2)
}

func TestDistRejectsHugeTables(t *testing.T) {
	for _, args := range [][]string{
		{"dist", "binomial", "-p", "n=10", "-p", "p=.5", "--from=-1e300"},
		{"dist", "binomial", "-p", "n=10", "-p", "p=.5", "--to=1e300"},
		{"dist", "poisson", "-p", "lambda=2", "--from=-1e6", "--to=1e6"},
		{"dist", "normal", "--points", "2000000"},
	} {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			is := is.New(t)
			code, out, errOut := runArgs(t, args...)
			is.Equal(code, 1)
			is.Equal(out, "")
			is.True(strings.Contains(errOut, "distributions:"))
		})
	}
}

func TestParseParams(t *testing.T) {
	is := is.New(t)
	got, err := parseParams(map[string]string{"N": " 10", "p": "0.25"})
	is.NoErr(err)
	is.Equal(got, map[string]float64{"n": 10, "p": 0.25})

	_, err = parseParams(map[string]string{"p": "half"})
	is.True(err != nil)
}

func TestSimulate(t *testing.T) {
	is := is.New(t)
	code, out, _ := runArgs(t, "simulate", "--trials", "1000", "--seed", "3", "coins", "--flips", "4")
	is.Equal(code, 0)
	is.True(strings.HasPrefix(out, "1,000 trials of 4 coin flips, seed 3\n"))
	is.True(strings.Contains(out, "max deviation from exact pmf"))

	_, again, _ := runArgs(t, "simulate", "--trials", "1000", "--seed", "3", "--workers", "1", "coins", "--flips", "4")
	is.Equal(again, out) // worker count does not change the result

	code, out, _ = runArgs(t, "simulate", "--trials", "500", "event", "A∩B")
	is.Equal(code, 0)
	is.True(strings.Contains(out, "A∩B = {5, 7} (exact P = 0.25)"))

	code, _, _ = runArgs(t, "simulate", "--trials", "0", "dice")
	is.Equal(code, 1)
}

func TestSimulateLimits(t *testing.T) {
	for _, args := range [][]string{
		{"simulate", "coins", "--flips", "2000000"},
		{"simulate", "dice", "--dice", "2000000"},
		{"simulate", "binomial", "--n", "2000000", "--p", "0.5"},
		{"simulate", "poisson", "--lambda", "1000"},
	} {
		t.Run(strings.Join(args[1:], " "), func(t *testing.T) {
			is := is.New(t)
			code, out, errOut := runArgs(t, args...)
			is.Equal(code, 1)
			is.Equal(out, "")
			is.True(strings.Contains(errOut, "at most") || strings.Contains(errOut, "between"))
		})
	}
}

func TestChapters(t *testing.T) {
	is := is.New(t)
	code, out, _ := runArgs(t, "chapters")
	is.Equal(code, 0)
	is.True(strings.HasPrefix(out, "/chapter1  Introduction to Probabilities\n"))
	is.True(strings.HasSuffix(out, "7 chapters, "+sectionCount(out)+" sections\n"))

	path := filepath.Join(t.TempDir(), "chapters.yaml")
	is.NoErr(os.WriteFile(path, []byte("chapters:\n  - {title: Only, path: /only, sections: [{title: One, url: /only/one}]}\n"), 0o644))
	_, out, _ = runArgs(t, "chapters", "--catalog", path)
	is.Equal(out, "/only  Only\n    /only/one  One\n1 chapters, 1 sections\n")

	code, _, _ = runArgs(t, "chapters", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"))
	is.Equal(code, 1)
}

// sectionCount counts the indented section lines of chapters output.
func sectionCount(out string) string {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "    /") {
			n++
		}
	}
	return strconv.Itoa(n)
}

func TestTour(t *testing.T) {
	is := is.New(t)
	code, out, errOut := runArgs(t, "tour", "--snapshot", "/chapter1", "ArrowRight", "Enter", "End", "ArrowLeft")
	is.Equal(code, 0)
	lines := strings.Split(out, "\n")
	is.True(strings.HasPrefix(lines[0], "start 0 "))
	is.True(strings.HasPrefix(lines[1], "ArrowRight 0 -> 1 "))
	is.True(strings.HasPrefix(lines[2], "End "))
	is.True(strings.Contains(out, "current: "))
	is.True(strings.Contains(errOut, "key has no binding"))

	code, _, _ = runArgs(t, "tour", "/chapter42")
	is.Equal(code, 1)
}

func TestLogLevel(t *testing.T) {
	is := is.New(t)
	code, _, errOut := runArgs(t, "--log-level", "debug", "simulate", "--trials", "10", "dice")
	is.Equal(code, 0)
	is.True(strings.Contains(errOut, "simulation finished"))

	code, _, _ = runArgs(t, "--log-level", "loud", "chapters")
	is.Equal(code, 2)
}
