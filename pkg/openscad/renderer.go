// Package openscad renders OpenSCAD sources to STL with the openscad command line tool.
package openscad

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotInstalled is returned when the openscad binary is not in PATH
var ErrNotInstalled = errors.New("openscad not found in PATH, install it from https://openscad.org/")

// Matches: use <file.scad>, include <./lib/file.scad>
var dependencyPattern = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// Render renders scadFile to a temporary STL file. The caller removes the
// returned file when done with it.
func Render(ctx context.Context, scadFile string) (string, error) {
	binary, err := exec.LookPath("openscad")
	if err != nil {
		return "", ErrNotInstalled
	}

	abs, err := filepath.Abs(scadFile)
	if err != nil {
		return "", err
	}

	out, err := os.CreateTemp("", strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))+"-*.stl")
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	out.Close()

	cmd := exec.CommandContext(ctx, binary, "-o", out.Name(), abs)
	cmd.Dir = filepath.Dir(abs)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		os.Remove(out.Name())
		if msg := strings.TrimSpace(output.String()); msg != "" {
			return "", fmt.Errorf("failed to render %s: %w\n%s", scadFile, err, msg)
		}
		return "", fmt.Errorf("failed to render %s: %w", scadFile, err)
	}
	return out.Name(), nil
}

// Dependencies returns scadFile and every file it uses or includes, transitively,
// as absolute paths
func Dependencies(scadFile string) ([]string, error) {
	abs, err := filepath.Abs(scadFile)
	if err != nil {
		return nil, err
	}

	visited := make(map[string]bool)
	var deps []string
	if err := collect(abs, visited, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

func collect(file string, visited map[string]bool, deps *[]string) error {
	// Avoid circular dependencies
	if visited[file] {
		return nil
	}
	visited[file] = true
	*deps = append(*deps, file)

	direct, err := parseDependencies(file)
	if err != nil {
		return err
	}
	for _, dep := range direct {
		if err := collect(dep, visited, deps); err != nil {
			return err
		}
	}
	return nil
}

// parseDependencies lists the use/include statements of a single file
func parseDependencies(file string) ([]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	dir := filepath.Dir(file)
	var deps []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		m := dependencyPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		// Library paths outside the model's directory are resolved by openscad itself
		dep := filepath.Clean(filepath.Join(dir, m[1]))
		if _, err := os.Stat(dep); err == nil {
			deps = append(deps, dep)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return deps, nil
}
