// Package main generates the API reference of finestra under docs/api
// from Go source code using gomarkdoc.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Package represents a Go package to document.
type Package struct {
	Name    string
	Path    string
	Title   string
	Summary string
}

// Packages to document (public-facing), in reading order.
var packages = []Package{
	{Name: "core", Path: "pkg/core", Title: "Core", Summary: "State cells, view identities, handler registry and event dispatch"},
	{Name: "widgets", Path: "pkg/widgets", Title: "Widgets", Summary: "Declarative views and how they build native controls"},
	{Name: "app", Path: "pkg/app", Title: "App", Summary: "Application delegate and main window lifecycle"},
	{Name: "resources", Path: "pkg/resources", Title: "Resources", Summary: "Colors, themes, menus, timers, cursors and images"},
	{Name: "backend", Path: "pkg/backend", Title: "Backend", Summary: "Toolkit and host interfaces implemented per platform"},
	{Name: "headless", Path: "pkg/backend/headless", Title: "Headless backend", Summary: "In-memory backend for tests and scripted demos"},
	{Name: "win32", Path: "pkg/backend/win32", Title: "Win32 translation", Summary: "WM_COMMAND decoding and 16-bit control identifiers"},
	{Name: "appkit", Path: "pkg/backend/appkit", Title: "AppKit shims", Summary: "Target and delegate objects for Cocoa controls"},
	{Name: "platform", Path: "pkg/platform", Title: "Platform bridge", Summary: "Event codecs and UI-thread dispatch for native shims"},
	{Name: "config", Path: "pkg/config", Title: "Configuration", Summary: "finestra.yaml resolution"},
	{Name: "errors", Path: "pkg/errors", Title: "Errors", Summary: "Structured errors and the global error handler"},
}

func main() {
	// Find repository root (where go.mod is)
	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Repository root: %s\n", root)

	if _, err := exec.LookPath("gomarkdoc"); err != nil {
		fmt.Fprintln(os.Stderr, "gomarkdoc not found; install it with:")
		fmt.Fprintln(os.Stderr, "  go install github.com/princjef/gomarkdoc/cmd/gomarkdoc@latest")
		os.Exit(1)
	}

	apiDir := filepath.Join(root, "docs", "api")
	if err := os.MkdirAll(apiDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating api directory: %v\n", err)
		os.Exit(1)
	}

	var written []Package
	for _, pkg := range packages {
		if _, err := os.Stat(filepath.Join(root, pkg.Path)); os.IsNotExist(err) {
			fmt.Printf("Skipping %s (not found)\n", pkg.Name)
			continue
		}

		fmt.Printf("Generating docs for %s...\n", pkg.Name)
		content, err := runGomarkdoc(root, pkg)
		if err != nil {
			fmt.Printf("  Warning: skipping %s (%v)\n", pkg.Name, err)
			continue
		}
		page := "# " + pkg.Title + "\n\n" + processMarkdown(content)
		if err := os.WriteFile(filepath.Join(apiDir, pkg.Name+".md"), []byte(page), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing docs for %s: %v\n", pkg.Name, err)
			os.Exit(1)
		}
		written = append(written, pkg)
	}

	if err := os.WriteFile(filepath.Join(apiDir, "README.md"), []byte(renderIndex(written)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing index: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nDocumentation for %d package(s) written to %s\n", len(written), apiDir)
}

func findRepoRoot() (string, error) {
	// Start from current directory
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// Walk up looking for go.mod
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

func runGomarkdoc(root string, pkg Package) (string, error) {
	// The darwin and windows tags pull in the backend shims of both
	// desktop platforms.
	cmd := exec.Command("gomarkdoc", "--tags", "darwin,windows", "./"+pkg.Path)
	cmd.Dir = root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("gomarkdoc: %v: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return "", fmt.Errorf("no documentation generated")
	}
	return stdout.String(), nil
}

// renderIndex lists the generated pages in reading order.
func renderIndex(pkgs []Package) string {
	var b strings.Builder
	b.WriteString("# API Reference\n\n")
	b.WriteString("Generated from Go source code by `go run ./cmd/docgen`.\n\n")
	for _, pkg := range pkgs {
		fmt.Fprintf(&b, "- [%s](%s.md): %s\n", pkg.Title, pkg.Name, pkg.Summary)
	}
	return b.String()
}

// processMarkdown strips the parts of gomarkdoc output that the page
// header replaces: the package heading, the import block and the index.
func processMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	skipNext := false
	inIndex := false

	for i, line := range lines {
		// Skip the first header line since we add our own title
		if i == 0 && strings.HasPrefix(line, "# ") {
			continue
		}

		// Skip the Index section (starts with "## Index", ends at next ## heading)
		if line == "## Index" {
			inIndex = true
			continue
		}
		if inIndex {
			if !strings.HasPrefix(line, "## ") {
				continue
			}
			inIndex = false
		}

		// Skip "import" lines that show the import path
		if strings.HasPrefix(line, "```go") && i+1 < len(lines) && strings.Contains(lines[i+1], "import") {
			skipNext = true
		}
		if skipNext && line == "```" {
			skipNext = false
			continue
		}
		if skipNext {
			continue
		}

		// Convert <details><summary>Example</summary> to **Example:**
		if strings.HasPrefix(line, "<details><summary>") && strings.HasSuffix(line, "</summary>") {
			summary := line[len("<details><summary>") : len(line)-len("</summary>")]
			result = append(result, "", fmt.Sprintf("**%s:**", summary), "")
			continue
		}

		// Skip </details>, <p>, and </p> tags from gomarkdoc
		if line == "</details>" || line == "<p>" || line == "</p>" {
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}
