// Command classify is the thin CLI wrapper around the combinations engine:
// it loads a catalog document, parses component lines, and prints the
// matched template name plus role vector (or "Unclassified").
//
// This wrapper and the component-line parser it drives are the external
// collaborators spec.md §1 scopes out of the core: the core is the catalog
// model and matcher under package combinations.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/meenmo/combinations"
	"github.com/meenmo/combinations/component"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	catalogPath := fs.String("catalog", "", "catalog document path (required)")
	componentsPath := fs.String("input", "", "component lines path (reads stdin if omitted)")
	fs.Usage = func() { usage(stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := strings.TrimSpace(*catalogPath)
	if path == "" {
		usage(stderr)
		return 2
	}

	engine := combinations.New()
	if !engine.Load(path) {
		fmt.Fprintf(stderr, "failed to load catalog %q\n", path)
		return 1
	}

	raw, err := readInput(strings.TrimSpace(*componentsPath), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}

	components, err := component.ParseComponents(strings.NewReader(raw))
	if err != nil {
		fmt.Fprintf(stderr, "parse components: %v\n", err)
		return 1
	}

	name, roles := engine.Classify(components)
	if len(roles) > 0 {
		fmt.Fprintf(stdout, "%s %s\n", name, formatRoles(roles))
	} else {
		fmt.Fprintln(stdout, name)
	}
	return 0
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func formatRoles(roles []int) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, " ")
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: classify -catalog <path> [-input <path>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Classifies newline-separated component lines (read from -input, or stdin")
	fmt.Fprintln(w, "if omitted) against the catalog document at -catalog, printing the matched")
	fmt.Fprintln(w, "template name and 1-based role vector, or \"Unclassified\".")
}
