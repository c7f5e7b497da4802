package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockdb/pkg/cli/internal/output"
	"github.com/getmockd/mockdb/pkg/config"
	"github.com/getmockd/mockdb/pkg/docstore"
)

// ValidateOutput represents the JSON output of the validate command.
type ValidateOutput struct {
	File      string          `json:"file"`
	Valid     bool            `json:"valid"`
	Errors    []string        `json:"errors,omitempty"`
	Warnings  []string        `json:"warnings,omitempty"`
	Endpoints []EndpointEntry `json:"endpoints"`
	Mounts    []MountEntry    `json:"mounts"`
}

// EndpointEntry describes one static endpoint.
type EndpointEntry struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Status int    `json:"status"`
}

// MountEntry describes one mounted document and whether it parses.
type MountEntry struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// errInvalidConfig is returned when validation finds problems.
var errInvalidConfig = errors.New("configuration is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate <config>",
	Short: "Check a configuration file without starting the server",
	Long: `Load a configuration file and report structural problems.

Problems with mounts, such as a document that is not valid JSON or a path
already used by another mount, are reported as warnings. The server skips
those mounts at startup instead of refusing to run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(w io.Writer, path string) error {
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return err
	}

	out := ValidateOutput{File: path, Valid: true}
	if err := cfg.Validate(); err != nil {
		out.Valid = false
		out.Errors = validationMessages(err)
	}
	for _, w := range cfg.MountWarnings() {
		out.Warnings = append(out.Warnings, w.Error())
	}

	methods := make([]string, 0, len(cfg.Endpoints))
	for method := range cfg.Endpoints {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	for _, method := range methods {
		for _, ep := range cfg.Endpoints[method] {
			out.Endpoints = append(out.Endpoints, EndpointEntry{Method: method, Path: ep.Path, Status: ep.Status})
		}
	}
	for _, m := range cfg.DB {
		entry := MountEntry{Path: m.Path, Valid: true}
		if _, err := docstore.New(m.Path, m.Data); err != nil {
			entry.Valid = false
			entry.Error = err.Error()
		}
		out.Mounts = append(out.Mounts, entry)
	}

	if jsonOutput {
		if err := output.JSON(w, out); err != nil {
			return err
		}
	} else {
		printValidation(w, out)
	}

	if !out.Valid {
		return errInvalidConfig
	}
	return nil
}

func validationMessages(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		msgs := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, e.Error())
		}
		return msgs
	}
	return []string{err.Error()}
}

func printValidation(w io.Writer, out ValidateOutput) {
	if len(out.Endpoints) > 0 {
		tw := output.Table(w)
		fmt.Fprintln(tw, "METHOD\tPATH\tSTATUS")
		for _, ep := range out.Endpoints {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", ep.Method, ep.Path, ep.Status)
		}
		_ = tw.Flush()
		fmt.Fprintln(w)
	}

	for _, m := range out.Mounts {
		if m.Valid {
			fmt.Fprintf(w, "mount %s: ok\n", m.Path)
			continue
		}
		output.Warn(w, "mount %s will be skipped: %s", m.Path, m.Error)
	}
	for _, msg := range out.Warnings {
		output.Warn(w, "%s", msg)
	}

	for _, msg := range out.Errors {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
	if out.Valid {
		fmt.Fprintf(w, "%s is valid (%d endpoints, %d mounts)\n", out.File, len(out.Endpoints), len(out.Mounts))
	} else {
		fmt.Fprintf(w, "%s has %d error(s)\n", out.File, len(out.Errors))
	}
}
