package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gattshim/internal/config"
	"gattshim/internal/monitor"
)

// newRootCmd constructs the gattmon command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gattmon",
		Short:         "Bluetooth GATT profile monitor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Config file (.yaml, .yml, .json or .toml)")
	root.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error (defaults GATTMON_LOG_LEVEL or info)")
	root.PersistentFlags().String("log-format", "", "Log format: console|json")

	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Initialize the GATT profile, record its events and serve them over HTTP",
		Example: "  gattmon run --backend loopback --scan\n  gattmon run --config /etc/gattmon.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	runCmd.Flags().String("addr", "", "HTTP listen address, e.g. :8080")
	runCmd.Flags().String("backend", "", "Native stack backend: native|loopback")
	runCmd.Flags().Int("event-buffer", 0, "Number of recent events kept for /events")
	runCmd.Flags().String("app-uuid", "", "Register a GATT client and scanner under this application UUID")
	runCmd.Flags().Bool("scan", false, "Start LE scanning after initialization")
	runCmd.Flags().String("cors-origins", "", "Comma-separated origins allowed by CORS")
	root.AddCommand(runCmd)

	statusesCmd := &cobra.Command{
		Use:   "statuses",
		Short: "Print the GATT and Bluetooth status code tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return printStatuses(cmd.OutOrStdout(), asJSON)
		},
	}
	statusesCmd.Flags().Bool("json", false, "Print as JSON")
	root.AddCommand(statusesCmd)

	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	root.AddCommand(completionCmd)

	return root
}

// resolveConfig layers config file, GATTMON_* environment and explicitly
// set flags, in that order, then fills defaults and validates.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		c, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("backend") {
		cfg.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("event-buffer") {
		cfg.EventBuffer, _ = flags.GetInt("event-buffer")
	}
	if flags.Changed("app-uuid") {
		cfg.AppUUID, _ = flags.GetString("app-uuid")
	}
	if flags.Changed("scan") {
		cfg.Scan, _ = flags.GetBool("scan")
	}
	if flags.Changed("cors-origins") {
		v, _ := flags.GetString("cors-origins")
		cfg.CORSOrigins = splitCSV(v)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func printStatuses(w io.Writer, asJSON bool) error {
	all := monitor.Statuses()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tCODE\tNAME")
	for _, s := range all {
		code := fmt.Sprintf("%d", s.Code)
		if s.Kind == "gatt" {
			code = fmt.Sprintf("0x%02x", s.Code)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Kind, code, s.Name)
	}
	return tw.Flush()
}

// splitCSV splits a comma-separated flag value, dropping blanks.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
