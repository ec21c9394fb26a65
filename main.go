package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracer traces with key 'nibsheet.cli'
func tracer() tracing.Trace {
	return tracing.Select("nibsheet.cli")
}

var traceKeys = []string{"nibsheet.cli", "nibsheet.guide", "nibsheet.view"}

func main() {
	if err := setupTracing(); err != nil {
		fmt.Println("error configuring tracing:", err)
		os.Exit(1)
	}
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var traceLevelFlag string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "nibsheet",
	Short: "calligraphy practice sheets with guide, slant and nib-angle lines",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseTraceLevel(traceLevelFlag)
		if err != nil {
			return err
		}
		for _, key := range traceKeys {
			tracing.Select(key).SetTraceLevel(level)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(
		&traceLevelFlag, "trace", "Error", "trace level [Debug|Info|Error]")
}

func setupTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}
