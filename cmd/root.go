package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/deploymenttheory/go-fscheck/internal/common/cryptoutil"
	commonerrors "github.com/deploymenttheory/go-fscheck/internal/common/errors"
	"github.com/deploymenttheory/go-fscheck/internal/common/fsutil"
	"github.com/deploymenttheory/go-fscheck/internal/common/plistutil"
	"github.com/deploymenttheory/go-fscheck/internal/config"
	"github.com/deploymenttheory/go-fscheck/internal/dump"
	"github.com/deploymenttheory/go-fscheck/internal/fsck"
	"github.com/deploymenttheory/go-fscheck/internal/logger"
	"github.com/deploymenttheory/go-fscheck/internal/report"
)

// Process exit statuses.
const (
	ExitClean    = 0
	ExitFailure  = 1
	ExitFindings = 2
)

// app carries the state of one invocation.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	cfgFile  string
	cfg      config.AppConfig
	findings int
}

// Execute runs the command line and returns the process exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		logger.LogError("Command execution failed", err, nil)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, commonerrors.ErrUsage) {
			fmt.Fprintf(stderr, "Correct usage: %s\n", root.UseLine())
		}
		return ExitFailure
	}

	if a.findings > 0 {
		return ExitFindings
	}
	return ExitClean
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "go-fscheck [flags] <dump-file>",
		Short: "Check a filesystem metadata dump for inconsistencies",
		Long: `go-fscheck reads a comma-separated dump of a filesystem's metadata
(superblock, group descriptor, free lists, inodes, directory entries and
indirect block contents) and reports every structural inconsistency it finds:
blocks or inodes claimed twice, allocation state that disagrees with the free
lists, directory entries naming unallocated inodes, broken '.' and '..' links
and wrong link counts.

The dump may be gzip, bzip2 or xz compressed. Findings are written to stdout,
one per line. The exit status is 0 when the dump is consistent, 2 when
inconsistencies were found and 1 when the dump could not be checked.`,
		Args:              validateArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.Context(), args[0])
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is search in standard locations)")
	flags.Bool("debug", config.Instance.Debug, "Enable debug logging")
	flags.BoolP("verbose", "v", config.Instance.Verbose, "Enable informational logging")
	flags.String("log-format", config.Instance.LogFormat, "Log format: json or human")
	flags.String("log-file", config.Instance.LogFile, "Also write logs to this file")

	local := root.Flags()
	local.StringP("format", "f", config.Instance.Report.Format, "Report format: text, json or plist")
	local.String("plist-format", config.Instance.Report.PlistFormat, "Property list flavour for plist reports: xml, binary, openstep or gnustep")
	local.StringP("output", "o", config.Instance.Report.Output, "Write the report to this file instead of stdout")
	local.String("digest", config.Instance.Report.Digest, "Dump digest recorded in json and plist reports: none, sha256 or blake2b")
	local.BoolP("summary", "s", config.Instance.Report.Summary, "Print a count of findings to stderr")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s", commonerrors.ErrUsage, err.Error())
	})

	root.AddCommand(newVersionCmd())
	return root
}

// validateArgs requires exactly one argument naming an existing file.
func validateArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return fmt.Errorf("%w: no dump file given", commonerrors.ErrUsage)
	case len(args) > 1:
		return fmt.Errorf("%w: expected one dump file, got %d arguments", commonerrors.ErrUsage, len(args))
	case !fsutil.FileExists(args[0]):
		return fmt.Errorf("%w: %s: %s", commonerrors.ErrUsage, commonerrors.ErrFileNotFound, args[0])
	}
	return nil
}

// preRun reloads configuration when --config is given, applies explicit
// flags on top of it and starts the logger.
func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") && a.cfgFile != "" {
		if err := config.Initialize(a.cfgFile); err != nil {
			return err
		}
	}

	a.cfg = config.Instance
	applyFlags(cmd.Flags(), &a.cfg)
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", commonerrors.ErrUsage, err)
	}

	if err := logger.InitLogger(logger.LoggerConfig{
		Debug:     a.cfg.Debug,
		Verbose:   a.cfg.Verbose,
		LogFormat: a.cfg.LogFormat,
		LogFile:   a.cfg.LogFile,
	}); err != nil {
		return err
	}

	logger.LogDebug("Configuration resolved", map[string]interface{}{
		"config_file":   config.ConfigFile,
		"report_format": a.cfg.Report.Format,
		"plist_format":  a.cfg.Report.PlistFormat,
		"digest":        a.cfg.Report.Digest,
	})
	return nil
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(flags *pflag.FlagSet, cfg *config.AppConfig) {
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("format") {
		cfg.Report.Format, _ = flags.GetString("format")
	}
	if flags.Changed("plist-format") {
		cfg.Report.PlistFormat, _ = flags.GetString("plist-format")
	}
	if flags.Changed("output") {
		cfg.Report.Output, _ = flags.GetString("output")
	}
	if flags.Changed("digest") {
		cfg.Report.Digest, _ = flags.GetString("digest")
	}
	if flags.Changed("summary") {
		cfg.Report.Summary, _ = flags.GetBool("summary")
	}
}

// runCheck checks the dump at path and writes the report.
func (a *app) runCheck(ctx context.Context, path string) (err error) {
	format, err := report.ParseFormat(a.cfg.Report.Format)
	if err != nil {
		return err
	}
	plistFormat, err := plistutil.ParseFormat(a.cfg.Report.PlistFormat)
	if err != nil {
		return err
	}
	algorithm, err := cryptoutil.ParseAlgorithm(a.cfg.Report.Digest)
	if err != nil {
		return err
	}

	src, err := dump.ReadSource(path)
	if err != nil {
		return err
	}
	logger.LogInfo("Read dump", map[string]interface{}{
		"path":        src.Path,
		"compression": string(src.Compression),
		"bytes":       len(src.Data),
	})

	d, err := src.Parse()
	if err != nil {
		return err
	}

	result, err := fsck.Check(ctx, d)
	if err != nil {
		return err
	}

	var digest string
	if format != report.FormatText {
		digest, err = cryptoutil.Digest(algorithm, src.Data)
		if err != nil {
			return err
		}
	}
	rep := report.New(src, d, result, digest)

	out := a.stdout
	if a.cfg.Report.Output != "" {
		file, ferr := fsutil.CreateOutputFile(a.cfg.Report.Output)
		if ferr != nil {
			return fmt.Errorf("%w: %s", commonerrors.ErrFileWriteError, ferr.Error())
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("%w: %s", commonerrors.ErrFileWriteError, cerr.Error())
			}
		}()
		out = file
	}

	if err := report.Write(out, rep, format, plistFormat); err != nil {
		return err
	}
	if a.cfg.Report.Summary {
		if err := report.WriteSummary(a.stderr, rep.Count); err != nil {
			return err
		}
	}

	a.findings = rep.Count
	logger.LogInfo("Check complete", map[string]interface{}{
		"path":         src.Path,
		"findings":     rep.Count,
		"format":       string(format),
		"plist_format": plistFormat.String(),
	})
	return nil
}
