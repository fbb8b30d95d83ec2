package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-dotpath/document"
	"github.com/hasbyte1/go-dotpath/dotpath"
	"github.com/hasbyte1/go-dotpath/internal/log"
)

var (
	// ErrInvalidArgument is returned for bad flags and values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPathNotFound is returned when a strict lookup of PATH fails.
	ErrPathNotFound = errors.New("path not found")
)

// NewRootCmd returns the dotpath command with all subcommands attached.
func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().String("log_level", log.LevelFromEnv(), "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", log.FormatFromEnv(), "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringP("delimiter", "d", dotpath.DefaultDelimiter, "Path segment delimiter")
	cmd.PersistentFlags().StringP("format", "f", string(document.FormatAuto), "Document format (auto, json, yaml)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.AddCommand(NewHasCmd())
	cmd.AddCommand(NewGetCmd())
	cmd.AddCommand(NewSetCmd())
	cmd.AddCommand(NewDelCmd())
	cmd.AddCommand(NewEmptyCmd())
	cmd.AddCommand(NewFlattenCmd())
	cmd.AddCommand(NewExpandCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// globalArgs holds the persistent flags shared by every document command.
type globalArgs struct {
	delimiter string
	format    document.Format
}

func getGlobalArgs(cc *cobra.Command) (*globalArgs, error) {
	flags := cc.Flags()

	var merr error

	delimiter, err := flags.GetString("delimiter")
	if err != nil {
		merr = multierror.Append(merr, err)
	} else if delimiter == "" {
		merr = multierror.Append(merr, errors.New("delimiter must not be empty"))
	}

	formatName, err := flags.GetString("format")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	format, err := document.ParseFormat(formatName)
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	return &globalArgs{delimiter: delimiter, format: format}, nil
}

func (g *globalArgs) pathOptions() []dotpath.Option {
	return []dotpath.Option{dotpath.WithDelimiter(g.delimiter)}
}
