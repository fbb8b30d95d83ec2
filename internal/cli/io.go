package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-dotpath/document"
)

// stdio is the file argument that selects stdin or stdout.
const stdio = "-"

func readDocument(cc *cobra.Command, file string, f document.Format) (map[string]any, document.Format, error) {
	format := document.Resolve(f, file)

	slog.Debug("reading document", "file", file, "format", format)

	if file == stdio {
		data, err := document.Decode(cc.InOrStdin(), format)
		if err != nil {
			return nil, "", fmt.Errorf("stdin: %w", err)
		}

		return data, format, nil
	}

	data, err := document.ReadFile(file, format)
	if err != nil {
		return nil, "", err
	}

	return data, format, nil
}

// writeArgs selects the destination of a modified document.
type writeArgs struct {
	output  string
	inPlace bool
}

func addWriteFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().BoolP("in_place", "i", false, "Write the result back to the input file")
	cmd.MarkFlagsMutuallyExclusive("output", "in_place")
}

func getWriteArgs(cc *cobra.Command) (*writeArgs, error) {
	output, err := cc.Flags().GetString("output")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	inPlace, err := cc.Flags().GetBool("in_place")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return &writeArgs{output: output, inPlace: inPlace}, nil
}

func writeDocument(cc *cobra.Command, w *writeArgs, file string, data map[string]any, f document.Format) error {
	switch {
	case w.inPlace:
		if file == stdio {
			return fmt.Errorf("%w: --in_place cannot be used with stdin", ErrInvalidArgument)
		}

		slog.Debug("writing document", "file", file, "format", f)

		return document.WriteFile(file, data, f)

	case w.output == "" || w.output == stdio:
		return document.Encode(cc.OutOrStdout(), data, f)

	default:
		format := document.DetectFormat(w.output)

		slog.Debug("writing document", "file", w.output, "format", format)

		return document.WriteFile(w.output, data, format)
	}
}
