package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-dotpath/document"
	"github.com/hasbyte1/go-dotpath/dotpath"
	"github.com/hasbyte1/go-dotpath/transform"
)

const (
	setExample = `  # Set a scalar; the value is parsed as YAML
  dotpath set values.yaml image.tag 1.2.3 -i

  # Create missing parents
  dotpath set values.yaml ingress.tls.enabled true --append_missing -i

  # Store a bcrypt hash instead of the plaintext
  dotpath set config.json auth.admin.password s3cret --transform bcrypt -i
`
	delExample = `  dotpath del values.yaml ingress.annotations -i
  cat values.json | dotpath del - metadata/labels/app -d /
`
)

// NewHasCmd returns the has command.
func NewHasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has FILE PATH",
		Short: "Print whether PATH exists in the document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			g, err := getGlobalArgs(cc)
			if err != nil {
				return err
			}

			data, _, err := readDocument(cc, args[0], g.format)
			if err != nil {
				return err
			}

			found := dotpath.Exists(data, args[1], g.pathOptions()...)
			slog.Debug("checked path", "path", args[1], "found", found)

			_, err = fmt.Fprintln(cc.OutOrStdout(), strconv.FormatBool(found))

			return err
		},
	}
}

// NewGetCmd returns the get command.
func NewGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at PATH",
		Args:  cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			g, err := getGlobalArgs(cc)
			if err != nil {
				return err
			}

			data, format, err := readDocument(cc, args[0], g.format)
			if err != nil {
				return err
			}

			v, ok := dotpath.Get(data, args[1], g.pathOptions()...)
			if !ok {
				return fmt.Errorf("%w: %s", ErrPathNotFound, args[1])
			}

			return printValue(cc.OutOrStdout(), v, format)
		},
	}
}

// NewSetCmd returns the set command.
func NewSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set FILE PATH VALUE",
		Short:   "Write VALUE at PATH",
		Example: setExample,
		Args:    cobra.ExactArgs(3),
		RunE: func(cc *cobra.Command, args []string) error {
			g, err := getGlobalArgs(cc)
			if err != nil {
				return err
			}

			w, err := getWriteArgs(cc)
			if err != nil {
				return err
			}

			flags := cc.Flags()

			appendMissing, err := flags.GetBool("append_missing")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			value, err := resolveValue(cc, args[2])
			if err != nil {
				return err
			}

			data, format, err := readDocument(cc, args[0], g.format)
			if err != nil {
				return err
			}

			opts := append(g.pathOptions(), dotpath.WithAppendMissing(appendMissing))
			dotpath.Set(data, value, args[1], opts...)

			// Get never resolves empty segments, so such paths cannot be checked.
			checkable := !slices.Contains(dotpath.Split(args[1], g.delimiter), "")
			if _, ok := dotpath.Get(data, args[1], opts...); checkable && !ok {
				slog.Warn("path does not resolve after set; parent missing or not a mapping",
					"path", args[1], "append_missing", appendMissing)
			} else {
				slog.Debug("set value", "path", args[1])
			}

			return writeDocument(cc, w, args[0], data, format)
		},
	}

	cmd.Flags().BoolP("append_missing", "a", false, "Create missing intermediate mappings")
	cmd.Flags().BoolP("string", "s", false, "Store VALUE as a string instead of parsing it as YAML")
	cmd.Flags().StringP("transform", "t", "", "Transform VALUE before storing it (plain, base64, bcrypt, argon2id)")
	cmd.MarkFlagsMutuallyExclusive("string", "transform")
	addWriteFlags(cmd)

	return cmd
}

// resolveValue turns the VALUE argument of set into the stored value.
func resolveValue(cc *cobra.Command, raw string) (any, error) {
	flags := cc.Flags()

	asString, err := flags.GetBool("string")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	driver, err := flags.GetString("transform")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	switch {
	case driver != "":
		reg, err := transform.NewDefaultRegistry()
		if err != nil {
			return nil, err
		}

		out, err := reg.Apply(transform.DriverName(driver), raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}

		slog.Debug("transformed value", "driver", driver)

		return out, nil

	case asString:
		return raw, nil

	default:
		v, err := document.ParseValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}

		return v, nil
	}
}

// NewDelCmd returns the del command.
func NewDelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "del FILE PATH",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove the key at PATH",
		Example: delExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			g, err := getGlobalArgs(cc)
			if err != nil {
				return err
			}

			w, err := getWriteArgs(cc)
			if err != nil {
				return err
			}

			data, format, err := readDocument(cc, args[0], g.format)
			if err != nil {
				return err
			}

			if !dotpath.Exists(data, args[1], g.pathOptions()...) {
				slog.Info("nothing to delete", "path", args[1])
			}

			dotpath.Delete(data, args[1], g.pathOptions()...)

			return writeDocument(cc, w, args[0], data, format)
		},
	}

	addWriteFlags(cmd)

	return cmd
}

// NewEmptyCmd returns the empty command.
func NewEmptyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "empty FILE [PATH]",
		Short: "Print whether the document, or the value at PATH, has no keys",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cc *cobra.Command, args []string) error {
			g, err := getGlobalArgs(cc)
			if err != nil {
				return err
			}

			data, _, err := readDocument(cc, args[0], g.format)
			if err != nil {
				return err
			}

			var target any = data

			if len(args) == 2 {
				v, ok := dotpath.Get(data, args[1], g.pathOptions()...)
				if !ok {
					return fmt.Errorf("%w: %s", ErrPathNotFound, args[1])
				}

				target = v
			}

			_, err = fmt.Fprintln(cc.OutOrStdout(), strconv.FormatBool(dotpath.IsEmpty(target)))

			return err
		},
	}
}

// NewFlattenCmd returns the flatten command.
func NewFlattenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flatten FILE",
		Short: "Print the document with nested keys joined by the delimiter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			g, err := getGlobalArgs(cc)
			if err != nil {
				return err
			}

			data, format, err := readDocument(cc, args[0], g.format)
			if err != nil {
				return err
			}

			return document.Encode(cc.OutOrStdout(), dotpath.Flatten(data, g.pathOptions()...), format)
		},
	}
}

// NewExpandCmd returns the expand command.
func NewExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand FILE",
		Short: "Print a flattened document as nested mappings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			g, err := getGlobalArgs(cc)
			if err != nil {
				return err
			}

			data, format, err := readDocument(cc, args[0], g.format)
			if err != nil {
				return err
			}

			return document.Encode(cc.OutOrStdout(), dotpath.Expand(data, g.pathOptions()...), format)
		},
	}
}

// printValue writes scalars verbatim and containers in the document format.
func printValue(w io.Writer, v any, f document.Format) error {
	switch v.(type) {
	case map[string]any, []any:
		return document.EncodeValue(w, v, f)
	case nil:
		_, err := fmt.Fprintln(w, "null")
		return err
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}
