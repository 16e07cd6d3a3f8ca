package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/ecmacst/ecmascript"
	"github.com/dhamidi/ecmacst/engine"
	"github.com/dhamidi/ecmacst/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var dialect string
	var entry string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an ECMAScript source file and dump its concrete syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if entry != "Program" {
				return fmt.Errorf("unknown entry rule: %s (only Program is supported)", entry)
			}

			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			toks := ecmascript.Tokens(source)
			p := engine.New(toks)
			root, parseErr := ecmascript.Parse(p, dialect)

			switch outputFormat {
			case "json":
				jsonEnc := format.NewJSONEncoder(os.Stdout)
				if parseErr != nil {
					perr, ok := parseErr.(*engine.ParseError)
					if !ok {
						return parseErr
					}
					if err := jsonEnc.EncodeError(perr); err != nil {
						return fmt.Errorf("encode error: %w", err)
					}
					fmt.Println()
					return fmt.Errorf("parse failed")
				}
				if err := jsonEnc.Encode(root); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println()
			case "tree":
				if parseErr != nil {
					return parseErr
				}
				treeEnc := format.NewTreeEncoder(os.Stdout)
				if err := treeEnc.Encode(root); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s (expected json or tree)", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dialect, "dialect", "es2015", "grammar dialect (es5, es2015)")
	cmd.Flags().StringVar(&entry, "entry", "Program", "entry rule to parse from")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, tree)")

	return cmd
}
