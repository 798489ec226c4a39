package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/reglet-dev/swiprint/format"
)

const printfDescription = "Integer directives take decimal, 0x hex, 0o octal or 0b binary arguments.\n" +
	"%c takes the first character of its argument and %s the argument itself.\n" +
	"Backslash escapes in FORMAT (\\n, \\t, \\\\) are expanded."

func printfCmd() *cli.Command {
	return &cli.Command{
		Name:            "printf",
		Usage:           "Format ARGs under FORMAT with the engine",
		ArgsUsage:       "FORMAT [ARG...]",
		Description:     printfDescription,
		SkipFlagParsing: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 1 {
				return fmt.Errorf("printf: missing FORMAT")
			}
			template := unescape(cmd.Args().First())
			args, err := printfArgs(template, cmd.Args().Tail())
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.Root().Writer)
			e := format.NewWriterEmitter(w)
			format.Printf(e, template, args...)
			if err := e.Err(); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

// printfArgs converts command-line words to the values the template's
// directives expect.
func printfArgs(template string, words []string) ([]any, error) {
	var args []any
	for _, d := range format.Directives(template) {
		if d.Kind.Consumes() == 0 {
			continue
		}
		if len(args) == len(words) {
			break
		}
		w := words[len(args)]
		switch {
		case d.Kind.Integer():
			v, err := parseWord(w)
			if err != nil {
				return nil, fmt.Errorf("printf: argument %d for %%%c: %w", len(args)+1, d.Verb, err)
			}
			args = append(args, v)
		case d.Kind == format.KindChar:
			if w == "" {
				args = append(args, 0)
			} else {
				args = append(args, w[0])
			}
		default:
			args = append(args, w)
		}
	}
	return args, nil
}

// parseWord accepts any signed or unsigned 32-bit value.
func parseWord(s string) (uint32, error) {
	if v, err := strconv.ParseInt(s, 0, 64); err == nil && v >= -1<<31 && v < 1<<32 {
		return uint32(v), nil //nolint:gosec // G115: range checked above
	}
	return 0, fmt.Errorf("%q is not a 32-bit integer", s)
}

func unescape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			out = append(out, s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case '\\':
			out = append(out, '\\')
		default:
			out = append(out, '\\', s[i])
		}
	}
	return string(out)
}
