// Package cli implements the passgen command line.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/passgen/passgen/internal/crypto"
)

const lengthError = "Error: Password length must be a number and at least 4."

type options struct {
	noUppercase     bool
	noLowercase     bool
	noNumbers       bool
	symbols         bool
	noDuplicates    bool
	noSequential    bool
	beginWithLetter bool

	upperChars  string
	lowerChars  string
	digitChars  string
	symbolChars string
}

func (o options) settings() crypto.Settings {
	s := crypto.DefaultSettings()
	s.IncludeUpperCase = !o.noUppercase
	s.IncludeLowerCase = !o.noLowercase
	s.IncludeNumbers = !o.noNumbers
	s.IncludeSymbols = o.symbols
	s.CustomUpperCase = o.upperChars
	s.CustomLowerCase = o.lowerChars
	s.CustomDigits = o.digitChars
	s.CustomSymbols = o.symbolChars
	s.BeginWithLetter = o.beginWithLetter
	s.PreventDuplicateCharacters = o.noDuplicates
	s.PreventSequentialCharacters = o.noSequential
	return s
}

// NewCommand builds the root command. All output, including errors, goes to out.
func NewCommand(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "passgen <length> [flags]",
		Short: "Generate a random password",
		Long: `Generate a random password of the given length (at least 4).

Uppercase letters, lowercase letters and digits are included by default.
Ambiguous characters (I, O, i, o, 0, 1) are left out of the built-in sets.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			length, err := strconv.Atoi(args[0])
			if err != nil || length < crypto.MinLength {
				fmt.Fprintln(out, lengthError)
				return nil
			}

			password, err := crypto.Generate(length, opts.settings())
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				return nil
			}

			fmt.Fprintf(out, "Generated Password: %s\n", password)
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.noUppercase, "no-uppercase", false, "Exclude uppercase letters")
	f.BoolVar(&opts.noLowercase, "no-lowercase", false, "Exclude lowercase letters")
	f.BoolVar(&opts.noNumbers, "no-numbers", false, "Exclude numbers")
	f.BoolVar(&opts.symbols, "symbols", false, "Include symbols")
	f.BoolVar(&opts.noDuplicates, "no-duplicates", false, "Prevent duplicate characters")
	f.BoolVar(&opts.noSequential, "no-sequential", false, "Prevent sequential characters such as ab or 98")
	f.BoolVar(&opts.beginWithLetter, "begin-with-letter", false, "Start the password with a letter")
	f.StringVar(&opts.upperChars, "upper-chars", "", "Replace the uppercase character set")
	f.StringVar(&opts.lowerChars, "lower-chars", "", "Replace the lowercase character set")
	f.StringVar(&opts.digitChars, "digit-chars", "", "Replace the digit character set")
	f.StringVar(&opts.symbolChars, "symbol-chars", "", "Replace the symbol character set")
	f.SortFlags = false

	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd
}

// Run executes the command line in args and reports every outcome on out.
// It never exits the process.
func Run(args []string, out io.Writer) {
	if args == nil {
		args = []string{}
	}

	// A negative length would otherwise be parsed as a shorthand flag.
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n < crypto.MinLength {
			fmt.Fprintln(out, lengthError)
			return
		}
	}

	cmd := NewCommand(out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		fmt.Fprintf(out, "Run '%s --help' for usage.\n", cmd.Name())
	}
}
