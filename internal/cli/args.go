package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// normalizeArgs moves positional values behind a "--" terminator so that
// negative voltages such as "-0.5" are not read as shorthand flags. Flags and
// their values keep their relative order; positionals keep theirs.
func normalizeArgs(flags *pflag.FlagSet, args []string) []string {
	var flagArgs, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case arg == "-" || !strings.HasPrefix(arg, "-") || isNumber(arg):
			positional = append(positional, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if takesValue(flags, arg) && i+1 < len(args) {
				flagArgs = append(flagArgs, args[i+1])
				i++
			}
		}
	}
	if len(positional) == 0 {
		return flagArgs
	}
	out := make([]string, 0, len(flagArgs)+1+len(positional))
	out = append(out, flagArgs...)
	out = append(out, "--")
	return append(out, positional...)
}

func isNumber(arg string) bool {
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// takesValue reports whether arg names a flag that consumes the next token.
// Shorthand clusters such as "-vf" consume it when their last letter does;
// a value-taking letter before the end has its value attached ("-fjson").
func takesValue(flags *pflag.FlagSet, arg string) bool {
	if flags == nil || strings.Contains(arg, "=") {
		return false
	}
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		return needsValue(flags.Lookup(name))
	}
	short := strings.TrimPrefix(arg, "-")
	for i := 0; i < len(short); i++ {
		flag := flags.ShorthandLookup(short[i : i+1])
		if flag == nil {
			return false
		}
		if needsValue(flag) {
			return i == len(short)-1
		}
	}
	return false
}

func needsValue(flag *pflag.Flag) bool {
	return flag != nil && flag.NoOptDefVal == ""
}
