package ftpsession

import (
	"regexp"
	"strings"
)

var (
	// characters that force an argument to be quoted; \s alone misses the vertical tab
	specialCharsRE = regexp.MustCompile(`[/()%!^"<>&|\s\v]`)

	// a trailing run of backslashes, optionally followed by one final newline
	trailingBackslashesRE = regexp.MustCompile(`(\\+)(\n?)$`)

	quoteReplacer = strings.NewReplacer(
		`"`, `""`,
		`^`, `"^^"`,
		`%`, `"^%"`,
		`!`, `"^!"`,
		"\n", `!LF!`,
	)
)

// escapeArgument quotes a single raw command argument the way cmd.exe expects, on every platform.
func escapeArgument(arg string) string {
	if arg == "" {
		return `""`
	}
	arg = strings.ReplaceAll(arg, "\x00", "?")
	if !specialCharsRE.MatchString(arg) {
		return arg
	}
	arg = trailingBackslashesRE.ReplaceAllString(arg, "$1$1$2")

	return `"` + quoteReplacer.Replace(arg) + `"`
}

// commandLine joins argv into one escaped raw command line.
func commandLine(argv []string) string {
	escaped := make([]string, len(argv))
	for i := range argv {
		escaped[i] = escapeArgument(argv[i])
	}
	return strings.Join(escaped, " ")
}
