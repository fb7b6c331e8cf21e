package ftpsession

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
)

var unquoteReplacer = strings.NewReplacer(
	`"^^"`, `^`,
	`"^%"`, `%`,
	`"^!"`, `!`,
	`!LF!`, "\n",
	`""`, `"`,
)

// unescapeArgument reverses escapeArgument for a quoted argument.
func unescapeArgument(escaped string) string {
	if len(escaped) < 2 || escaped[0] != '"' || escaped[len(escaped)-1] != '"' {
		return escaped
	}
	s := unquoteReplacer.Replace(escaped[1 : len(escaped)-1])

	body, nl := s, ""
	if strings.HasSuffix(body, "\n") {
		body, nl = body[:len(body)-1], "\n"
	}
	trimmed := strings.TrimRight(body, `\`)
	run := len(body) - len(trimmed)
	return trimmed + strings.Repeat(`\`, run/2) + nl
}

func randomArgument(alphabet []string) string {
	var b strings.Builder
	for i := gofakeit.Number(1, 24); i > 0; i-- {
		b.WriteString(alphabet[gofakeit.Number(0, len(alphabet)-1)])
	}
	return b.String()
}

func TestEscapeArgument(t *testing.T) {
	tests := []struct {
		description string
		arg         string
		expected    string
	}{
		{"empty argument", "", `""`},
		{"plain word", "NOOP", "NOOP"},
		{"plain with dots and dashes", "file-1.txt", "file-1.txt"},
		{"nul only", "a\x00b", "a?b"},
		{"slash", "/a/b", `"/a/b"`},
		{"space", "my file", `"my file"`},
		{"tab", "a\tb", "\"a\tb\""},
		{"parens", "f(1)", `"f(1)"`},
		{"double quote", `say "hi"`, `"say ""hi"""`},
		{"caret", "a^b", `"a"^^"b"`},
		{"percent", "100%", `"100"^%""`},
		{"bang", "hey!", `"hey"^!""`},
		{"newline", "a\nb", `"a!LF!b"`},
		{"redirects and pipes", "a<b>c&d|e", `"a<b>c&d|e"`},
		{"trailing backslashes doubled", `dir /x\\`, `"dir /x\\\\"`},
		{"backslash without specials", `a\b\`, `a\b\`},
		{"nul with special", "a b\x00", `"a b?"`},
		{"vertical tab", "a\vb", "\"a\vb\""},
		{"trailing backslashes before final newline", "a b\\\n", `"a b\\!LF!"`},
		{"backslashes before inner newline", "a\\\nb", `"a\!LF!b"`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, escapeArgument(tt.arg), tt.description)
	}
}

func TestEscapeArgumentRoundTrip(t *testing.T) {
	fixed := []string{
		`say "hi"`, "a^b", "100%", "hey!", "a\nb", "a b\\\n", `dir /x\\`, "\"^\"", `""^`,
		"!LF!", "a\vb", `"^!`, "\n\n", "^^%%!!", `x\"`, "/",
	}
	for _, arg := range fixed {
		escaped := escapeArgument(arg)
		assert.True(t, strings.HasPrefix(escaped, `"`), "%q should be quoted", arg)
		assert.Equal(t, arg, unescapeArgument(escaped), "round trip of %q", arg)
	}

	alphabet := []string{
		"a", "Z", "0", ".", "-", "L", "F", `\`, `\`, "/", "(", ")", "%", "!", "^", `"`,
		"<", ">", "&", "|", " ", "\t", "\n", "\v", "\x00",
	}
	for i := 0; i < 500; i++ {
		arg := randomArgument(alphabet)
		want := strings.ReplaceAll(arg, "\x00", "?")
		escaped := escapeArgument(arg)
		if specialCharsRE.MatchString(want) {
			assert.Equal(t, want, unescapeArgument(escaped), "round trip of %q", arg)
		} else {
			assert.Equal(t, want, escaped, "%q has nothing to quote", arg)
		}
	}
}

func TestEscapeArgumentPlain(t *testing.T) {
	for i := 0; i < 100; i++ {
		arg := gofakeit.LetterN(uint(gofakeit.Number(1, 16)))
		assert.Equal(t, arg, escapeArgument(arg))
	}
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "NOOP", commandLine([]string{"NOOP"}))
	assert.Equal(t, `SITE CHMOD 0644 "/pub/my file.txt"`,
		commandLine([]string{"SITE", "CHMOD", "0644", "/pub/my file.txt"}))
	assert.Equal(t, `SITE ""`, commandLine([]string{"SITE", ""}))
}
