package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentStreamText(t *testing.T) {
	t.Run("Tj operator", func(t *testing.T) {
		data := []byte("BT\n(Hello World) Tj\nET")
		assert.Equal(t, "Hello World", contentStreamText(data))
	})

	t.Run("TJ array operator", func(t *testing.T) {
		data := []byte("[(Serv) -20 (ice Agreement)] TJ")
		assert.Equal(t, "Service Agreement", contentStreamText(data))
	})

	t.Run("positioning operators break words", func(t *testing.T) {
		data := []byte("(first) Tj\n0 -12 Td\n(second) Tj")
		assert.Equal(t, "first second", contentStreamText(data))
	})

	t.Run("no text operators", func(t *testing.T) {
		data := []byte("q\n1 0 0 1 50 700 cm\nQ")
		assert.Equal(t, "", contentStreamText(data))
	})
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"escaped parens", `\(quoted\)`, "(quoted)"},
		{"newline escape", `line\nbreak`, "line\nbreak"},
		{"octal space", `a\040b`, "a b"},
		{"backslash", `a\\b`, `a\b`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodePDFString([]byte(tt.in)))
		})
	}
}

func TestCleanExtractedText(t *testing.T) {
	assert.Equal(t, "a b", cleanExtractedText("  a \t  b  "))
	assert.Equal(t, "a\nb", cleanExtractedText("a\nb"))
}

func TestSignificantChars(t *testing.T) {
	assert.Equal(t, 0, significantChars("  \n\t "))
	assert.Equal(t, 10, significantChars("helloой wor"))
	assert.Equal(t, 5, significantChars("a b c d e"))
}
