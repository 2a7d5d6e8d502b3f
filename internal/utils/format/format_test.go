package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "<script>alert(1)</script>", want: "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{in: `a & "b"`, want: "a &amp; &quot;b&quot;"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeHTML(tt.in))
	}
}

func TestDateTime(t *testing.T) {
	at := time.Date(2026, 10, 17, 0, 5, 3, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, "2026/10/17 00:05:03", DateTime(at, time.UTC))
	assert.Equal(t, "2026/10/17 09:05:03", DateTime(at, tokyo))
}

