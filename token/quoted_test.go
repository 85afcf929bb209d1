package token

import "testing"

func TestQuoteUnquote(t *testing.T) {
	tests := []string{
		"",
		"plain",
		"quote \" and backslash \\",
		"ctl \b\f\n\r\t\x01\x1f",
		"unicode é 日本 😀",
	}
	for _, s := range tests {
		q := Quote(s)
		u, err := Unquote(q)
		if err != nil {
			t.Errorf("Unquote(%s): %v", q, err)
			continue
		}
		if u != s {
			t.Errorf("round trip %q -> %s -> %q", s, q, u)
		}
	}
}

func TestQuotedToString(t *testing.T) {
	tests := map[string]string{
		`"\u0041\/"`:      "A/",
		`"\ud83d\ude00"`:  "😀",
		`"\ud83d x"`:      "\ufffd x",
		`"tab\tnl\n"`:     "tab\tnl\n",
		`"\\\"\\"`:        `\"\`,
		`"\u00e9t\u00E9"`: "été",
	}
	for in, want := range tests {
		if got := QuotedToString([]byte(in)); got != want {
			t.Errorf("%s: got %q want %q", in, got, want)
		}
	}
}

func TestQuoteEscapesControl(t *testing.T) {
	if got := Quote("\x01"); got != `"\u0001"` {
		t.Errorf("got %s", got)
	}
}
