package reader

import "testing"

func TestClosed(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"(+ 1 2)", true},
		{"(+ 1 2", false},
		{"(display \"hi", false},
		{"(display \"hi\")", true},
		{"; (unbalanced\n", true},
		{"(a (b (c)))", true},
		{"(a (b (c))", false},
		{`"a\"b"`, true},
	}
	for _, c := range cases {
		if got := Closed(c.src); got != c.want {
			t.Errorf("Closed(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}
