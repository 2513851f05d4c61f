package repository

import "testing"

func TestFormatEmployeeID(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "#B&V01"},
		{2, "#B&V02"},
		{9, "#B&V09"},
		{10, "#B&V10"},
		{11, "#B&V11"},
		{99, "#B&V99"},
		{100, "#B&V100"},
	}
	for _, c := range cases {
		if got := FormatEmployeeID("#B&V", c.n); got != c.want {
			t.Errorf("FormatEmployeeID(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestFormatEmployeeIDCustomPrefix(t *testing.T) {
	if got := FormatEmployeeID("EMP-", 7); got != "EMP-07" {
		t.Errorf("got %q, want EMP-07", got)
	}
}
