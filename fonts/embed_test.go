package fonts

import "testing"

func TestLoadBuiltin(t *testing.T) {
	for _, name := range []string{"go-regular", "builtin:go-regular", "built-in:go-bold", "embed:go-bold"} {
		data, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("Load(%q) returned no data", name)
		}
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("builtin:inter"); err == nil {
		t.Fatalf("expected error for unknown font")
	}
}

func TestIsBuiltin(t *testing.T) {
	cases := map[string]bool{
		"builtin:go-bold":  true,
		"embed:go-regular": true,
		"fonts/Inter.ttf":  false,
		"/abs/path/to.ttf": false,
		"built-in:go-bold": true,
	}
	for src, want := range cases {
		if got := IsBuiltin(src); got != want {
			t.Fatalf("IsBuiltin(%q) = %v, want %v", src, got, want)
		}
	}
}
