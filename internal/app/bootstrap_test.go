package app

import "testing"

func TestListenAddr(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"8000", ":8000", false},
		{":8000", ":8000", false},
		{" 8000 ", ":8000", false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, tc := range cases {
		got, err := ListenAddr(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ListenAddr(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ListenAddr(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ListenAddr(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCorsConfig(t *testing.T) {
	wildcard := corsConfig("*")
	if wildcard.AllowCredentials {
		t.Fatalf("credentials must be off for wildcard origin")
	}

	scoped := corsConfig("https://example.com, https://admin.example.com")
	if len(scoped.AllowOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", scoped.AllowOrigins)
	}
	if !scoped.AllowCredentials {
		t.Fatalf("credentials expected for scoped origins")
	}
}
