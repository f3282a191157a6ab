package shared

import (
	"strings"
	"testing"
)

func TestBrowserCommand(t *testing.T) {
	orig := getRuntime
	t.Cleanup(func() { getRuntime = orig })

	tc := []struct {
		goos    string
		want    string
		wantErr bool
	}{
		{goos: "darwin", want: "open"},
		{goos: "linux", want: "xdg-open"},
		{goos: "windows", want: "cmd"},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.goos, func(t *testing.T) {
			getRuntime = func() string { return tt.goos }

			cmd, err := browserCommand("http://localhost:5000")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unsupported platform")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasSuffix(cmd.Path, tt.want) && cmd.Args[0] != tt.want {
				t.Errorf("expected %s, got %v", tt.want, cmd.Args)
			}
			if cmd.Args[len(cmd.Args)-1] != "http://localhost:5000" {
				t.Errorf("expected url as last arg, got %v", cmd.Args)
			}
		})
	}
}
