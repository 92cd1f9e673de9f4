package main

import (
	"strconv"
	"testing"
	"time"

	"github.com/vovakirdan/panda-pop/internal/platform/tui"
)

func TestServeFlagsUseServerDefaults(t *testing.T) {
	defaults := tui.DefaultSSHServerConfig()

	tests := []struct {
		flag string
		want string
	}{
		{"ssh", defaults.Address},
		{"idle-timeout", strconv.Itoa(int(defaults.IdleTimeout / time.Minute))},
	}

	for _, tc := range tests {
		t.Run(tc.flag, func(t *testing.T) {
			f := serveCmd.Flags().Lookup(tc.flag)
			if f == nil {
				t.Fatalf("flag --%s not defined", tc.flag)
			}
			if f.DefValue != tc.want {
				t.Errorf("--%s default = %q, expected %q", tc.flag, f.DefValue, tc.want)
			}
		})
	}
}
