//go:build !integration

package bot

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewRequiresToken(t *testing.T) {
	if _, err := New("", "!", nil, zap.NewNop()); err == nil {
		t.Fatalf("expected an error without a token")
	}
}

func TestNewRegistersCommands(t *testing.T) {
	b, err := New("test-token", "!", nil, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cmds := b.commands.GetCommands()
	for _, name := range []string{"ping", "recommend"} {
		if _, ok := cmds[name]; !ok {
			t.Fatalf("command %s not registered", name)
		}
	}
}
