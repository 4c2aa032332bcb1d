package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/seojinpark/talktemplate/client/internal/model/template"
	"github.com/seojinpark/talktemplate/client/internal/service/authapi"
	chatservice "github.com/seojinpark/talktemplate/client/internal/service/chat"
	"github.com/seojinpark/talktemplate/client/internal/service/prefs"
	"github.com/seojinpark/talktemplate/client/internal/service/session"
	"github.com/seojinpark/talktemplate/client/internal/store"
)

func newApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	st := store.NewMemoryStore()
	sessions := session.NewManager(authapi.New("http://127.0.0.1:0", time.Second), st)
	sessions.Restore()

	out := &bytes.Buffer{}
	app := &App{
		Sessions:  sessions,
		Chat:      chatservice.NewService(0),
		Templates: template.NewMemoryStore(template.Seed()),
		Prefs:     prefs.NewManager(st),
		In:        strings.NewReader(""),
		Out:       out,
	}
	return app, out
}

func TestProtectedCommandsRequireLogin(t *testing.T) {
	app, out := newApp(t)

	for _, name := range []string{"whoami", "chat", "templates", "template", "theme"} {
		out.Reset()
		err := app.Run(context.Background(), []string{name})
		if !errors.Is(err, ErrAuthRequired) {
			t.Fatalf("%s: expected ErrAuthRequired, got %v", name, err)
		}
		if !strings.Contains(out.String(), "로그인이 필요합니다") {
			t.Fatalf("%s: missing login hint in output: %q", name, out.String())
		}
	}
}

func TestOpenCommandsPassTheGate(t *testing.T) {
	app, _ := newApp(t)

	// logout is idempotent and deliberately ungated.
	if err := app.Run(context.Background(), []string{"logout"}); err != nil {
		t.Fatalf("logout err: %v", err)
	}
	if err := app.Run(context.Background(), []string{"help"}); err != nil {
		t.Fatalf("help err: %v", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	app, _ := newApp(t)

	err := app.Run(context.Background(), []string{"fly"})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestLoginFailureIsReportedInline(t *testing.T) {
	app, out := newApp(t)

	err := app.Run(context.Background(), []string{"login", "-email", "a@b.com", "-password", "pw"})
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("expected ErrCommandFailed, got %v", err)
	}
	if !strings.Contains(out.String(), "서버에 연결할 수 없습니다") {
		t.Fatalf("expected connectivity message, got %q", out.String())
	}
}
