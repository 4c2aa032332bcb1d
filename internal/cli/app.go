// Package cli maps the product's navigation surface onto subcommands.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/seojinpark/talktemplate/client/internal/model/template"
	chatservice "github.com/seojinpark/talktemplate/client/internal/service/chat"
	"github.com/seojinpark/talktemplate/client/internal/service/prefs"
	"github.com/seojinpark/talktemplate/client/internal/service/session"
)

var (
	// ErrAuthRequired is returned when a protected command runs without
	// an authenticated session.
	ErrAuthRequired = errors.New("authentication required")
	// ErrUnknownCommand is returned for commands outside the surface.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrCommandFailed is returned after a failure already reported to
	// the user.
	ErrCommandFailed = errors.New("command failed")
)

// protected lists commands gated behind authentication, mirroring the web
// app's route protection: everything except home, login, register and the
// not-found fallback.
var protected = map[string]bool{
	"whoami":    true,
	"chat":      true,
	"templates": true,
	"template":  true,
	"theme":     true,
}

// App bundles the client services behind the command surface.
type App struct {
	Sessions  *session.Manager
	Chat      *chatservice.Service
	Templates template.Store
	Prefs     *prefs.Manager
	In        io.Reader
	Out       io.Writer
}

// Run dispatches a single command. The session manager must have
// completed Restore before the first call, so the gate never decides on
// a still-restoring state.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	name, rest := args[0], args[1:]

	if protected[name] && a.Sessions.State() != session.StateAuthenticated {
		fmt.Fprintln(a.Out, "로그인이 필요합니다. talktemplate login 을 먼저 실행해주세요.")
		return ErrAuthRequired
	}

	switch name {
	case "login":
		return a.runLogin(ctx, rest)
	case "register":
		return a.runRegister(ctx, rest)
	case "logout":
		a.Sessions.Logout()
		fmt.Fprintln(a.Out, "로그아웃되었습니다.")
		return nil
	case "whoami":
		return a.runWhoami()
	case "chat":
		return a.runChat(ctx, rest)
	case "templates":
		return a.runTemplates(rest)
	case "template":
		return a.runTemplateDetail(rest)
	case "theme":
		return a.runTheme(rest)
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
}

func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result := a.Sessions.Login(ctx, *email, *password)
	if !result.Success {
		fmt.Fprintln(a.Out, result.Error)
		return ErrCommandFailed
	}

	user, _ := a.Sessions.Current()
	fmt.Fprintf(a.Out, "%s님, 환영합니다!\n", user.Name)
	return nil
}

func (a *App) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if result := a.Sessions.RequestOTP(ctx, *email); !result.Success {
		fmt.Fprintln(a.Out, result.Error)
		return ErrCommandFailed
	}
	fmt.Fprintln(a.Out, "인증번호를 이메일로 발송했습니다.")

	code, err := a.prompt("인증번호 입력: ")
	if err != nil {
		return err
	}

	result := a.Sessions.Register(ctx, *email, *password, *name, code)
	if !result.Success {
		fmt.Fprintln(a.Out, result.Error)
		return ErrCommandFailed
	}

	// Registration lands the user in template creation, the product's
	// core action.
	fmt.Fprintln(a.Out, "가입이 완료되었습니다. talktemplate chat 으로 첫 템플릿을 만들어보세요.")
	return nil
}

func (a *App) runWhoami() error {
	user, ok := a.Sessions.Current()
	if !ok {
		return ErrAuthRequired
	}
	fmt.Fprintf(a.Out, "%s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *App) runTheme(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.Out, a.Prefs.Theme())
		return nil
	}

	if err := a.Prefs.SetTheme(args[0]); err != nil {
		fmt.Fprintf(a.Out, "테마는 %s 또는 %s 중에서 선택해주세요.\n", prefs.ThemeLight, prefs.ThemeDark)
		return ErrCommandFailed
	}
	fmt.Fprintf(a.Out, "테마가 %s(으)로 변경되었습니다.\n", args[0])
	return nil
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.Out, label)
	reader := bufio.NewReader(a.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) usage() {
	fmt.Fprint(a.Out, `talktemplate - 카카오 알림톡 템플릿 생성 도우미

사용법:
  talktemplate login -email <email> -password <password>
  talktemplate register -email <email> -password <password> -name <name>
  talktemplate logout
  talktemplate whoami
  talktemplate chat
  talktemplate templates [-status <상태>] [-category <카테고리>]
  talktemplate template <id>
  talktemplate theme [light|dark]
`)
}
