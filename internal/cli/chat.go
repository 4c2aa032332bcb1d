package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seojinpark/talktemplate/client/internal/model/template"
)

// runChat drives an interactive template-creation conversation. Drafts
// the assistant produces are added to the catalog as pending review.
func (a *App) runChat(ctx context.Context, args []string) error {
	if previous := a.Chat.ListConversations(ctx); len(previous) > 0 {
		fmt.Fprintln(a.Out, "이전 대화")
		for _, conv := range previous {
			fmt.Fprintf(a.Out, "  %s  %s\n", conv.CreatedAt.Format("2006-01-02 15:04"), conv.Title)
		}
	}

	title := strings.Join(args, " ")
	conv, err := a.Chat.StartConversation(ctx, title)
	if err != nil {
		return err
	}

	transcript, err := a.Chat.Transcript(ctx, conv.ID)
	if err != nil {
		return err
	}
	for _, msg := range transcript {
		fmt.Fprintf(a.Out, "assistant> %s\n", msg.Content)
	}
	fmt.Fprintln(a.Out, "(종료하려면 exit 를 입력하세요)")

	scanner := bufio.NewScanner(a.In)
	for {
		fmt.Fprint(a.Out, "you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}

		reply, err := a.Chat.Send(ctx, conv.ID, line)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.Out, "assistant> %s\n", reply.Content)
		if reply.Draft != nil {
			a.showDraft(*reply.Draft)
		}
	}

	fmt.Fprintln(a.Out, "대화를 종료합니다.")
	return scanner.Err()
}

func (a *App) showDraft(draft template.Draft) {
	fmt.Fprintf(a.Out, "\n── 템플릿 미리보기: %s ──\n%s\n", draft.Title, draft.Content)
	fmt.Fprintf(a.Out, "변수: %s\n", strings.Join(draft.Variables, ", "))
	fmt.Fprintf(a.Out, "심사 예상 점수: %d점\n", draft.Compliance.Score)
	for _, suggestion := range draft.Compliance.Suggestions {
		fmt.Fprintf(a.Out, "  · %s\n", suggestion)
	}

	saved := template.Template{
		ID:        uuid.NewString(),
		Title:     draft.Title,
		Content:   draft.Content,
		Variables: draft.Variables,
		Status:    template.StatusPending,
		Category:  "마케팅",
		CreatedAt: time.Now().UTC(),
	}
	a.Templates.Add(saved)
	fmt.Fprintf(a.Out, "템플릿이 저장되었습니다 (%s, %s)\n\n", saved.ID, saved.Status)
}
