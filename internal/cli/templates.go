package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/seojinpark/talktemplate/client/internal/model/template"
)

func (a *App) runTemplates(args []string) error {
	fs := flag.NewFlagSet("templates", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	status := fs.String("status", "", "승인됨 | 심사중 | 반려됨")
	category := fs.String("category", "", "카테고리로 필터링")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items := a.Templates.List(template.Filter{
		Status:   template.Status(*status),
		Category: *category,
	})

	fmt.Fprintf(a.Out, "전체 템플릿 (%d개)\n", len(items))
	for _, item := range items {
		fmt.Fprintf(a.Out, "  %s  [%s]  %s  (%s, %s)\n",
			item.ID, item.Status, item.Title, item.Category,
			item.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func (a *App) runTemplateDetail(args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.Out, "사용법: talktemplate template <id>")
		return ErrCommandFailed
	}

	item, ok := a.Templates.FindByID(args[0])
	if !ok {
		fmt.Fprintf(a.Out, "템플릿을 찾을 수 없습니다: %s\n", args[0])
		return ErrCommandFailed
	}

	fmt.Fprintf(a.Out, "%s  [%s]\n", item.Title, item.Status)
	fmt.Fprintf(a.Out, "카테고리: %s · 생성일: %s\n", item.Category, item.CreatedAt.Format("2006-01-02"))
	if len(item.Variables) > 0 {
		fmt.Fprintf(a.Out, "변수: %s\n", strings.Join(item.Variables, ", "))
	}
	fmt.Fprintf(a.Out, "\n%s\n", item.Content)
	return nil
}
