package chat_test

import (
	"context"
	"testing"
	"time"

	chatmodel "github.com/seojinpark/talktemplate/client/internal/model/chat"
	chat "github.com/seojinpark/talktemplate/client/internal/service/chat"
)

func TestStartConversationOpensWithGreeting(t *testing.T) {
	svc := chat.NewService(0)
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, "신제품 출시 알림")
	if err != nil {
		t.Fatalf("StartConversation err: %v", err)
	}
	if conv.Title != "신제품 출시 알림" {
		t.Fatalf("unexpected title: %q", conv.Title)
	}

	transcript, err := svc.Transcript(ctx, conv.ID)
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}
	if len(transcript) != 1 {
		t.Fatalf("expected greeting only, got %d messages", len(transcript))
	}
	if transcript[0].Role != chatmodel.RoleAssistant {
		t.Fatalf("greeting role = %q", transcript[0].Role)
	}
}

func TestStartConversationDefaultTitle(t *testing.T) {
	svc := chat.NewService(0)

	conv, err := svc.StartConversation(context.Background(), "")
	if err != nil {
		t.Fatalf("StartConversation err: %v", err)
	}
	if conv.Title == "" {
		t.Fatal("expected a default title")
	}
}

func TestSendProducesReplyWithDraft(t *testing.T) {
	svc := chat.NewService(0)
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, "")
	if err != nil {
		t.Fatalf("StartConversation err: %v", err)
	}

	reply, err := svc.Send(ctx, conv.ID, "신제품 출시 알림톡을 만들고 싶어요")
	if err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if reply.Role != chatmodel.RoleAssistant {
		t.Fatalf("reply role = %q", reply.Role)
	}
	if reply.Draft == nil {
		t.Fatal("expected a template draft on the reply")
	}
	if reply.Draft.Compliance.Score != 95 {
		t.Fatalf("unexpected compliance score: %d", reply.Draft.Compliance.Score)
	}
	if len(reply.Draft.Variables) == 0 {
		t.Fatal("expected draft variables")
	}

	transcript, err := svc.Transcript(ctx, conv.ID)
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}
	// greeting + user turn + assistant reply
	if len(transcript) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(transcript))
	}
	if transcript[1].Role != chatmodel.RoleUser {
		t.Fatalf("second message role = %q", transcript[1].Role)
	}
}

func TestGetConversation(t *testing.T) {
	svc := chat.NewService(0)
	ctx := context.Background()

	conv, err := svc.StartConversation(ctx, "첫 대화")
	if err != nil {
		t.Fatalf("StartConversation err: %v", err)
	}

	got, err := svc.GetConversation(ctx, conv.ID)
	if err != nil {
		t.Fatalf("GetConversation err: %v", err)
	}
	if got.ID != conv.ID || got.Title != "첫 대화" {
		t.Fatalf("unexpected conversation: %+v", got)
	}
}

func TestGetConversationNotFound(t *testing.T) {
	svc := chat.NewService(0)

	if _, err := svc.GetConversation(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing conversation")
	}
}

func TestListConversations(t *testing.T) {
	svc := chat.NewService(0)
	ctx := context.Background()

	if got := svc.ListConversations(ctx); len(got) != 0 {
		t.Fatalf("expected empty listing, got %d", len(got))
	}

	first, _ := svc.StartConversation(ctx, "첫 대화")
	second, _ := svc.StartConversation(ctx, "둘째 대화")

	got := svc.ListConversations(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, conv := range got {
		seen[conv.ID] = true
	}
	if !seen[first.ID] || !seen[second.ID] {
		t.Fatalf("listing missing conversations: %+v", got)
	}
}

func TestSendUnknownConversation(t *testing.T) {
	svc := chat.NewService(0)

	if _, err := svc.Send(context.Background(), "missing", "hi"); err == nil {
		t.Fatal("expected error for unknown conversation")
	}
}

func TestSendEmptyMessage(t *testing.T) {
	svc := chat.NewService(0)
	conv, _ := svc.StartConversation(context.Background(), "")

	if _, err := svc.Send(context.Background(), conv.ID, ""); err == nil {
		t.Fatal("expected error for empty message")
	}
}

func TestSendHonorsCancellation(t *testing.T) {
	svc := chat.NewService(time.Minute)
	conv, _ := svc.StartConversation(context.Background(), "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Send(ctx, conv.ID, "hello"); err == nil {
		t.Fatal("expected context cancellation error")
	}
}
