package template

import "time"

// Status is the AlimTalk review state assigned by the messaging platform.
type Status string

const (
	StatusApproved Status = "승인됨"
	StatusPending  Status = "심사중"
	StatusRejected Status = "반려됨"
)

// Template captures an AlimTalk messaging template and its review state.
type Template struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Variables []string  `json:"variables,omitempty"`
	Status    Status    `json:"status"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// Compliance scores a draft against the platform's template guidelines.
type Compliance struct {
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Draft is a template candidate produced during a chat conversation,
// before it has been submitted for review.
type Draft struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Variables  []string   `json:"variables"`
	Compliance Compliance `json:"compliance"`
}

// Seed provides the sample templates shown before a user has created any.
func Seed() []Template {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	return []Template{
		{
			ID:        "tmpl-001",
			Title:     "신제품 출시 알림",
			Content:   "안녕하세요, {{고객명}}님! 새로운 제품이 출시되었습니다...",
			Variables: []string{"고객명"},
			Status:    StatusApproved,
			Category:  "마케팅",
			CreatedAt: day("2025-01-15"),
		},
		{
			ID:        "tmpl-002",
			Title:     "할인 이벤트 안내",
			Content:   "{{고객명}}님, 특별 할인 이벤트를 놓치지 마세요!...",
			Variables: []string{"고객명"},
			Status:    StatusPending,
			Category:  "프로모션",
			CreatedAt: day("2025-01-14"),
		},
		{
			ID:        "tmpl-003",
			Title:     "주문 확인 알림",
			Content:   "{{고객명}}님의 주문이 정상적으로 접수되었습니다...",
			Variables: []string{"고객명"},
			Status:    StatusApproved,
			Category:  "주문",
			CreatedAt: day("2025-01-12"),
		},
		{
			ID:        "tmpl-004",
			Title:     "배송 완료 안내",
			Content:   "{{고객명}}님, 주문하신 상품이 배송 완료되었습니다...",
			Variables: []string{"고객명"},
			Status:    StatusRejected,
			Category:  "배송",
			CreatedAt: day("2025-01-10"),
		},
	}
}
