package chat

import "github.com/seojinpark/talktemplate/client/internal/model/template"

// Canned assistant turns. Real generation sits behind a backend that does
// not exist yet; the client ships with this simulation.
const (
	greetingText = "안녕하세요! 카카오 알림톡 템플릿 생성을 도와드리겠습니다. 어떤 종류의 알림톡을 만들고 싶으신가요?"
	replyText    = "좋습니다! 신제품 출시 알림톡을 만들어드리겠습니다. 제품명과 주요 특징을 알려주세요."
)

const draftContent = `안녕하세요, {{고객명}}님!

🎉 새로운 제품이 출시되었습니다!

📱 제품명: {{제품명}}
💰 가격: {{가격}}
🚚 배송: {{배송정보}}

지금 주문하시면 특별 할인 혜택을 받으실 수 있습니다.

▶ 주문하기: {{주문링크}}

감사합니다.`

// draftFixture returns a fresh copy of the static draft attached to every
// assistant reply.
func draftFixture() template.Draft {
	return template.Draft{
		Title:     "신제품 출시 알림",
		Content:   draftContent,
		Variables: []string{"고객명", "제품명", "가격", "배송정보", "주문링크"},
		Compliance: template.Compliance{
			Score:  95,
			Issues: []string{},
			Suggestions: []string{
				"고객명 변수 사용으로 개인화 효과 증대",
				"명확한 CTA 버튼 포함",
			},
		},
	}
}
