package session

import "github.com/nao1215/chatwrapped/internal/model"

// DemoSource is the source name of the built-in demo import.
const DemoSource = "demo"

// demoMessages are the user messages of the demo conversation.
var demoMessages = []string{
	"תיצור לי דשבורד בgithub pages עם אנימציות",
	"תן לי פרומפט לSuno בלי תופים רק קלידים",
	"כתוב לי הודעת וואטסאפ יותר טובה",
	"Mermaid diagram ל-KAMALA",
	"איך מגבים ל-USB מהטאבלט",
}

// DemoDocument returns the built-in demo export: one conversation titled
// "demo" with five user messages.
func DemoDocument() *model.Document {
	messages := make([]*model.Document, len(demoMessages))
	for i, content := range demoMessages {
		messages[i] = model.Object(
			model.Field("role", model.String("user")),
			model.Field("content", model.String(content)),
		)
	}
	return model.Object(
		model.Field("conversations", model.Array(
			model.Object(
				model.Field("title", model.String("demo")),
				model.Field("messages", model.Array(messages...)),
			),
		)),
	)
}
