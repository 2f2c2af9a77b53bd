package session

import "strconv"

// User-facing notification messages.
const (
	MsgMemoryMode   = "Memory Mode פעיל"
	MsgDataMode     = "Data Mode: העלה JSON כדי לחשב"
	MsgDemoLoaded   = "דמו נטען ✅"
	MsgReset        = "אופס — חזרנו לזיכרון 🙂"
	MsgImportFailed = "לא הצלחתי לקרוא את ה-JSON. נסה קובץ אחר או בדוק שהוא תקין."
)

// MsgProcessed returns the message shown after a successful import of n
// fragments.
func MsgProcessed(n int) string {
	return "Processed ✅ (" + strconv.Itoa(n) + " טקסטים)"
}

// Notifier receives user-facing messages about state changes.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(msg string)

// Notify calls f(msg).
func (f NotifierFunc) Notify(msg string) {
	f(msg)
}

// discard is the Notifier used when none is configured.
type discard struct{}

func (discard) Notify(string) {}
