package models

// View identifies one screen of the front end. The set is closed; the
// shell renders navigation from Views().
type View string

const (
	ViewDashboard   View = "DASHBOARD"
	ViewBooks       View = "BOOKS"
	ViewStudents    View = "STUDENTS"
	ViewBorrow      View = "BORROW"
	ViewAIAssistant View = "AI_ASSISTANT"
)

// Views returns the view identifiers in navigation order.
func Views() []View {
	return []View{ViewDashboard, ViewBooks, ViewStudents, ViewBorrow, ViewAIAssistant}
}
