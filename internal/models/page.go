package models

// Page names one of the three navigable pages. The flow is linear and
// user-driven: landing -> setup -> chat.
type Page string

const (
	PageLanding Page = "landing"
	PageSetup   Page = "setup"
	PageChat    Page = "chat"
)

// ValidPage reports whether p is a navigable target.
func ValidPage(p Page) bool {
	switch p {
	case PageLanding, PageSetup, PageChat:
		return true
	}
	return false
}
