package main

var (
	HeroHeadline = `Web applications that are fast, accessible and built to last.`

	HeroTagline = `I help product teams untangle slow, fragile frontends and ship features
	their users notice, without a rewrite they can't afford.`

	AboutIntro = `I love building software that's both useful and fun, and I'm always curious about how things
	work behind the scenes. Most engagements start with a simple question about why something is slow or
	hard to change, and turn into a chance to leave the codebase better than I found it.`

	AvailabilityNote = `Currently booking projects starting next quarter.`

	ContactIntro = `Tell me a little about the project. I read every message and reply within two working days.`

	ContactSuccess = `Thank you for your message! I'll get back to you soon.`

	ContactFailure = `Sorry, there was an error sending your message. Please try again later.`
)

// ProcessStep is one stage of an engagement shown on the services page.
type ProcessStep struct {
	Title       string
	Description string
}

var Process = []ProcessStep{
	{"Discovery", "A short call and a look at the code to agree what success means and how we will measure it."},
	{"Audit", "Profiling, accessibility checks and an architecture review, written up with costs attached."},
	{"Delivery", "Small, reviewed increments behind feature flags so nothing waits for a big-bang release."},
	{"Handover", "Documentation, pairing sessions and a clean exit so your team owns the result."},
}

var ProjectTypes = []string{
	"Performance optimization",
	"Accessibility audit",
	"Architecture consulting",
	"Legacy migration",
	"Something else",
}

var Budgets = []string{
	"Under $10k",
	"$10k - $25k",
	"$25k - $50k",
	"$50k+",
}
