package app

// Site holds the fixed identity strings used in metadata and structured data.
type Site struct {
	Name            string
	URL             string
	Title           string
	Description     string
	LDDescription   string
	Keywords        string
	ThemeColor      string
	FooterFallback  string
	OGImagePath     string
	LogoPath        string
	SearchParameter string
}

// TerraFinance is the landing page's site identity.
var TerraFinance = Site{
	Name:            "Terra Finance Edu",
	URL:             "https://terrafinanceedu.com/",
	Title:           "Terra Finance Edu | Learn Personal Finance with Clear Lessons and Tools",
	Description:     "Learn personal finance step by step. Terra Finance Edu teaches budgeting, saving, credit, investing, and taxes with clear lessons, interactive labs, and simple tools.",
	LDDescription:   "Learn personal finance step by step. Budgeting, saving, credit, investing, and taxes with clear lessons, interactive labs, and simple tools.",
	Keywords:        "personal finance education, budgeting basics, saving money, credit score explained, beginner investing, financial literacy, finance lessons, money tools, compound interest calculator",
	ThemeColor:      "#0B1B2B",
	FooterFallback:  "Clear personal finance education",
	OGImagePath:     "og-image.jpg",
	LogoPath:        "logo.png",
	SearchParameter: "search_term_string",
}

// OGImage is the absolute social preview image URL.
func (s Site) OGImage() string { return s.URL + s.OGImagePath }

// Logo is the absolute organization logo URL.
func (s Site) Logo() string { return s.URL + s.LogoPath }

// FAQ is a single question and answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// Card is a linked (or, for audience cards, unlinked) content tile.
type Card struct {
	Title       string
	Description string
	Href        string
}

// Badge is one social-proof headline with its caption.
type Badge struct {
	Label   string
	Caption string
	Accent  bool
}

const topicDescription = "Read the overview, follow a checklist, and take a short quiz."

// FAQs returns the FAQ list shown in the accordion and the FAQPage node.
func FAQs() []FAQ {
	return []FAQ{
		{
			Question: "What is Terra Finance Edu?",
			Answer:   "An approachable learning site for personal finance. Start with budgeting and saving, then build confidence in credit, investing, and taxes using clear lessons, interactive labs, and simple tools.",
		},
		{
			Question: "Who is it for?",
			Answer:   "Students, young professionals, parents, and teachers who want practical, beginner-friendly financial literacy with short lessons and hands-on practice.",
		},
		{
			Question: "Are the learning resources free?",
			Answer:   "Core lessons, labs, and tools start free. Printable resources and extended modules may be added later.",
		},
		{
			Question: "What should I learn first?",
			Answer:   "Begin with Budgeting Basics and Emergency Funds, then explore Credit Score Essentials and our Interest & Growth explainer.",
		},
		{
			Question: "Do you have calculators and planners?",
			Answer:   "Yes. Use the Budget Planner, Compound Interest Calculator, and Debt Payoff Helper to apply lessons right away.",
		},
	}
}

// Pillars returns the Learn / Practice / Tools cards.
func Pillars() []Card {
	return []Card{
		{Title: "Learn", Description: "Plain-language lessons with checklists and examples.", Href: "/"},
		{Title: "Practice", Description: "Interactive labs to reinforce skills with focused exercises.", Href: "/"},
		{Title: "Tools", Description: "Simple calculators and planners to apply what you learn.", Href: "/"},
	}
}

// Topics returns the core topic cards.
func Topics() []Card {
	titles := []string{
		"Budgeting Basics",
		"Saving and Goals",
		"Credit Score Essentials",
		"Investing 101",
		"Banking Smart",
		"Taxes Simplified",
	}
	cards := make([]Card, 0, len(titles))
	for _, t := range titles {
		cards = append(cards, Card{Title: t, Description: topicDescription, Href: "/"})
	}
	return cards
}

// Labs returns the interactive lab cards.
func Labs() []Card {
	return []Card{
		{Title: "Budgeting Exercise", Description: "Sort needs and wants, plan a month, and set a savings target.", Href: "/"},
		{Title: "Interest & Growth Demo", Description: "See simple vs compound interest and monthly contributions in action.", Href: "/"},
	}
}

// Tools returns the calculator and planner cards.
func Tools() []Card {
	return []Card{
		{Title: "Budget Planner", Description: "Track income, fixed costs, and flexible spending with savings goals.", Href: "/"},
		{Title: "Compound Interest Calculator", Description: "Compare scenarios by rate, time, and contributions. Export results.", Href: "/"},
		{Title: "Debt Payoff Helper", Description: "Snowball vs avalanche with timeline previews to reduce interest.", Href: "/"},
	}
}

// Audiences returns the "who we help" cards. They carry no link.
func Audiences() []Card {
	return []Card{
		{Title: "Students & young adults", Description: "Build early habits and learn how banking, savings, and credit work in real life."},
		{Title: "Busy adults", Description: "Understand key decisions, reduce stress, and take confident steps with money."},
		{Title: "Parents & teachers", Description: "Use classroom-friendly lessons and hands-on practice to teach financial literacy."},
	}
}

// QuickStart returns the hero checklist.
func QuickStart() []string {
	return []string{
		"Pick a budget method that fits your month",
		"Set an emergency fund target",
		"Preview interest growth in 60 seconds",
	}
}

// Reasons returns the "why it works" bullet list.
func Reasons() []string {
	return []string{
		"Plain-language lessons with step-by-step guidance",
		"Hands-on practice that turns concepts into real skills",
		"Tools that help you take action immediately",
		"Short sessions and steady weekly progress",
	}
}

// Badges returns the social-proof badges.
func Badges() []Badge {
	return []Badge{
		{Label: "Practical", Caption: "Action steps you can use today"},
		{Label: "Understandable", Caption: "Plain language and real examples", Accent: true},
		{Label: "Flexible", Caption: "Short sessions and steady progress"},
	}
}
