package certificate

// Fallback design and wording tables. Lookups are unknown-safe: any type
// outside the table maps to the first entry's default.

type Layout struct {
	Background string            `json:"background"`
	Border     string            `json:"border"`
	TextStyles map[string]string `json:"text_styles"`
	Elements   []string          `json:"elements"`
}

type ColorScheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

type Template struct {
	TemplateName      string      `json:"template_name"`
	Layout            Layout      `json:"layout"`
	ColorScheme       ColorScheme `json:"color_scheme"`
	SuggestedElements []string    `json:"suggested_elements"`
	Description       string      `json:"description"`
}

var templates = map[string]Template{
	"academic": {
		TemplateName: "Academic Excellence",
		Layout: Layout{
			Background: "gradient-gold",
			Border:     "elegant-frame",
			TextStyles: map[string]string{"title": "serif-bold", "body": "serif-regular"},
			Elements:   []string{"university_seal", "signature_lines", "date_field"},
		},
		ColorScheme:       ColorScheme{Primary: "#D4AF37", Secondary: "#8B4513", Accent: "#000000"},
		SuggestedElements: []string{"Certificate of Achievement", "Awarded to", "For excellence in", "Date", "Signatures"},
		Description:       "Classic academic certificate with gold accents and formal typography",
	},
	"corporate": {
		TemplateName: "Corporate Recognition",
		Layout: Layout{
			Background: "clean-white",
			Border:     "minimal-line",
			TextStyles: map[string]string{"title": "sans-bold", "body": "sans-regular"},
			Elements:   []string{"company_logo", "signature_line", "date_field"},
		},
		ColorScheme:       ColorScheme{Primary: "#2C3E50", Secondary: "#3498DB", Accent: "#E74C3C"},
		SuggestedElements: []string{"Certificate of Appreciation", "Presented to", "In recognition of", "Date", "Authorized Signature"},
		Description:       "Modern corporate certificate with clean design and professional styling",
	},
	"event": {
		TemplateName: "Event Participation",
		Layout: Layout{
			Background: "colorful-gradient",
			Border:     "decorative-frame",
			TextStyles: map[string]string{"title": "script-bold", "body": "sans-regular"},
			Elements:   []string{"event_logo", "medal_icon", "date_field"},
		},
		ColorScheme:       ColorScheme{Primary: "#9B59B6", Secondary: "#1ABC9C", Accent: "#F39C12"},
		SuggestedElements: []string{"Certificate of Participation", "Awarded to", "For attending", "Event Date", "Organizer Signature"},
		Description:       "Fun and colorful certificate perfect for events and workshops",
	},
}

type WordingSuggestion struct {
	ImprovedText string   `json:"improved_text"`
	Suggestions  []string `json:"suggestions"`
	Alternatives []string `json:"alternatives"`
}

var wordingSuggestions = map[string]WordingSuggestion{
	"achievement": {
		ImprovedText: "This is to certify that [Recipient Name] has successfully completed [Achievement] with distinction and excellence.",
		Suggestions: []string{
			"Use more specific language about the achievement",
			"Add qualifying adjectives like \"successfully\" or \"with distinction\"",
			"Consider mentioning the significance of the achievement",
		},
		Alternatives: []string{
			"Awarded to [Recipient] for outstanding performance in [Field]",
			"[Recipient] is hereby recognized for excellence in [Achievement]",
		},
	},
	"participation": {
		ImprovedText: "This certificate recognizes [Recipient Name] for their active participation and valuable contribution to [Event/Activity].",
		Suggestions: []string{
			"Emphasize the value of participation",
			"Mention specific contributions if possible",
			"Use positive, encouraging language",
		},
		Alternatives: []string{
			"Presented to [Recipient] in appreciation of their involvement in [Event]",
			"[Recipient] successfully participated in [Activity] and contributed meaningfully",
		},
	},
	"completion": {
		ImprovedText: "This certifies that [Recipient Name] has satisfactorily completed all requirements for [Program/Course/Activity].",
		Suggestions: []string{
			"Specify what was completed",
			"Use formal certification language",
			"Include completion criteria if relevant",
		},
		Alternatives: []string{
			"[Recipient] has fulfilled all obligations and completed [Program] successfully",
			"Awarded upon completion of [Course/Activity] to [Recipient]",
		},
	},
}

type AspectAnalysis struct {
	Clarity      string   `json:"clarity,omitempty"`
	Completeness string   `json:"completeness,omitempty"`
	Tone         string   `json:"tone,omitempty"`
	Layout       string   `json:"layout,omitempty"`
	ColorScheme  string   `json:"color_scheme,omitempty"`
	Typography   string   `json:"typography,omitempty"`
	Suggestions  []string `json:"suggestions"`
}

type Analysis struct {
	ContentAnalysis AspectAnalysis `json:"content_analysis"`
	DesignAnalysis  AspectAnalysis `json:"design_analysis"`
	OverallScore    int            `json:"overall_score"`
	Recommendations []string       `json:"recommendations"`
}

var fallbackAnalysis = Analysis{
	ContentAnalysis: AspectAnalysis{
		Clarity:      "good",
		Completeness: "adequate",
		Tone:         "professional",
		Suggestions: []string{
			"Consider adding more specific achievement details",
			"Ensure all required fields are included",
		},
	},
	DesignAnalysis: AspectAnalysis{
		Layout:      "balanced",
		ColorScheme: "appropriate",
		Typography:  "readable",
		Suggestions: []string{
			"Consider adding decorative elements",
			"Ensure proper spacing between elements",
		},
	},
	OverallScore: 8,
	Recommendations: []string{
		"Add company/university seal if applicable",
		"Include signature lines for authenticity",
		"Consider adding border or decorative elements",
		"Ensure text hierarchy is clear",
	},
}
