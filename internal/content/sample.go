package content

import "encoding/json"

// Sample returns a starter document for the given owner. Every section holds
// one entry so each view renders something before it is edited.
func Sample(name, title string) *Document {
	if title == "" {
		title = name + " | Portfolio"
	}
	return &Document{
		Site: Site{
			Name:            Text(name),
			Title:           Text(title),
			Tagline:         "Researcher and builder",
			PersonalityTags: List[Text]{"curious", "structured", "hands-on"},
			Contacts: List[Contact]{
				{Label: "email", Value: "you@example.com"},
				{Label: "GitHub", Href: "github.com/you"},
			},
		},
		About: About{
			Headline: "I turn questions into evidence and evidence into products.",
			Cards: List[AboutCard]{
				{Title: "Strengths", Text: "Research design, data analysis and clear writing."},
				{Title: "Working style", Text: "Small steps, written decisions, early feedback."},
			},
		},
		Hero: Hero{
			Slogan: "Bridging data and creativity",
			Bio:    "A short introduction goes here.",
			Photo:  "assets/avatars/portrait-placeholder.svg",
			CTA: List[Link]{
				{Href: "#dashboard", Label: "Explore"},
				{Href: "?page=research", Label: "Read the paper"},
			},
		},
		Capabilities: Capabilities{
			Research: Research{
				Featured: &Featured{
					Title:    "A featured study",
					Meta:     "2025 · Working paper",
					Abstract: "One paragraph on the question, the method and the finding.",
					Keywords: List[Text]{"causal inference", "survey design"},
					Sections: List[Section]{
						{Heading: "Question", Text: "What did you set out to learn?"},
						{Heading: "Method", Text: "How did you find out?", Bullets: List[Text]{"Data", "Model", "Checks"}},
						{Heading: "Findings", Text: "What changed because of it?"},
					},
				},
				Methods: List[Text]{"Regression", "Experiments", "Interviews"},
				Timeline: List[TimelineEntry]{
					{Card: Card{Title: "First project", Desc: "What you built and for whom.", Outputs: List[Text]{"Report"}}, Year: "2024", Metric: "+10%"},
				},
			},
			AI:      Cards{Cards: List[Card]{{Title: "An assistant workflow", Desc: "What it automates.", Highlights: List[Text]{"2x faster"}}}},
			PM:      Cards{Cards: List[Card]{{Title: "A shipped project", Meta: "Lead", Desc: "Scope, pacing and outcome."}}},
			Content: Cards{Cards: List[Card]{{Title: "An article", Meta: "Blog", Desc: "The story and where it went."}}},
			Visual:  Visual{Gallery: List[GalleryItem]{{Title: "A poster", Image: "assets/gallery/poster.png"}}},
		},
		Dashboard: Dashboard{
			Research: &ResearchTile{KPI: KPI{Label: "Case result", Value: "+10%", Note: "first project"}, Sparkline: List[float64]{3, 5, 4, 7, 9}},
			AI:       &AITile{Headline: "Tools that save hours", Sub: "Prompts, agents, templates", Highlights: List[Text]{"automation"}},
			PM: &PMTile{
				Projects: List[Project]{{Title: "A shipped project", Status: "done"}, {Title: "Next project", Status: "doing"}},
				Pie:      &PieChart{Title: "Time split", Slices: List[Slice]{{Label: "Build", Value: 50, Unit: "%"}, {Label: "Research", Value: 30, Unit: "%"}, {Label: "Writing", Value: 20, Unit: "%"}}},
			},
			Content: &ContentTile{Headlines: List[Headline]{{Title: "An article", Meta: "Blog"}}},
			Visual:  &VisualTile{Covers: List[Text]{"assets/gallery/poster.png"}},
		},
	}
}

// Encode writes the document as indented JSON.
func Encode(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
