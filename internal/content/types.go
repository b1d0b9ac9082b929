// Package content models the portfolio content document and loads it.
//
// Every field is optional. Decoding never fails on a mistyped field: text
// fields stringify scalars, list fields treat non-arrays as absent and nested
// objects of the wrong type are skipped.
package content

// Document is the root of the content document.
type Document struct {
	Site         Site         `json:"site"`
	About        About        `json:"about"`
	Hero         Hero         `json:"hero"`
	Capabilities Capabilities `json:"capabilities"`
	Dashboard    Dashboard    `json:"dashboard"`
}

// Site holds identity and contact details.
type Site struct {
	Name            Text          `json:"name"`
	Title           Text          `json:"title"`
	Tagline         Text          `json:"tagline"`
	PersonalityTags List[Text]    `json:"personalityTags"`
	Contacts        List[Contact] `json:"contacts"`
}

// Contact is one contact entry. Value is shown for static contacts and is
// also the href source when Href is empty.
type Contact struct {
	Label Text `json:"label"`
	Href  Text `json:"href"`
	Value Text `json:"value"`
}

// Display returns the value shown for the contact.
func (c Contact) Display() string {
	if v := c.Value.Trim(); v != "" {
		return v
	}
	return c.Href.Trim()
}

// Target returns the raw href before protocol inference.
func (c Contact) Target() string {
	if h := c.Href.Trim(); h != "" {
		return h
	}
	return c.Value.Trim()
}

// About is the short introduction block.
type About struct {
	Headline Text            `json:"headline"`
	Cards    List[AboutCard] `json:"cards"`
}

// AboutCard is a title/text pair.
type AboutCard struct {
	Title Text `json:"title"`
	Text  Text `json:"text"`
}

// Hero is the dashboard header.
type Hero struct {
	Slogan   Text       `json:"slogan"`
	SloganEn Text       `json:"sloganEn"`
	Bio      Text       `json:"bio"`
	Photo    Text       `json:"photo"`
	CTA      List[Link] `json:"cta"`
}

// Link is an href with a label.
type Link struct {
	Href  Text `json:"href"`
	Label Text `json:"label"`
}

// Capabilities holds one section per domain.
type Capabilities struct {
	Research Research `json:"research"`
	AI       Cards    `json:"ai"`
	PM       Cards    `json:"pm"`
	Content  Cards    `json:"content"`
	Visual   Visual   `json:"visual"`
}

// Research is the core capability: a featured paper, methods and a timeline.
type Research struct {
	Featured *Featured           `json:"featured"`
	Methods  List[Text]          `json:"methods"`
	Timeline List[TimelineEntry] `json:"timeline"`
}

// Cards is a capability rendered as a card grid.
type Cards struct {
	Cards List[Card] `json:"cards"`
}

// Visual is the gallery capability.
type Visual struct {
	Gallery List[GalleryItem] `json:"gallery"`
}

// Card is the uniform card shape shared by every domain.
type Card struct {
	Title      Text       `json:"title"`
	Meta       Text       `json:"meta"`
	Desc       Text       `json:"desc"`
	Highlights List[Text] `json:"highlights"`
	Outputs    List[Text] `json:"outputs"`
	Links      List[Link] `json:"links"`
}

// TimelineEntry is a card with an optional year and headline metric.
type TimelineEntry struct {
	Card
	Year   Text `json:"year"`
	Metric Text `json:"metric"`
}

// GalleryItem is one visual work.
type GalleryItem struct {
	Title Text `json:"title"`
	Meta  Text `json:"meta"`
	Image Text `json:"image"`
}

// Featured is the long-form research entry rendered as a paper.
type Featured struct {
	Title      Text          `json:"title"`
	Meta       Text          `json:"meta"`
	Abstract   Text          `json:"abstract"`
	Desc       Text          `json:"desc"`
	Keywords   List[Text]    `json:"keywords"`
	Figures    List[Figure]  `json:"figures"`
	Sections   List[Section] `json:"sections"`
	Highlights List[Text]    `json:"highlights"`
	Links      List[Link]    `json:"links"`
}

// Summary returns the abstract, falling back to desc.
func (f *Featured) Summary() string {
	if f == nil {
		return ""
	}
	if f.Abstract.Trim() != "" {
		return string(f.Abstract)
	}
	return string(f.Desc)
}

// Figure is an image with a title and caption.
type Figure struct {
	Image   Text `json:"image"`
	Title   Text `json:"title"`
	Caption Text `json:"caption"`
}

// Section is a structured paper section.
type Section struct {
	Heading Text       `json:"heading"`
	Text    Text       `json:"text"`
	Bullets List[Text] `json:"bullets"`
}

// Dashboard holds the per-domain summary widgets.
type Dashboard struct {
	Research *ResearchTile `json:"research"`
	AI       *AITile       `json:"ai"`
	PM       *PMTile       `json:"pm"`
	Content  *ContentTile  `json:"content"`
	Visual   *VisualTile   `json:"visual"`
}

// ResearchTile is a KPI with a sparkline series.
type ResearchTile struct {
	KPI       KPI           `json:"kpi"`
	Sparkline List[float64] `json:"sparkline"`
}

// KPI is a labelled headline number.
type KPI struct {
	Label Text `json:"label"`
	Value Text `json:"value"`
	Note  Text `json:"note"`
}

// AITile summarizes AI work.
type AITile struct {
	Headline   Text       `json:"headline"`
	Sub        Text       `json:"sub"`
	Highlights List[Text] `json:"highlights"`
	DemoImages List[Text] `json:"demoImages"`
}

// PMTile is a project status board with an optional allocation chart.
type PMTile struct {
	Projects List[Project] `json:"projects"`
	Pie      *PieChart     `json:"pie"`
}

// Project is one row on the status board.
type Project struct {
	Title  Text `json:"title"`
	Status Text `json:"status"`
	Meta   Text `json:"meta"`
}

// ContentTile lists headline pieces.
type ContentTile struct {
	Headlines List[Headline] `json:"headlines"`
}

// Headline is a title/meta row.
type Headline struct {
	Title Text `json:"title"`
	Meta  Text `json:"meta"`
}

// VisualTile lists cover images.
type VisualTile struct {
	Covers List[Text] `json:"covers"`
}

// PieChart is a titled list of slices.
type PieChart struct {
	Title  Text        `json:"title"`
	Slices List[Slice] `json:"slices"`
}

// Slice is one wedge of a pie chart.
type Slice struct {
	Label Text   `json:"label"`
	Value Number `json:"value"`
	Unit  Text   `json:"unit"`
	Note  Text   `json:"note"`
}
