package site

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

type PageLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Item is the title/description/icon triple most sections list.
type Item struct {
	Title   string `yaml:"title"`
	Desc    string `yaml:"desc"`
	Icon    string `yaml:"icon"`
	Benefit string `yaml:"benefit,omitempty"`
}

type Brand struct {
	Name    string `yaml:"name"`
	Accent  string `yaml:"accent"`
	Tagline string `yaml:"tagline"`
}

type Navigation struct {
	Links []PageLink `yaml:"links"`
	CTA   PageLink   `yaml:"cta"`
}

type Hero struct {
	Eyebrow     string   `yaml:"eyebrow"`
	TitleLead   string   `yaml:"title_lead"`
	TitleAccent string   `yaml:"title_accent"`
	TitleTail   string   `yaml:"title_tail"`
	Lead        string   `yaml:"lead"`
	Primary     PageLink `yaml:"primary"`
	Secondary   PageLink `yaml:"secondary"`
}

type About struct {
	Title      string   `yaml:"title"`
	Accent     string   `yaml:"accent"`
	Paragraphs []string `yaml:"paragraphs"`
	Highlights []Item   `yaml:"highlights"`
	Badge      Item     `yaml:"badge"`
}

type Services struct {
	Title string `yaml:"title"`
	Lead  string `yaml:"lead"`
	Items []Item `yaml:"items"`
}

type Featured struct {
	Eyebrow string   `yaml:"eyebrow"`
	Title   string   `yaml:"title"`
	Lead    string   `yaml:"lead"`
	Bullets []string `yaml:"bullets"`
	CTA     PageLink `yaml:"cta"`
	Stats   []string `yaml:"stats"`
}

type Why struct {
	Title   string `yaml:"title"`
	Lead    string `yaml:"lead"`
	Quote   string `yaml:"quote"`
	Reasons []Item `yaml:"reasons"`
}

type Industries struct {
	Title string `yaml:"title"`
	Lead  string `yaml:"lead"`
	Items []Item `yaml:"items"`
}

type Privacy struct {
	Title  string   `yaml:"title"`
	Desc   string   `yaml:"desc"`
	Badges []string `yaml:"badges"`
}

type Security struct {
	Title   string  `yaml:"title"`
	Claims  []Item  `yaml:"claims"`
	Privacy Privacy `yaml:"privacy"`
}

type CaseStudy struct {
	Title       string   `yaml:"title"`
	Lead        string   `yaml:"lead"`
	Metric      string   `yaml:"metric"`
	MetricLabel string   `yaml:"metric_label"`
	Client      string   `yaml:"client"`
	Solution    string   `yaml:"solution"`
	Heading     string   `yaml:"heading"`
	Paragraphs  []string `yaml:"paragraphs"`
	Link        string   `yaml:"link"`
}

type ContactInfo struct {
	Title   string `yaml:"title"`
	Lead    string `yaml:"lead"`
	Details []Item `yaml:"details"`
}

type CTA struct {
	Title  string   `yaml:"title"`
	Lead   string   `yaml:"lead"`
	Button PageLink `yaml:"button"`
}

type FooterInfo struct {
	QuickLinks   []PageLink `yaml:"quick_links"`
	ContactLines []string   `yaml:"contact_lines"`
	Copyright    string     `yaml:"copyright"`
	Legal        []PageLink `yaml:"legal"`
}

// SiteContent is every piece of copy on the landing page.
type SiteContent struct {
	Brand      Brand       `yaml:"brand"`
	Nav        Navigation  `yaml:"nav"`
	Hero       Hero        `yaml:"hero"`
	About      About       `yaml:"about"`
	Services   Services    `yaml:"services"`
	Featured   Featured    `yaml:"featured"`
	Why        Why         `yaml:"why"`
	Industries Industries  `yaml:"industries"`
	Security   Security    `yaml:"security"`
	CaseStudy  CaseStudy   `yaml:"case_study"`
	Contact    ContactInfo `yaml:"contact"`
	CTA        CTA         `yaml:"cta"`
	Footer     FooterInfo  `yaml:"footer"`
}

// ParseContent decodes page copy, rejecting unknown keys.
func ParseContent(data []byte) (*SiteContent, error) {
	var c SiteContent
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	if c.Brand.Name == "" {
		return nil, fmt.Errorf("failed to parse site content: brand.name is required")
	}
	return &c, nil
}

// NewContent loads the embedded page copy.
func NewContent() (*SiteContent, error) {
	return ParseContent(defaultContent)
}
