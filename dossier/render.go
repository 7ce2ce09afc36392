package dossier

import (
	"fmt"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf"
	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/composer"
)

// Result is a rendered dossier.
type Result struct {
	FileName string
	Data     []byte
	Pages    int
}

// Render lays d out with opts and serializes it. Unset document information
// is taken from the dossier: the title, the case reference as subject and
// GeneratedAt as creation date.
func Render(d *Dossier, opts composer.Options) (*Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if opts.Info.Title == "" {
		opts.Info.Title = d.DisplayTitle()
	}
	if opts.Info.Subject == "" && d.CaseReference != "" {
		opts.Info.Subject = "Case " + d.CaseReference
	}
	if opts.Info.CreationDate.IsZero() {
		opts.Info.CreationDate = d.GeneratedAt
	}

	c, err := composer.New(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to set up composer: %w", err)
	}
	draw(c, d)

	data, err := c.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render dossier %s: %w", d.CaseReference, err)
	}

	res := &Result{
		FileName: d.OutputName(),
		Data:     data,
		Pages:    c.PageCount(),
	}
	pdf.Logger().Debug("dossier rendered",
		"case", d.CaseReference,
		"file", res.FileName,
		"pages", res.Pages)
	return res, nil
}

// sections numbers top-level headings.
type sections struct {
	c *composer.Composer
	n int
}

func (s *sections) heading(title string) {
	s.n++
	s.c.AddSectionHeading(fmt.Sprintf("%d. %s", s.n, title))
}

func withEmpty(t TableContent, msg string) TableContent {
	if t.EmptyMessage == "" {
		t.EmptyMessage = msg
	}
	return t
}

func draw(c *composer.Composer, d *Dossier) {
	c.AddTitle(d.DisplayTitle())
	if d.Subtitle != "" {
		c.AddSubtitle(d.Subtitle)
	}
	if d.CaseReference != "" {
		c.AddMetadataLine("Case reference: " + d.CaseReference)
	}
	if !d.GeneratedAt.IsZero() {
		c.AddMetadataLine("Generated at: " + d.GeneratedAt.Format("2006-01-02 15:04 MST"))
	}
	c.AddHorizontalRule()

	s := &sections{c: c}

	s.heading("Case overview")
	c.AddKeyValuePairs(d.CaseOverview, "No case details recorded.")

	s.heading("Dispute metadata")
	c.AddKeyValuePairs(d.MetadataOverview, "No metadata recorded.")

	s.heading("Parties")
	c.AddTable(withEmpty(d.Parties, "No parties recorded."))

	s.heading("Financial summary")
	c.AddTable(withEmpty(d.FinancialSummary, "No financial summary available."))
	c.AddSubheading("Requested")
	c.AddTable(withEmpty(d.FinancialRequested, "No amounts requested."))
	c.AddSubheading("Decided")
	c.AddTable(withEmpty(d.FinancialDecided, "No decision recorded yet."))

	s.heading("Milestone")
	c.AddKeyValuePairs(d.MilestoneDetails, "No milestone linked to this dispute.")
	c.AddSubheading("Submissions")
	c.AddTable(withEmpty(d.MilestoneSubmissions, "No submissions recorded."))

	s.heading("Timeline")
	c.AddTable(withEmpty(d.Timeline, "No events recorded."))

	s.heading("Evidence")
	if len(d.EvidenceSections) == 0 {
		c.AddNote("No evidence submitted.")
	}
	for i, ev := range d.EvidenceSections {
		c.AddSubheading(fmt.Sprintf("%d.%d %s", s.n, i+1, ev.Title))
		c.AddKeyValuePairs(ev.Summary, "No summary provided.")
		if ev.Table != nil {
			c.AddTable(*ev.Table)
		}
		if ev.Note != "" {
			c.AddNote(ev.Note)
		}
	}

	if d.Payload != nil && len(d.Payload.Lines) > 0 {
		title := d.Payload.Title
		if title == "" {
			title = "Payload snapshot"
		}
		s.heading(title)
		c.AddCodeBlock(d.Payload.Lines)
	}
}
