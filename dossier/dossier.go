// Package dossier describes an arbitration dossier and renders it to PDF.
//
// A Dossier is the content tree handed over by the dispute workflow: case
// overview, parties, financial tables, milestone records, the timeline,
// evidence sections and an optional raw payload snapshot. Dossiers are read
// from YAML (or JSON, which YAML accepts) with Load or Parse and turned into
// PDF bytes with Render.
package dossier

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Anhcodervuive/Freelancer-Client-matching-platform-be-sub000/pdf/composer"
)

// Common errors
var (
	ErrEmptyDossier = errors.New("dossier has neither a title nor a case reference")
)

// KeyValuePair and TableContent are the composer's content primitives.
type (
	KeyValuePair = composer.KeyValuePair
	TableContent = composer.TableContent
)

// DefaultTitle is used when a dossier carries no title of its own.
const DefaultTitle = "Arbitration dossier"

// EvidenceSection is one piece of evidence: a summary grid, an optional
// table and an optional closing note.
type EvidenceSection struct {
	Title   string         `yaml:"title" json:"title"`
	Summary []KeyValuePair `yaml:"summary" json:"summary"`
	Table   *TableContent  `yaml:"table,omitempty" json:"table,omitempty"`
	Note    string         `yaml:"note,omitempty" json:"note,omitempty"`
}

// Dossier is the complete content of one arbitration dossier.
type Dossier struct {
	Title         string    `yaml:"title" json:"title"`
	Subtitle      string    `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	CaseReference string    `yaml:"caseReference" json:"caseReference"`
	GeneratedAt   time.Time `yaml:"generatedAt,omitempty" json:"generatedAt,omitempty"`
	// FileName is the caller's preferred output name; see OutputName.
	FileName string `yaml:"fileName,omitempty" json:"fileName,omitempty"`

	CaseOverview     []KeyValuePair `yaml:"caseOverview" json:"caseOverview"`
	MetadataOverview []KeyValuePair `yaml:"metadataOverview" json:"metadataOverview"`
	Parties          TableContent   `yaml:"parties" json:"parties"`

	FinancialSummary   TableContent `yaml:"financialSummary" json:"financialSummary"`
	FinancialRequested TableContent `yaml:"financialRequested" json:"financialRequested"`
	FinancialDecided   TableContent `yaml:"financialDecided" json:"financialDecided"`

	MilestoneDetails     []KeyValuePair `yaml:"milestoneDetails" json:"milestoneDetails"`
	MilestoneSubmissions TableContent   `yaml:"milestoneSubmissions" json:"milestoneSubmissions"`

	Timeline         TableContent      `yaml:"timeline" json:"timeline"`
	EvidenceSections []EvidenceSection `yaml:"evidenceSections" json:"evidenceSections"`

	Payload *CodeBlock `yaml:"payload,omitempty" json:"payload,omitempty"`
}

// Validate checks that the dossier can be rendered.
func (d *Dossier) Validate() error {
	if strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.CaseReference) == "" {
		return ErrEmptyDossier
	}
	return nil
}

// DisplayTitle returns the title, or DefaultTitle when none is set.
func (d *Dossier) DisplayTitle() string {
	if t := strings.TrimSpace(d.Title); t != "" {
		return t
	}
	return DefaultTitle
}

// OutputName returns the sanitized file name of the rendered PDF.
func (d *Dossier) OutputName() string {
	return FileName(d.FileName, d.CaseReference)
}

// Load reads a dossier from a YAML or JSON file.
func Load(filename string) (*Dossier, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read dossier file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a dossier from YAML or JSON data and validates it.
func Parse(data []byte) (*Dossier, error) {
	var d Dossier
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse dossier: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
