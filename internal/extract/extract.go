// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a decoded document into a DisciplineRecord.
//
// Each field is recovered by its own extractor. Narrative fields
// (description, goals) use ordered fallback chains of Strategy tiers; the
// software list, syllabus sections, bibliography and metadata each have a
// dedicated extractor. Extractors are independent: a field with no
// evidence keeps its default and never stops the others. The software
// matcher runs last, over the union of sections and software.
package extract

import (
	"log/slog"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/literature"
	"github.com/pdiddy/curriculum-graph/internal/match"
	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// minParagraphEntries is the bibliography size below which tables are
// also searched.
const minParagraphEntries = 2

// Pipeline holds every extractor built from one lexicon. It has no mutable
// state and may be shared across goroutines.
type Pipeline struct {
	logger *slog.Logger

	description     Chain
	goals           Chain
	textDescription Chain
	textGoals       Chain

	metadata     *MetadataExtractor
	software     *SoftwareExtractor
	syllabus     *SyllabusExtractor
	textSections *TextSections
	classifier   *Classifier
	literature   *literature.Parser
	matcher      *match.Matcher
}

// NewPipeline builds a Pipeline from a compiled lexicon. A nil logger
// discards the per-field debug lines.
func NewPipeline(lex *lexicon.Lexicon, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cls := text.NewClassifier(lex)
	seg := text.NewSegmenter(lex)
	return &Pipeline{
		logger:          logger,
		description:     DescriptionChain(lex, cls),
		goals:           GoalsChain(lex, cls),
		textDescription: TextDescriptionChain(lex, cls),
		textGoals:       TextGoalsChain(lex),
		metadata:        NewMetadataExtractor(lex),
		software:        NewSoftwareExtractor(lex),
		syllabus:        NewSyllabusExtractor(cls, seg),
		textSections:    NewTextSections(lex, seg),
		classifier:      NewClassifier(lex),
		literature:      literature.NewParser(lex),
		matcher:         match.NewMatcher(lex),
	}
}

// Extract parses doc into a fresh record. A nil document yields a record
// holding only defaults.
func (p *Pipeline) Extract(doc *types.Document) *types.DisciplineRecord {
	if doc == nil {
		return types.NewDisciplineRecord()
	}
	src := NewSource(doc)
	var rec *types.DisciplineRecord
	if doc.Kind == types.KindPDF {
		rec = p.fromText(src)
	} else {
		rec = p.fromStructured(src, doc.Tables)
	}

	rec.Category = p.classifier.Classify(rec.Name, rec.Description, rec.Goals)
	rec.Sections = p.matcher.Link(rec.Sections, rec.Software)

	p.logger.Debug("extracted record",
		"kind", doc.Kind,
		"name", rec.Name,
		"sections", len(rec.Sections),
		"software", len(rec.Software),
		"literature", rec.Literature.Len(),
		"category", rec.Category)
	return rec
}

// fromStructured handles documents with paragraphs and tables.
func (p *Pipeline) fromStructured(src *Source, tables []types.Table) *types.DisciplineRecord {
	rec := types.NewDisciplineRecord()
	p.applyMetadata(rec, src)

	rec.Description = p.run("description", p.description, src)
	rec.Goals = p.run("goals", p.goals, src)
	rec.Outcomes = p.metadata.Outcomes(src.Lines, tables)
	rec.Software = p.software.Extract(src, tables)
	rec.Literature = p.bibliography(src.Lines, tables)
	rec.Sections = p.syllabus.Extract(tables)
	return rec
}

// fromText handles documents that only have flattened text lines.
func (p *Pipeline) fromText(src *Source) *types.DisciplineRecord {
	rec := types.NewDisciplineRecord()
	p.applyMetadata(rec, src)

	rec.Description = p.run("description", p.textDescription, src)
	rec.Goals = p.run("goals", p.textGoals, src)
	rec.Outcomes = p.metadata.Outcomes([]string{src.Text}, nil)
	rec.Software = p.software.ExtractText(src.Text)
	rec.Literature = p.literature.FromText(src.Text)
	rec.Sections = p.textSections.Extract(src.Text)
	return rec
}

func (p *Pipeline) applyMetadata(rec *types.DisciplineRecord, src *Source) {
	md := p.metadata.Extract(src)
	rec.Name = md.Name
	rec.Level = md.Level
	rec.Program = md.Program
	rec.Direction = md.Direction
	rec.Period = md.Period
	rec.Volume = md.Volume
	rec.VolumeDetails = md.VolumeDetails
}

// bibliography reads the paragraphs first; tables are added when fewer
// than two entries were found, and the numbered-line sweep runs only when
// both found nothing.
func (p *Pipeline) bibliography(lines []string, tables []types.Table) types.LiteratureSet {
	lit := p.literature.FromLines(lines)
	if lit.Len() < minParagraphEntries {
		fromTables := p.literature.FromTables(tables)
		lit.Main = append(lit.Main, fromTables.Main...)
		lit.Additional = append(lit.Additional, fromTables.Additional...)
	}
	if lit.Len() == 0 {
		lit = p.literature.FromNumberedLines(lines)
	}
	return lit
}

func (p *Pipeline) run(field string, c Chain, src *Source) string {
	v, tier := c.Run(src)
	if tier == "" {
		p.logger.Debug("field not found", "field", field)
	} else {
		p.logger.Debug("field found", "field", field, "tier", tier, "len", text.Len(v))
	}
	return v
}
