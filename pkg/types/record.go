// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the curriculum-graph pipeline:
// the parsed discipline record, its sections and bibliography, the decoded
// document handed to the extractors, and the graph projection built from a
// record.
package types

// Category classifies a discipline into one of three subject domains.
type Category string

const (
	CategoryTechnical      Category = "technical"
	CategoryHumanitarian   Category = "humanitarian"
	CategoryNaturalScience Category = "natural_science"
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnical, CategoryHumanitarian, CategoryNaturalScience:
		return true
	}
	return false
}

// Defaults applied to fields the extractors could not recover.
const (
	DefaultName   = "Без названия"
	DefaultPeriod = "-"
	DefaultVolume = "-"
	DefaultHours  = "0"
)

// DisciplineRecord is the structured result of parsing one curriculum document.
// Every field is always present; fields the extractors found no evidence for
// hold their zero or default value.
type DisciplineRecord struct {
	// Name is the discipline title, DefaultName when not recovered.
	Name string `json:"name" yaml:"name"`

	// Direction is the training direction code and title (e.g. "09.03.01 Информатика").
	Direction string `json:"direction" yaml:"direction"`

	// Program is the educational program name.
	Program string `json:"edu_program" yaml:"edu_program"`

	// Level is the degree level (Бакалавриат, Магистратура, ...).
	Level string `json:"edu_level" yaml:"edu_level"`

	// Period is the semester span as written in the document.
	Period string `json:"period" yaml:"period"`

	// Volume is the credit volume normalised to "N з.е.".
	Volume string `json:"volume" yaml:"volume"`

	// VolumeDetails is the free-text workload breakdown.
	VolumeDetails string `json:"volume_details" yaml:"volume_details"`

	Goals       string   `json:"goals" yaml:"goals"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`

	// Sections are in document order.
	Sections []Section `json:"sections" yaml:"sections"`

	// Outcomes are unique competency codes such as "ПК-3", in discovery order.
	Outcomes []string `json:"outcomes" yaml:"outcomes"`

	// Software names are unique (case-insensitively) and in discovery order.
	Software []string `json:"software" yaml:"software"`

	Literature LiteratureSet `json:"literature" yaml:"literature"`
}

// NewDisciplineRecord returns a record with every field set to its default.
func NewDisciplineRecord() *DisciplineRecord {
	return &DisciplineRecord{
		Name:     DefaultName,
		Period:   DefaultPeriod,
		Volume:   DefaultVolume,
		Category: CategoryTechnical,
		Sections: []Section{},
		Outcomes: []string{},
		Software: []string{},
		Literature: LiteratureSet{
			Main:       []LiteratureEntry{},
			Additional: []LiteratureEntry{},
		},
	}
}

// Hours holds workload hours per activity kind as numeric strings.
type Hours struct {
	Lectures  string `json:"lectures" yaml:"lectures"`
	Practice  string `json:"practice" yaml:"practice"`
	Labs      string `json:"labs" yaml:"labs"`
	SelfStudy string `json:"self_study" yaml:"self_study"`
}

// ZeroHours returns Hours with every field set to DefaultHours.
func ZeroHours() Hours {
	return Hours{
		Lectures:  DefaultHours,
		Practice:  DefaultHours,
		Labs:      DefaultHours,
		SelfStudy: DefaultHours,
	}
}

// Section is one syllabus topic recovered from the workload table.
type Section struct {
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
	Hours   Hours  `json:"hours" yaml:"hours"`

	// LinkedSoftware references entries of DisciplineRecord.Software by name.
	LinkedSoftware []string `json:"linked_software" yaml:"linked_software"`
}

// EntryType is the coarse medium of a bibliography entry.
type EntryType string

const (
	EntryBook     EntryType = "book"
	EntryArticle  EntryType = "article"
	EntryWeb      EntryType = "web"
	EntryEBS      EntryType = "ebs"
	EntryStandard EntryType = "standard"
	EntryUnknown  EntryType = "unknown"
)

// LiteratureEntry is one parsed bibliography line. Raw is always kept; the
// remaining fields are best-effort and may be empty.
type LiteratureEntry struct {
	Raw       string    `json:"raw" yaml:"raw"`
	Number    *string   `json:"number" yaml:"number"`
	Authors   []string  `json:"authors" yaml:"authors"`
	Title     string    `json:"title" yaml:"title"`
	Year      string    `json:"year" yaml:"year"`
	Publisher string    `json:"publisher" yaml:"publisher"`
	Pages     string    `json:"pages" yaml:"pages"`
	URL       string    `json:"url" yaml:"url"`
	DOI       string    `json:"doi" yaml:"doi"`
	ISBN      string    `json:"isbn" yaml:"isbn"`
	EntryType EntryType `json:"entry_type" yaml:"entry_type"`
}

// LiteratureSet splits the bibliography into primary and supplementary lists.
type LiteratureSet struct {
	Main       []LiteratureEntry `json:"main" yaml:"main"`
	Additional []LiteratureEntry `json:"additional" yaml:"additional"`
}

// Len returns the total number of entries in both lists.
func (l LiteratureSet) Len() int {
	return len(l.Main) + len(l.Additional)
}
