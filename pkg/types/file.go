// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FileStatus records the processing state of a stored upload.
type FileStatus string

const FileProcessed FileStatus = "processed"

// FileInfo is the listing view of a stored, analyzed document.
type FileInfo struct {
	ID             string     `json:"id" yaml:"id"`
	Filename       string     `json:"filename" yaml:"filename"`
	UploadDate     string     `json:"upload_date" yaml:"upload_date"`
	FileSize       int64      `json:"file_size" yaml:"file_size"`
	Status         FileStatus `json:"status" yaml:"status"`
	DisciplineName string     `json:"discipline_name" yaml:"discipline_name"`
	Category       Category   `json:"category" yaml:"category"`
}

// Analysis is a stored or freshly parsed record together with its graph.
type Analysis struct {
	FileID   string            `json:"file_id" yaml:"file_id"`
	Metadata *DisciplineRecord `json:"metadata" yaml:"metadata"`
	Graph    `yaml:",inline"`
}

// MultiAnalysis is the combined view over several stored records.
type MultiAnalysis struct {
	Disciplines []*DisciplineRecord `json:"disciplines" yaml:"disciplines"`
	Graph       `yaml:",inline"`
}
