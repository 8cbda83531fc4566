package catalog

import "context"

// Subject is a department code such as CSE or BIOL
type Subject string

// Entry is one course extracted from a catalog page
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Stats counts what the line scanner saw on one page
type Stats struct {
	Names              int `json:"names"`
	Descriptions       int `json:"descriptions"`
	OrphanNames        int `json:"orphan_names"`
	OrphanDescriptions int `json:"orphan_descriptions"`
}

// Result is the outcome of one subject's extraction run
type Result struct {
	Subject      Subject
	Entries      []Entry
	Stats        Stats
	ArtifactPath string
}

// Extractor interface defines the contract for a per-subject extraction run
type Extractor interface {
	// Run fetches the subject's page, extracts entries and writes the artifact
	Run(ctx context.Context) (*Result, error)

	// GetSubject returns the subject code this extractor handles
	GetSubject() Subject
}
