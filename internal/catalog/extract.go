package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"sjsage522/courseadvisor/helpers"
	"sjsage522/courseadvisor/pkg/errors"
)

const (
	nameMarker        = "course-name"
	descriptionMarker = "course-descriptions"
)

var (
	lineBreak          = regexp.MustCompile(`\r\n|\r|\n`)
	namePattern        = regexp.MustCompile(`"course-name">(.*?)</p>`)
	descriptionPattern = regexp.MustCompile(`course-descriptions">(.*?)</p>`)
)

// Extract scans a catalog page line by line and returns its entries in
// page order. A page with no markers yields an empty, non-nil slice.
// Lines end at \r\n, \r or \n.
func Extract(subject Subject, page []byte) ([]Entry, error) {
	entries, _, err := ExtractWithStats(subject, page, "")
	return entries, err
}

// ExtractWithStats is Extract plus the scanner's counters. contentType is
// the header the page was served with; its charset, or the page's own meta
// declaration, is named in the decoding error.
func ExtractWithStats(subject Subject, page []byte, contentType string) ([]Entry, Stats, error) {
	if !utf8.Valid(page) {
		msg := fmt.Sprintf("page is not valid UTF-8 (declared charset %s)", helpers.DeclaredCharset(page, contentType))
		return nil, Stats{}, errors.NewDecoding(string(subject), msg)
	}

	p := newPairer()
	for _, line := range lineBreak.Split(string(page), -1) {
		// a line carrying both markers counts as a name line
		if strings.Contains(line, nameMarker) {
			if m := namePattern.FindStringSubmatch(line); m != nil {
				p.name(m[1])
			}
		} else if strings.Contains(line, descriptionMarker) {
			if m := descriptionPattern.FindStringSubmatch(line); m != nil {
				p.description(m[1])
			}
		}
	}

	return p.finish(), p.stats, nil
}

type pairState int

const (
	awaitingName pairState = iota
	awaitingDescription
)

// pairer joins name lines with the description line that follows them.
//
// A name arriving while another is pending flushes the pending one with an
// empty description. A description with no pending name is dropped. A name
// still pending at end of page is flushed with an empty description.
type pairer struct {
	state   pairState
	pending string
	entries []Entry
	stats   Stats
}

func newPairer() *pairer {
	return &pairer{state: awaitingName, entries: []Entry{}}
}

func (p *pairer) name(name string) {
	p.stats.Names++
	if p.state == awaitingDescription {
		p.flushOrphan()
	}
	p.pending = name
	p.state = awaitingDescription
}

func (p *pairer) description(description string) {
	p.stats.Descriptions++
	if p.state == awaitingName {
		p.stats.OrphanDescriptions++
		return
	}
	p.entries = append(p.entries, Entry{Name: p.pending, Description: description})
	p.pending = ""
	p.state = awaitingName
}

func (p *pairer) flushOrphan() {
	p.stats.OrphanNames++
	p.entries = append(p.entries, Entry{Name: p.pending})
	p.pending = ""
	p.state = awaitingName
}

func (p *pairer) finish() []Entry {
	if p.state == awaitingDescription {
		p.flushOrphan()
	}
	return p.entries
}
