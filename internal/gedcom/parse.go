package gedcom

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxTagLength bounds GEDCOM tag names per the 5.5.1 grammar.
const maxTagLength = 31

// Line is one parsed GEDCOM line: LEVEL [XREF] TAG [VALUE].
type Line struct {
	Level      int
	XRef       string
	Tag        string
	Value      string
	LineNumber int
}

// ParseError reports a malformed line with its position and content.
type ParseError struct {
	Line    int
	Message string
	Context string
}

func (e *ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("line %d: %s (context: %q)", e.Line, e.Message, e.Context)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parser parses GEDCOM text line by line, tracking level continuity.
type Parser struct {
	lineNumber int
	lastLevel  int
}

// NewParser returns a fresh parser.
func NewParser() *Parser {
	return &Parser{lastLevel: -1}
}

// ParseLine parses a single GEDCOM line.
func (p *Parser) ParseLine(input string) (*Line, error) {
	p.lineNumber++
	raw := strings.TrimRight(input, "\r\n")

	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Line: p.lineNumber, Message: "empty line", Context: input}
	}

	parts := strings.Fields(raw)
	if len(parts) < 2 {
		return nil, &ParseError{Line: p.lineNumber, Message: "line must have at least level and tag", Context: raw}
	}

	level, err := strconv.Atoi(parts[0])
	if err != nil || level < 0 {
		return nil, &ParseError{Line: p.lineNumber, Message: fmt.Sprintf("invalid level %q", parts[0]), Context: raw}
	}
	if p.lastLevel >= 0 && level > p.lastLevel+1 {
		return nil, &ParseError{Line: p.lineNumber, Message: fmt.Sprintf("level jump from %d to %d", p.lastLevel, level), Context: raw}
	}

	var xref, tag string
	if strings.HasPrefix(parts[1], "@") && strings.HasSuffix(parts[1], "@") {
		xref = strings.Trim(parts[1], "@")
		if xref == "" {
			return nil, &ParseError{Line: p.lineNumber, Message: "empty xref", Context: raw}
		}
		if len(parts) < 3 {
			return nil, &ParseError{Line: p.lineNumber, Message: "line with xref must have a tag", Context: raw}
		}
		tag = parts[2]
	} else {
		tag = parts[1]
	}

	if err := validateTag(tag); err != nil {
		return nil, &ParseError{Line: p.lineNumber, Message: err.Error(), Context: raw}
	}

	// The value is everything after the tag token, original spacing
	// preserved. Search from past the xref so a tag that also appears
	// inside the xref (as in "0 @SUBM@ SUBM") is not matched there.
	var value string
	tagToken := 1
	from := strings.Index(raw, parts[0]) + len(parts[0])
	if xref != "" {
		tagToken = 2
		from = strings.Index(raw, "@"+xref+"@") + len(xref) + 2
	}
	if len(parts) > tagToken+1 {
		if idx := strings.Index(raw[from:], tag); idx >= 0 {
			value = strings.TrimLeft(raw[from+idx+len(tag):], " ")
		}
	}

	p.lastLevel = level
	return &Line{Level: level, XRef: xref, Tag: tag, Value: value, LineNumber: p.lineNumber}, nil
}

// Parse reads GEDCOM text and returns every parsed line.
func (p *Parser) Parse(r io.Reader) ([]*Line, error) {
	p.lineNumber = 0
	p.lastLevel = -1

	scanner := bufio.NewScanner(r)
	var lines []*Line
	for scanner.Scan() {
		line, err := p.ParseLine(scanner.Text())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

func validateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("empty tag")
	}
	if len(tag) > maxTagLength {
		return fmt.Errorf("tag %q exceeds %d characters", tag, maxTagLength)
	}
	for _, r := range tag {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return fmt.Errorf("invalid tag %q: expected A-Z, 0-9 or underscore", tag)
		}
	}
	return nil
}

// Record is one level-0 record with its subordinate lines.
type Record struct {
	XRef  string
	Tag   string
	Lines []*Line
}

// GroupRecords splits a parsed line stream into level-0 records.
func GroupRecords(lines []*Line) []*Record {
	var records []*Record
	var current *Record
	for _, l := range lines {
		if l.Level == 0 {
			current = &Record{XRef: l.XRef, Tag: l.Tag}
			records = append(records, current)
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, l)
		}
	}
	return records
}

// Values returns the values of every direct (level-1) line with the given tag.
func (r *Record) Values(tag string) []string {
	var out []string
	for _, l := range r.Lines {
		if l.Level == 1 && l.Tag == tag {
			out = append(out, l.Value)
		}
	}
	return out
}

// Value returns the first direct line value for tag, or "".
func (r *Record) Value(tag string) string {
	vals := r.Values(tag)
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// EventDate returns the DATE subordinate to the first level-1 line with the
// given event tag, or "" when the event or its date is absent.
func (r *Record) EventDate(tag string) string {
	inEvent := false
	for _, l := range r.Lines {
		if l.Level == 1 {
			inEvent = l.Tag == tag
			continue
		}
		if inEvent && l.Level == 2 && l.Tag == "DATE" {
			return l.Value
		}
	}
	return ""
}
