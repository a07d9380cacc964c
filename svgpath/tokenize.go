package svgpath

import (
	"regexp"
	"strconv"
)

// This file splits a raw path string into command segments and lexes
// their argument text into numbers. Both steps use plain text
// matching, after the convention popularized by jkroso/parse-svg-path:
// a command letter starts a segment, and everything up to the next
// command letter is its argument text.

// numberRe matches one signed decimal, with flexible separators
// handled outside the match (commas, blanks, juxtaposed signs and
// decimal points).
var numberRe = regexp.MustCompile(`-?[0-9]*\.?[0-9]+`)

// rawSegment is one command letter with its yet unparsed argument
// text, consumed immediately by the command handlers.
type rawSegment struct {
	command byte
	args    string
	pos     int // byte offset of the command letter in the source string
}

func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'Z',
		'm', 'l', 'h', 'v', 'c', 's', 'q', 't', 'z':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', ',':
		return true
	}
	return false
}

// tokenizePath splits the raw path string into ordered command
// segments. A blank string yields zero segments; text before the
// first command letter is rejected.
func tokenizePath(d string) ([]rawSegment, error) {
	var segs []rawSegment
	start := -1 // index of the pending segment's command letter
	for i := 0; i < len(d); i++ {
		if !isCommandLetter(d[i]) {
			continue
		}
		if start >= 0 {
			segs = append(segs, rawSegment{command: d[start], args: d[start+1 : i], pos: start})
		} else if err := checkBlank(d[:i], 0); err != nil {
			return nil, err
		}
		start = i
	}
	if start >= 0 {
		segs = append(segs, rawSegment{command: d[start], args: d[start+1:], pos: start})
	} else if err := checkBlank(d, 0); err != nil {
		return nil, err
	}
	return segs, nil
}

// checkBlank errors on the first byte of `text` which is neither a
// blank nor a comma. `text` starts at byte offset `pos` of the source
// string. Letters are reported as unsupported commands so that inputs
// such as elliptical arcs fail with the precise reason.
func checkBlank(text string, pos int) error {
	for i := 0; i < len(text); i++ {
		if isSeparator(text[i]) {
			continue
		}
		kind := MalformedArguments
		if isLetter(text[i]) {
			kind = UnsupportedCommand
		}
		return &ParseError{Kind: kind, Segment: text, Pos: pos + i}
	}
	return nil
}

// scanNumbers lexes the segment's argument text into float values.
// Everything outside the number matches must be blanks or commas.
func (seg rawSegment) scanNumbers() ([]float64, error) {
	locs := numberRe.FindAllStringIndex(seg.args, -1)
	vals := make([]float64, 0, len(locs))
	prev := 0
	for _, loc := range locs {
		if err := seg.checkGap(prev, loc[0]); err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(seg.args[loc[0]:loc[1]], 64)
		if err != nil {
			return nil, &ParseError{Kind: MalformedArguments, Segment: seg.text(), Pos: seg.argPos(loc[0])}
		}
		vals = append(vals, v)
		prev = loc[1]
	}
	if err := seg.checkGap(prev, len(seg.args)); err != nil {
		return nil, err
	}
	return vals, nil
}

// checkGap validates the argument text between two number matches.
func (seg rawSegment) checkGap(from, to int) error {
	for i := from; i < to; i++ {
		c := seg.args[i]
		if isSeparator(c) {
			continue
		}
		kind := MalformedArguments
		if isLetter(c) {
			kind = UnsupportedCommand
		}
		return &ParseError{Kind: kind, Segment: seg.text(), Pos: seg.argPos(i)}
	}
	return nil
}

// text reconstructs the full segment text for error reports.
func (seg rawSegment) text() string {
	return string(seg.command) + seg.args
}

// argPos maps an offset into the argument text back to the source string.
func (seg rawSegment) argPos(i int) int {
	return seg.pos + 1 + i
}

// newError reports a failure to expand this segment.
func (seg rawSegment) newError(kind ErrKind) *ParseError {
	return &ParseError{Kind: kind, Segment: seg.text(), Pos: seg.pos}
}
