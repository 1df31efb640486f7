/*
 Rewrites the accent fill of folder icons.
 Only the first fill declaration of a document is touched, either a `.st0{fill:#RRGGBB}` style rule
 or a `path fill="#RRGGBB"` attribute. Anything else in the SVG is left as is.
*/

package svgcolor

import (
	"errors"
	"regexp"
	"strings"
)

var ErrNoFill = errors.New("no fill color found")

// group 1: style rule, group 2: path attribute
var fillRe = regexp.MustCompile(`\.st0\{fill:#([0-9a-fA-F]{6})\}|path fill="#([0-9a-fA-F]{6})"`)

type Result struct {
	Content string
	Matched bool
}

// Recolor replaces the six hex digits of the first fill declaration with color.
// A leading '#' on color is ignored.
func Recolor(content, color string) Result {
	color = strings.TrimPrefix(color, "#")

	loc := fillRe.FindStringSubmatchIndex(content)
	if loc == nil {
		return Result{Content: content}
	}

	start, end := loc[2], loc[3]
	if start < 0 {
		start, end = loc[4], loc[5]
	}

	return Result{
		Content: content[:start] + color + content[end:],
		Matched: true,
	}
}

// MustRecolor is Recolor for callers that treat a miss as a failure.
func MustRecolor(content, color string) (string, error) {
	res := Recolor(content, color)
	if !res.Matched {
		return content, ErrNoFill
	}
	return res.Content, nil
}

// HasFill reports whether Recolor would find something to replace.
func HasFill(content string) bool {
	return fillRe.MatchString(content)
}
