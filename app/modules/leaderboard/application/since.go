package leaderboardservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var sinceParser = newSinceParser()

func newSinceParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// parseSince resolves a since filter relative to now. An empty value means no
// filter. RFC 3339 timestamps are taken verbatim; anything else goes through
// the English natural-language parser ("yesterday", "2 days ago").
func parseSince(value string, now time.Time) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}

	lower := strings.ToLower(value)
	r, err := sinceParser.Parse(lower, now)
	// The parser finds expressions anywhere in the text; only a match of the
	// whole value counts.
	if err != nil || r == nil || r.Index != 0 || strings.TrimSpace(r.Text) != lower {
		return nil, fmt.Errorf("%w: could not understand since %q", ErrValidation, value)
	}

	t := r.Time.UTC()
	return &t, nil
}
