package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// args is a parsed command tail: bare words in order plus key=value pairs.
type args struct {
	pos []string
	kv  map[string]string
}

// parseArgs splits on spaces; double quotes group words (color="Calacatta Gold").
func parseArgs(s string, allowed ...string) (args, error) {
	a := args{kv: map[string]string{}}
	tokens, err := tokenize(s)
	if err != nil {
		return a, err
	}
	for _, t := range tokens {
		k, v, ok := strings.Cut(t, "=")
		if !ok {
			a.pos = append(a.pos, t)
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if !lo.Contains(allowed, k) {
			return a, fmt.Errorf("unknown argument %q", k)
		}
		a.kv[k] = strings.TrimSpace(v)
	}
	return a, nil
}

func tokenize(s string) ([]string, error) {
	var (
		out     []string
		cur     strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case (r == ' ' || r == '\t' || r == '\n') && !quoted:
			if started {
				out = append(out, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if quoted {
		return nil, errors.New("unterminated quote")
	}
	if started {
		out = append(out, cur.String())
	}
	return out, nil
}

func (a args) get(k string) string { return a.kv[k] }

func (a args) first() string {
	if len(a.pos) == 0 {
		return ""
	}
	return a.pos[0]
}

// flag reports yes/true/1/on values.
func (a args) flag(k string) bool {
	switch strings.ToLower(a.kv[k]) {
	case "yes", "true", "1", "on":
		return true
	}
	return false
}

// optFlag is nil when k is absent, so updates leave the stored value alone.
func (a args) optFlag(k string) *bool {
	if _, ok := a.kv[k]; !ok {
		return nil
	}
	v := a.flag(k)
	return &v
}
