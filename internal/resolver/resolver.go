// Package resolver maps free-text input lines to known command keywords.
//
// Resolution runs in tiers: an exact (case-insensitive) keyword match, then
// commands containing the typed word (three runes or more), then similarity:
// a single candidate above the auto-accept ratio, a single candidate above
// the suggest ratio (needs confirmation), or several candidates (needs a
// choice).
package resolver

import (
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tartampluch/contactbook/internal/config"
)

// Kind is the confidence tier of a Resolution.
type Kind int

const (
	// Unknown means no command is close enough; the input is discarded.
	Unknown Kind = iota
	// Certain means the command can be dispatched right away.
	Certain
	// Tentative means one fuzzy candidate needs a yes/no confirmation.
	Tentative
	// Ambiguous means several candidates need a numbered choice.
	Ambiguous
)

func (k Kind) String() string {
	switch k {
	case Certain:
		return "certain"
	case Tentative:
		return "tentative"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving one input line.
type Resolution struct {
	Kind Kind
	// Input is the first token as typed.
	Input string
	// Command is set for Certain and Tentative results.
	Command string
	// Candidates is set for Ambiguous results, best match first.
	Candidates []string
	// Args are the tokens after the first one. They travel with the
	// command through confirmation and selection.
	Args []string
}

// Resolver matches input against a closed list of command keywords.
type Resolver struct {
	commands   []string
	priority   []string
	autoAccept float64
	suggest    float64
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithThresholds sets the auto-accept and suggest ratios.
func WithThresholds(autoAccept, suggest float64) Option {
	return func(r *Resolver) {
		r.autoAccept = autoAccept
		r.suggest = suggest
	}
}

// WithPriority registers keywords that only ever match exactly and are
// never offered as fuzzy candidates (exit verbs).
func WithPriority(keywords ...string) Option {
	return func(r *Resolver) {
		for _, k := range keywords {
			r.priority = append(r.priority, strings.ToLower(k))
		}
	}
}

// New creates a Resolver over commands. Order of commands breaks ties
// between equally similar candidates.
func New(commands []string, opts ...Option) *Resolver {
	r := &Resolver{
		autoAccept: config.DefaultAutoAcceptRatio,
		suggest:    config.DefaultSuggestRatio,
	}
	for _, c := range commands {
		r.commands = append(r.commands, strings.ToLower(c))
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve tokenizes line and classifies its first token.
func (r *Resolver) Resolve(line string) Resolution {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Resolution{Kind: Unknown}
	}
	res := Resolution{Input: tokens[0], Args: tokens[1:]}
	word := strings.ToLower(tokens[0])

	if slices.Contains(r.priority, word) || slices.Contains(r.commands, word) {
		res.Kind = Certain
		res.Command = word
		return res
	}

	if len([]rune(word)) >= config.MinContainLength {
		if contained := r.containing(word); len(contained) > 0 {
			r.pick(&res, contained)
			r.log(word, res)
			return res
		}
	}

	var high, low []scored
	for _, c := range r.fuzzy() {
		s := Similarity(word, c)
		if s >= r.autoAccept {
			high = append(high, scored{c, s})
		}
		if s >= r.suggest {
			low = append(low, scored{c, s})
		}
	}

	switch {
	case len(high) == 1:
		res.Kind = Certain
		res.Command = high[0].command
	case len(low) == 1:
		res.Kind = Tentative
		res.Command = low[0].command
	case len(low) > 1:
		res.Kind = Ambiguous
		res.Candidates = byScore(low)
	default:
		res.Kind = Unknown
	}

	r.log(word, res)
	return res
}

type scored struct {
	command string
	score   float64
}

// fuzzy returns the commands that may be guessed, in registration order.
func (r *Resolver) fuzzy() []string {
	var out []string
	for _, c := range r.commands {
		if !slices.Contains(r.priority, c) {
			out = append(out, c)
		}
	}
	return out
}

// containing scores the guessable commands that contain word.
func (r *Resolver) containing(word string) []scored {
	var out []scored
	for _, c := range r.fuzzy() {
		if strings.Contains(c, word) {
			out = append(out, scored{c, Similarity(word, c)})
		}
	}
	return out
}

// pick settles a containment match: a single container, or a single
// container above the auto-accept ratio, is certain; otherwise the user
// chooses among all containers.
func (r *Resolver) pick(res *Resolution, contained []scored) {
	if len(contained) == 1 {
		res.Kind = Certain
		res.Command = contained[0].command
		return
	}
	var high []scored
	for _, c := range contained {
		if c.score >= r.autoAccept {
			high = append(high, c)
		}
	}
	if len(high) == 1 {
		res.Kind = Certain
		res.Command = high[0].command
		return
	}
	res.Kind = Ambiguous
	res.Candidates = byScore(contained)
}

// byScore orders candidates best first; ties keep registration order.
func byScore(cands []scored) []string {
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].score > cands[j].score })
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.command
	}
	return out
}

func (r *Resolver) log(word string, res Resolution) {
	slog.Debug(config.MsgResolved,
		config.LogKeyComponent, config.CompResolver,
		config.LogKeyInput, word,
		config.LogKeyKind, res.Kind.String(),
		config.LogKeyCommand, res.Command,
	)
}

// Commands returns the fuzzy-matchable keywords in registration order.
func (r *Resolver) Commands() []string {
	return slices.Clone(r.commands)
}

// Similarity is a normalized edit-distance ratio: 1 - d/(len(a)+len(b)),
// where d is the Levenshtein distance between the lower-cased strings.
// It is symmetric, lies in [0,1] and equals 1 only for strings that are
// identical up to case.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(total)
}
