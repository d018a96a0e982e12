package script

import (
	"slices"
	"strings"
	"sync"
)

// AllSpeakers selects every speech in play order.
const AllSpeakers = ""

// Play indexes an ordered speech sequence by speaker and memoizes queries over
// it. It is safe for concurrent use.
type Play struct {
	mu    sync.Mutex
	state *playState
}

// playState is everything derived from one speech sequence. Replace swaps the
// whole state so the cache can never outlive the speeches it describes.
type playState struct {
	speeches []Speech
	speakers []string
	index    map[string][]int
	cache    *memo
}

// SpeakerStats summarizes one speaker.
type SpeakerStats struct {
	Speaker      string  `json:"speaker" yaml:"speaker"`
	Speeches     int     `json:"speeches" yaml:"speeches"`
	Words        int     `json:"words" yaml:"words"`
	AverageWords float64 `json:"average_words" yaml:"average_words"`
}

// NewPlay builds the speaker index for speeches.
func NewPlay(speeches []Speech) *Play {
	return &Play{state: newPlayState(speeches)}
}

func newPlayState(speeches []Speech) *playState {
	st := &playState{
		speeches: slices.Clone(speeches),
		index:    make(map[string][]int),
		cache:    newMemo(),
	}
	for i, sp := range st.speeches {
		if _, seen := st.index[sp.speaker]; !seen {
			st.speakers = append(st.speakers, sp.speaker)
		}
		st.index[sp.speaker] = append(st.index[sp.speaker], i)
	}
	return st
}

// Replace swaps in a new speech sequence, rebuilding the index and discarding
// every cached result.
func (p *Play) Replace(speeches []Speech) {
	st := newPlayState(speeches)
	p.mu.Lock()
	p.state = st
	p.mu.Unlock()
}

func (p *Play) current() *playState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Len returns the number of speeches.
func (p *Play) Len() int {
	return len(p.current().speeches)
}

// Speakers returns speaker names in order of first appearance.
func (p *Play) Speakers() []string {
	return slices.Clone(p.current().speakers)
}

// LineCount returns the number of speeches attributed to speaker, 0 if absent.
func (p *Play) LineCount(speaker string) int {
	return p.current().lineCount(speaker)
}

// WordCount returns the total tokens across speaker's speeches, 0 if absent.
func (p *Play) WordCount(speaker string) int {
	return p.current().wordCount(speaker)
}

// AverageWords returns WordCount/LineCount. A speaker with no speeches yields an
// *UndefinedMetricError rather than 0 or NaN.
func (p *Play) AverageWords(speaker string) (float64, error) {
	return p.current().averageWords(speaker)
}

// Speeches returns the whole play for AllSpeakers, otherwise speaker's
// speeches in play order.
func (p *Play) Speeches(speaker string) []Speech {
	st := p.current()
	selected := memoize(st.cache, "speeches", func() []Speech {
		return st.selectSpeeches(speaker)
	}, speaker)
	return slices.Clone(selected)
}

// Text reconstructs the selected speeches verbatim: each speaker name followed
// by its lines, all separated by newlines.
func (p *Play) Text(speaker string) string {
	st := p.current()
	return memoize(st.cache, "text", func() string {
		return st.render(speaker, Speech.Text)
	}, speaker)
}

// NormalizedText renders the same selection as Text with each body replaced by
// its space-joined lowercase tokens.
func (p *Play) NormalizedText(speaker string) string {
	st := p.current()
	return memoize(st.cache, "normalizedText", func() string {
		return st.render(speaker, func(sp Speech) string {
			return strings.Join(sp.Words(), " ")
		})
	}, speaker)
}

// Stats summarizes every speaker in order of first appearance.
func (p *Play) Stats() []SpeakerStats {
	st := p.current()
	stats := memoize(st.cache, "stats", func() []SpeakerStats {
		out := make([]SpeakerStats, 0, len(st.speakers))
		for _, speaker := range st.speakers {
			row := SpeakerStats{
				Speaker:  speaker,
				Speeches: st.lineCount(speaker),
				Words:    st.wordCount(speaker),
			}
			if avg, err := st.averageWords(speaker); err == nil {
				row.AverageWords = avg
			}
			out = append(out, row)
		}
		return out
	})
	return slices.Clone(stats)
}

func (st *playState) lineCount(speaker string) int {
	return memoize(st.cache, "lineCount", func() int {
		return len(st.index[speaker])
	}, speaker)
}

func (st *playState) wordCount(speaker string) int {
	return memoize(st.cache, "wordCount", func() int {
		total := 0
		for _, i := range st.index[speaker] {
			total += st.speeches[i].WordCount()
		}
		return total
	}, speaker)
}

type averageResult struct {
	value float64
	err   error
}

func (st *playState) averageWords(speaker string) (float64, error) {
	res := memoize(st.cache, "averageWords", func() averageResult {
		lines := st.lineCount(speaker)
		if lines == 0 {
			return averageResult{err: &UndefinedMetricError{Metric: "average words", Speaker: speaker}}
		}
		return averageResult{value: float64(st.wordCount(speaker)) / float64(lines)}
	}, speaker)
	return res.value, res.err
}

func (st *playState) render(speaker string, body func(Speech) string) string {
	selected := st.selectSpeeches(speaker)
	parts := make([]string, 0, 2*len(selected))
	for _, sp := range selected {
		parts = append(parts, sp.speaker, body(sp))
	}
	return strings.Join(parts, "\n")
}

func (st *playState) selectSpeeches(speaker string) []Speech {
	if speaker == AllSpeakers {
		return slices.Clone(st.speeches)
	}
	indices := st.index[speaker]
	out := make([]Speech, 0, len(indices))
	for _, i := range indices {
		out = append(out, st.speeches[i])
	}
	return out
}
