package diff

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"sproct/internal/script"
)

func TestAlignIdentical(t *testing.T) {
	x := []string{"to", "be", "or", "not", "to", "be"}
	res := Align(x, x)
	want := []Opcode{{Tag: Equal, A1: 0, A2: 6, B1: 0, B2: 6}}
	if !slices.Equal(res.Opcodes, want) {
		t.Fatalf("Opcodes = %+v, want %+v", res.Opcodes, want)
	}
	if res.Ratio != 1 || res.Matched != 6 {
		t.Fatalf("Ratio = %v Matched = %d", res.Ratio, res.Matched)
	}
}

func TestAlignCases(t *testing.T) {
	tests := []struct {
		name  string
		a, b  []string
		ratio float64
		ops   []Opcode
	}{
		{
			name:  "both empty",
			ratio: 1,
			ops:   []Opcode{},
		},
		{
			name:  "only a",
			a:     []string{"a"},
			ratio: 0,
			ops:   []Opcode{{Tag: Delete, A1: 0, A2: 1, B1: 0, B2: 0}},
		},
		{
			name:  "only b",
			b:     []string{"a", "b"},
			ratio: 0,
			ops:   []Opcode{{Tag: Insert, A1: 0, A2: 0, B1: 0, B2: 2}},
		},
		{
			name:  "middle replaced",
			a:     []string{"a", "b", "c"},
			b:     []string{"a", "x", "c"},
			ratio: 4.0 / 6.0,
			ops: []Opcode{
				{Tag: Equal, A1: 0, A2: 1, B1: 0, B2: 1},
				{Tag: Replace, A1: 1, A2: 2, B1: 1, B2: 2},
				{Tag: Equal, A1: 2, A2: 3, B1: 2, B2: 3},
			},
		},
		{
			name:  "disjoint",
			a:     []string{"a", "b"},
			b:     []string{"c"},
			ratio: 0,
			ops:   []Opcode{{Tag: Replace, A1: 0, A2: 2, B1: 0, B2: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Align(tt.a, tt.b)
			if res.Ratio != tt.ratio {
				t.Fatalf("Ratio = %v, want %v", res.Ratio, tt.ratio)
			}
			if !slices.Equal(res.Opcodes, tt.ops) {
				t.Fatalf("Opcodes = %+v, want %+v", res.Opcodes, tt.ops)
			}
		})
	}
}

func TestAlignPropertiesOnRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	alphabet := []string{"a", "b", "c", "d"}
	randomSeq := func() []string {
		out := make([]string, rng.IntN(12))
		for i := range out {
			out[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return out
	}

	for round := 0; round < 300; round++ {
		a, b := randomSeq(), randomSeq()
		res := Align(a, b)
		checkCoverage(t, a, b, res)

		if back := Align(b, a); back.Ratio != res.Ratio {
			t.Fatalf("round %d: ratio not symmetric: %v vs %v (a=%v b=%v)", round, res.Ratio, back.Ratio, a, b)
		}
		if res.Ratio < 0 || res.Ratio > 1 {
			t.Fatalf("round %d: ratio %v out of range", round, res.Ratio)
		}
	}
}

func checkCoverage(t *testing.T, a, b []string, res Result) {
	t.Helper()
	i, j, matched := 0, 0, 0
	for _, op := range res.Opcodes {
		if op.A1 != i || op.B1 != j {
			t.Fatalf("opcode %+v does not continue from (%d,%d); a=%v b=%v", op, i, j, a, b)
		}
		switch op.Tag {
		case Equal:
			if !slices.Equal(a[op.A1:op.A2], b[op.B1:op.B2]) {
				t.Fatalf("equal opcode %+v spans different elements", op)
			}
			matched += op.A2 - op.A1
		case Insert:
			if op.A1 != op.A2 || op.B1 == op.B2 {
				t.Fatalf("malformed insert %+v", op)
			}
		case Delete:
			if op.B1 != op.B2 || op.A1 == op.A2 {
				t.Fatalf("malformed delete %+v", op)
			}
		case Replace:
			if op.A1 == op.A2 || op.B1 == op.B2 {
				t.Fatalf("malformed replace %+v", op)
			}
		}
		i, j = op.A2, op.B2
	}
	if i != len(a) || j != len(b) {
		t.Fatalf("opcodes end at (%d,%d), want (%d,%d)", i, j, len(a), len(b))
	}
	if matched != res.Matched {
		t.Fatalf("Matched = %d, equal opcodes cover %d", res.Matched, matched)
	}
}

func TestWordsIdenticalLongSpeech(t *testing.T) {
	words := make([]string, 80)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	text := strings.Join(words, " ")
	res := Words(script.NewSpeech("HAMLET", text), script.NewSpeech("HAMLET", text))
	if len(res.Opcodes) != 1 || res.Opcodes[0].Tag != Equal || res.Ratio != 1 {
		t.Fatalf("Words() = %+v", res)
	}
	if res.Opcodes[0].A2 != 80 {
		t.Fatalf("equal opcode spans %d tokens, want 80", res.Opcodes[0].A2)
	}
}

func TestTextsTokenizes(t *testing.T) {
	res := Texts("Wherefore art thou, Romeo?", "wherefore ART thou Romeo")
	if res.Ratio != 1 {
		t.Fatalf("Ratio = %v, want 1", res.Ratio)
	}
}

func TestSummary(t *testing.T) {
	res := Align([]string{"a", "b", "c", "d"}, []string{"a", "x", "c", "e", "f"})
	sum := res.Summary()
	if sum.Equal != 2 {
		t.Fatalf("Summary = %+v", sum)
	}
	if sum.Replaced+sum.Deleted != 2 || sum.Inserted+sum.Replaced < 2 {
		t.Fatalf("Summary = %+v", sum)
	}
}

func TestTagText(t *testing.T) {
	for tag, want := range map[Tag]string{Equal: "equal", Insert: "insert", Delete: "delete", Replace: "replace", Tag(9): "tag(9)"} {
		if got := tag.String(); got != want {
			t.Errorf("Tag(%d).String() = %q, want %q", tag, got, want)
		}
		text, err := tag.MarshalText()
		if err != nil || string(text) != want {
			t.Errorf("Tag(%d).MarshalText() = %q, %v", tag, text, err)
		}
	}
}

func TestResultEncodingRoundTrip(t *testing.T) {
	res := Align([]string{"a", "b", "c", "d"}, []string{"a", "x", "c", "e", "f"})

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	var fromJSON Result
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("json.Unmarshal: %v\n%s", err, data)
	}
	if !slices.Equal(fromJSON.Opcodes, res.Opcodes) || fromJSON.Ratio != res.Ratio {
		t.Fatalf("json round trip = %+v, want %+v", fromJSON, res)
	}

	data, err = yaml.Marshal(res)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	var fromYAML Result
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, data)
	}
	if !slices.Equal(fromYAML.Opcodes, res.Opcodes) {
		t.Fatalf("yaml round trip = %+v, want %+v", fromYAML.Opcodes, res.Opcodes)
	}
}

func TestTagUnmarshalRejectsUnknownName(t *testing.T) {
	var op Opcode
	if err := json.Unmarshal([]byte(`{"tag":"equal","a2":3,"b2":3}`), &op); err != nil {
		t.Fatalf("decode equal opcode: %v", err)
	}
	if op.Tag != Equal || op.A2 != 3 {
		t.Fatalf("decoded %+v", op)
	}
	if err := json.Unmarshal([]byte(`{"tag":"swap"}`), &op); err == nil {
		t.Fatal("expected error for unknown tag name")
	}
}
