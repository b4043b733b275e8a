// Command fhestr-golden generates and validates the plaintext golden
// vectors internal/refengine's behavior is pinned against: the same
// generate/validate pairing scode/saltybox/golden uses to guard its wire
// format, adapted here to guard the reference oracle's plaintext outputs
// rather than a byte format.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/fhestr/fhestr/internal/refengine"
)

func main() {
	rootCmd := &cli.Command{
		Name:        "fhestr-golden",
		Version:     "unknown (master)",
		Usage:       "a tool to ensure correctness/compatibility of fhestr's plaintext reference oracle",
		HideVersion: true,
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate golden test data",
				Action: func(_ context.Context, _ *cli.Command) error {
					return generateGolden()
				},
			},
			{
				Name:  "validate",
				Usage: "Validate golden test data",
				Action: func(_ context.Context, _ *cli.Command) error {
					return validateGolden()
				},
			},
		},
		Action: func(_ context.Context, _ *cli.Command) error {
			return errors.New("command is required; use help to see list of commands")
		},
	}

	err := rootCmd.Run(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// goldenVector pins one refengine call: the operation name, its string
// inputs, and whichever one of the want fields that operation produces.
// Only the fields relevant to Op are populated; the rest are omitted.
type goldenVector struct {
	Op       string   `json:"op"`
	S        string   `json:"s"`
	Pat      string   `json:"pat,omitempty"`
	To       string   `json:"to,omitempty"`
	N        int      `json:"n,omitempty"`
	WantStr  *string  `json:"want_str,omitempty"`
	WantBool *bool    `json:"want_bool,omitempty"`
	WantInt  *int     `json:"want_int,omitempty"`
	WantList []string `json:"want_list,omitempty"`
	Comment  string   `json:"comment"`
}

func str(s string) *string { return &s }
func bl(b bool) *bool      { return &b }
func in(i int) *int        { return &i }

// buildVectors computes every golden vector's want fields from the
// current refengine implementation. generate writes this set to disk;
// validate recomputes it and diffs against what's on disk, so a refengine
// regression shows up as a vector mismatch rather than a silent drift.
func buildVectors() []goldenVector {
	var out []goldenVector
	add := func(v goldenVector) { out = append(out, v) }

	for _, tc := range []struct{ s, comment string }{
		{"", "empty string"},
		{"hello", "simple ascii"},
		{"hello world", "ascii with space"},
		{"aaaa", "repeated byte"},
	} {
		add(goldenVector{Op: "len", S: tc.s, WantInt: in(len(tc.s)), Comment: tc.comment})
		add(goldenVector{Op: "is_empty", S: tc.s, WantBool: bl(tc.s == ""), Comment: tc.comment})
		add(goldenVector{Op: "to_uppercase", S: tc.s, WantStr: str(refengine.ToUpper(tc.s)), Comment: tc.comment})
		add(goldenVector{Op: "to_lowercase", S: tc.s, WantStr: str(refengine.ToLower(tc.s)), Comment: tc.comment})
	}

	for _, tc := range []struct{ s, pat, comment string }{
		{"hello world", "wor", "mid-string match"},
		{"hello world", "xyz", "no match"},
		{"hello world", "", "empty pattern"},
		{"hello world", "hello world", "full-string match"},
	} {
		add(goldenVector{Op: "contains", S: tc.s, Pat: tc.pat, WantBool: bl(refengine.Contains(tc.s, tc.pat)), Comment: tc.comment})
		add(goldenVector{Op: "starts_with", S: tc.s, Pat: tc.pat, WantBool: bl(refengine.StartsWith(tc.s, tc.pat)), Comment: tc.comment})
		add(goldenVector{Op: "ends_with", S: tc.s, Pat: tc.pat, WantBool: bl(refengine.EndsWith(tc.s, tc.pat)), Comment: tc.comment})
		idx, found := refengine.Find(tc.s, tc.pat)
		add(goldenVector{Op: "find", S: tc.s, Pat: tc.pat, WantInt: in(idx), WantBool: bl(found), Comment: tc.comment})
		ridx, rfound := refengine.Rfind(tc.s, tc.pat)
		add(goldenVector{Op: "rfind", S: tc.s, Pat: tc.pat, WantInt: in(ridx), WantBool: bl(rfound), Comment: tc.comment})
	}

	for _, tc := range []struct{ s, from, to, comment string }{
		{"aXbXc", "X", "-", "single char replace"},
		{"aaa", "", "-", "empty pattern replace"},
		{"banana", "ana", "X", "overlapping pattern"},
	} {
		add(goldenVector{Op: "replace", S: tc.s, Pat: tc.from, To: tc.to, WantStr: str(refengine.Replace(tc.s, tc.from, tc.to)), Comment: tc.comment})
	}

	for _, tc := range []struct {
		s, pat string
		n      int
		comment string
	}{
		{"a,b,c,d", ",", 2, "splitn stops early"},
		{"aaa", "a", 2, "splitn degenerate pattern"},
		{"ab", "", 10, "splitn empty pattern n larger than segments"},
	} {
		add(goldenVector{Op: "splitn", S: tc.s, Pat: tc.pat, N: tc.n, WantList: refengine.SplitN(tc.s, tc.pat, tc.n), Comment: tc.comment})
	}

	for _, tc := range []struct{ s, pat, comment string }{
		{"a.b.c", ".", "three segments"},
		{"ab", "", "empty pattern"},
		{"a.b.", ".", "trailing delimiter"},
	} {
		add(goldenVector{Op: "split", S: tc.s, Pat: tc.pat, WantList: refengine.Split(tc.s, tc.pat), Comment: tc.comment})
		add(goldenVector{Op: "split_terminator", S: tc.s, Pat: tc.pat, WantList: refengine.SplitTerminator(tc.s, tc.pat), Comment: tc.comment})
		add(goldenVector{Op: "split_inclusive", S: tc.s, Pat: tc.pat, WantList: refengine.SplitInclusive(tc.s, tc.pat), Comment: tc.comment})
	}

	for _, s := range []string{"  hello   world  ", "\tone\ntwo\r\nthree\f", ""} {
		add(goldenVector{Op: "split_ascii_whitespace", S: s, WantList: refengine.SplitAsciiWhitespace(s), Comment: "whitespace splitting"})
		add(goldenVector{Op: "trim", S: s, WantStr: str(refengine.Trim(s)), Comment: "trim both ends"})
	}

	return out
}

func generateGolden() error {
	vectors := buildVectors()

	f, err := os.Create("testdata/golden-vectors.json")
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(vectors)
}

func validateGolden() error {
	data, err := os.ReadFile("testdata/golden-vectors.json")
	if err != nil {
		return fmt.Errorf("failed to read golden vectors: %w", err)
	}

	var onDisk []goldenVector
	if err := json.Unmarshal(data, &onDisk); err != nil {
		return fmt.Errorf("failed to parse golden vectors: %w", err)
	}

	recomputed := buildVectors()
	if len(recomputed) != len(onDisk) {
		return fmt.Errorf("vector count changed: disk has %d, current refengine produces %d", len(onDisk), len(recomputed))
	}

	fmt.Printf("Validating %d golden vectors...\n", len(onDisk))

	failCount := 0
	for i := range onDisk {
		want, _ := json.Marshal(onDisk[i])
		got, _ := json.Marshal(recomputed[i])
		if string(want) != string(got) {
			fmt.Printf("FAIL [%d] %s: %s\n   want %s\n   got  %s\n", i, onDisk[i].Op, onDisk[i].Comment, want, got)
			failCount++
			continue
		}
		fmt.Printf("PASS [%d] %s: %s\n", i, onDisk[i].Op, onDisk[i].Comment)
	}

	if failCount > 0 {
		return fmt.Errorf("%d of %d vectors failed", failCount, len(onDisk))
	}

	fmt.Printf("\nAll %d vectors passed!\n", len(onDisk))
	return nil
}
