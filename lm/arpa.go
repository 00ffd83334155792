package lm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ngramlattice/ngram"
)

// LoadARPA reads an ARPA-subset back-off LM from r: a \data\ header (whose
// count lines are skipped, not validated), one or more "\N-grams:" sections,
// each holding lines of "logprob word1 ... wordN [backoff]", terminated by
// "\end\". Sentence boundary words are spelled "<s>"/"</s>" in the file and
// mapped to ngram.STARTSENTENCE/ngram.ENDSENTENCE; every other token is
// parsed as a decimal word ID, matching the word-map convention the rest of
// this module uses.
//
// This is a pragmatic re-creation of the well-known ARPA format's textual
// shape, not a byte-for-byte port of any specific reference loader — no
// loader for this model survived the original project's filtered source
// set.
func LoadARPA(r io.Reader) (*BackoffModel, error) {
	b := NewBuilder()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inData := false
	order := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case line == `\data\`:
			inData = true
			continue
		case line == `\end\`:
			return b.Dump(), nil
		case strings.HasPrefix(line, `\`) && strings.HasSuffix(line, `-grams:`):
			inData = false
			n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(line, `\`), "-grams:"))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: section header %q", ErrMalformedEntry, line)
			}
			order = n
			continue
		case inData:
			continue // ngram count line, e.g. "ngram 1=42"
		}
		if err := addARPALine(b, line, order); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.Dump(), nil
}

// addARPALine parses one "logprob word1 ... wordN [backoff]" record. order
// is the N declared by the enclosing section header; since this model's
// vocabulary is itself numeric word IDs, the trailing optional back-off
// field cannot be told apart from a word ID by its shape, only by the
// expected field count the section header already told us.
func addARPALine(b *Builder, line string, order int) error {
	if order <= 0 {
		return fmt.Errorf("%w: entry outside any \"-grams:\" section: %q", ErrMalformedEntry, line)
	}
	fields := strings.Fields(line)
	switch len(fields) {
	case 1 + order:
		// no back-off field
	case 2 + order:
		// trailing back-off field present
	default:
		return fmt.Errorf("%w: expected %d or %d fields for a %d-gram, got %d: %q",
			ErrMalformedEntry, 1+order, 2+order, order, len(fields), line)
	}

	logProb, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrMalformedEntry, line, err)
	}
	wordFields := fields[1 : 1+order]
	backOff := 0.0
	if len(fields) == 2+order {
		backOff, err = strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrMalformedEntry, line, err)
		}
	}

	words := make([]ngram.WordID, len(wordFields))
	for i, tok := range wordFields {
		w, err := parseARPAWord(tok)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrMalformedEntry, line, err)
		}
		words[i] = w
	}

	context, word := words[:len(words)-1], words[len(words)-1]
	b.AddNgram(context, word, logProb, backOff)
	return nil
}

func parseARPAWord(tok string) (ngram.WordID, error) {
	switch tok {
	case "<s>":
		return ngram.STARTSENTENCE, nil
	case "</s>":
		return ngram.ENDSENTENCE, nil
	}
	id, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	return ngram.WordID(id), nil
}
