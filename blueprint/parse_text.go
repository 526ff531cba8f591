package blueprint

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/resource"
)

// textParser walks the whitespace-separated tokens of rule text.
type textParser struct {
	toks []string
	pos  int
}

// ParseText reads every "Blueprint N: Each ... robot costs ..." record from r.
// Line breaks carry no meaning; records may be wrapped or share a line.
//
// Errors: ErrSyntax (wrapped with the offending token), ErrMissingProducer,
// ErrDuplicateProducer, ErrNegativeCost, ErrInvalidID, ErrDuplicateID,
// ErrNoBlueprints, or the reader's own error.
func ParseText(r io.Reader) ([]Blueprint, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	p := &textParser{}
	for sc.Scan() {
		p.toks = append(p.toks, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("blueprint: reading text: %w", err)
	}

	var out []Blueprint
	for !p.done() {
		bp, err := p.record()
		if err != nil {
			return nil, err
		}
		out = append(out, bp)
	}
	if err := checkUniqueIDs(out); err != nil {
		return nil, err
	}

	return out, nil
}

// ParseLine parses exactly one record, e.g. a single line of puzzle input.
func ParseLine(line string) (Blueprint, error) {
	bps, err := ParseText(strings.NewReader(line))
	if err != nil {
		return Blueprint{}, err
	}
	if len(bps) != 1 {
		return Blueprint{}, fmt.Errorf("%w: expected one blueprint, got %d", ErrSyntax, len(bps))
	}

	return bps[0], nil
}

func (p *textParser) done() bool { return p.pos >= len(p.toks) }

func (p *textParser) peek() string {
	if p.done() {
		return ""
	}

	return p.toks[p.pos]
}

func (p *textParser) next() (string, error) {
	if p.done() {
		return "", fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	tok := p.toks[p.pos]
	p.pos++

	return tok, nil
}

func (p *textParser) expect(word string) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok != word {
		return fmt.Errorf("%w: want %q, got %q", ErrSyntax, word, tok)
	}

	return nil
}

func (p *textParser) number() (int, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(tok)
	if convErr != nil {
		return 0, fmt.Errorf("%w: want a number, got %q", ErrSyntax, tok)
	}

	return n, nil
}

func (p *textParser) kind(tok string) (resource.Kind, error) {
	k, err := resource.ParseKind(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return k, nil
}

// record consumes one "Blueprint N: Each ..." block.
func (p *textParser) record() (Blueprint, error) {
	if err := p.expect("Blueprint"); err != nil {
		return Blueprint{}, err
	}
	idTok, err := p.next()
	if err != nil {
		return Blueprint{}, err
	}
	id, convErr := strconv.Atoi(strings.TrimSuffix(idTok, ":"))
	if convErr != nil || !strings.HasSuffix(idTok, ":") {
		return Blueprint{}, fmt.Errorf("%w: bad blueprint header %q", ErrSyntax, idTok)
	}

	var (
		costs    [resource.NumKinds]resource.Vector
		declared [resource.NumKinds]bool
	)
	for p.peek() == "Each" {
		producer, cost, err := p.rule()
		if err != nil {
			return Blueprint{}, fmt.Errorf("blueprint %d: %w", id, err)
		}
		if declared[producer] {
			return Blueprint{}, fmt.Errorf("%w: blueprint %d, %s", ErrDuplicateProducer, id, producer)
		}
		declared[producer] = true
		costs[producer] = cost
	}
	if err = checkDeclared(id, declared); err != nil {
		return Blueprint{}, err
	}

	return New(id, costs)
}

// rule consumes "Each <kind> robot costs <n> <kind> [and <n> <kind>]*."
func (p *textParser) rule() (resource.Kind, resource.Vector, error) {
	var cost resource.Vector
	if err := p.expect("Each"); err != nil {
		return 0, cost, err
	}
	tok, err := p.next()
	if err != nil {
		return 0, cost, err
	}
	producer, err := p.kind(tok)
	if err != nil {
		return 0, cost, err
	}
	if err = p.expect("robot"); err != nil {
		return 0, cost, err
	}
	if err = p.expect("costs"); err != nil {
		return 0, cost, err
	}
	for {
		amount, err := p.number()
		if err != nil {
			return 0, cost, err
		}
		tok, err = p.next()
		if err != nil {
			return 0, cost, err
		}
		last := strings.HasSuffix(tok, ".")
		k, err := p.kind(strings.TrimSuffix(tok, "."))
		if err != nil {
			return 0, cost, err
		}
		cost = cost.Add(k, amount)
		if last {
			return producer, cost, nil
		}
		if err = p.expect("and"); err != nil {
			return 0, cost, err
		}
	}
}
