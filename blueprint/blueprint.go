package blueprint

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2022/resource"
)

// New validates costs and returns the Blueprint.
// Returns ErrInvalidID for id <= 0 and ErrNegativeCost for any negative amount.
func New(id int, costs [resource.NumKinds]resource.Vector) (Blueprint, error) {
	if id <= 0 {
		return Blueprint{}, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	for _, producer := range resource.Kinds() {
		for _, k := range resource.Kinds() {
			if costs[producer].Get(k) < 0 {
				return Blueprint{}, fmt.Errorf("%w: blueprint %d, %s producer needs %d %s",
					ErrNegativeCost, id, producer, costs[producer].Get(k), k)
			}
		}
	}

	return Blueprint{ID: id, Costs: costs}, nil
}

// CostOf returns the resources needed to build one producer of kind k.
func (b Blueprint) CostOf(k resource.Kind) resource.Vector {
	return b.Costs[k]
}

// MaxCost returns the largest amount of k that any single producer costs.
func (b Blueprint) MaxCost(k resource.Kind) int {
	m := 0
	for _, c := range b.Costs {
		if c.Get(k) > m {
			m = c.Get(k)
		}
	}

	return m
}

// String renders the Blueprint in the puzzle's rule text, one line.
func (b Blueprint) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blueprint %d:", b.ID)
	for _, producer := range resource.Kinds() {
		fmt.Fprintf(&sb, " Each %s robot costs", producer)
		first := true
		for _, k := range resource.Kinds() {
			amount := b.Costs[producer].Get(k)
			if amount == 0 {
				continue
			}
			if !first {
				sb.WriteString(" and")
			}
			fmt.Fprintf(&sb, " %d %s", amount, k)
			first = false
		}
		if first {
			sb.WriteString(" 0 ore")
		}
		sb.WriteByte('.')
	}

	return sb.String()
}

// fromCostMap builds a Blueprint from the structured (JSON/YAML) shape
// producer name -> resource name -> amount.
func fromCostMap(id int, costs map[string]map[string]int) (Blueprint, error) {
	var (
		table    [resource.NumKinds]resource.Vector
		declared [resource.NumKinds]bool
	)
	for producerName, amounts := range costs {
		producer, err := resource.ParseKind(producerName)
		if err != nil {
			return Blueprint{}, fmt.Errorf("%w: blueprint %d: %w", ErrSyntax, id, err)
		}
		if declared[producer] {
			return Blueprint{}, fmt.Errorf("%w: blueprint %d, %s", ErrDuplicateProducer, id, producer)
		}
		declared[producer] = true
		for resName, amount := range amounts {
			k, err := resource.ParseKind(resName)
			if err != nil {
				return Blueprint{}, fmt.Errorf("%w: blueprint %d: %w", ErrSyntax, id, err)
			}
			table[producer] = table[producer].Add(k, amount)
		}
	}
	if err := checkDeclared(id, declared); err != nil {
		return Blueprint{}, err
	}

	return New(id, table)
}

// checkDeclared reports the first producer kind without a cost entry.
func checkDeclared(id int, declared [resource.NumKinds]bool) error {
	for _, k := range resource.Kinds() {
		if !declared[k] {
			return fmt.Errorf("%w: blueprint %d, %s", ErrMissingProducer, id, k)
		}
	}

	return nil
}

// checkUniqueIDs rejects inputs where two records share an ID, and empty inputs.
func checkUniqueIDs(bps []Blueprint) error {
	if len(bps) == 0 {
		return ErrNoBlueprints
	}
	seen := make(map[int]struct{}, len(bps))
	for _, bp := range bps {
		if _, ok := seen[bp.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, bp.ID)
		}
		seen[bp.ID] = struct{}{}
	}

	return nil
}
