package blueprint

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

// ParseJSON reads blueprints from the structured JSON form:
//
//	[{"id": 1, "costs": {"ore": {"ore": 4}, "clay": {"ore": 2},
//	  "obsidian": {"ore": 3, "clay": 14}, "geode": {"ore": 2, "obsidian": 7}}}]
//
// The list may also sit under a top-level "blueprints" key.
func ParseJSON(data []byte) ([]Blueprint, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrSyntax)
	}
	list := gjson.ParseBytes(data)
	if list.IsObject() {
		list = list.Get("blueprints")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: expected a list of blueprints", ErrSyntax)
	}

	var (
		out []Blueprint
		err error
	)
	list.ForEach(func(_, item gjson.Result) bool {
		var bp Blueprint
		bp, err = blueprintFromJSON(item)
		if err != nil {
			return false
		}
		out = append(out, bp)

		return true
	})
	if err != nil {
		return nil, err
	}
	if err = checkUniqueIDs(out); err != nil {
		return nil, err
	}

	return out, nil
}

func blueprintFromJSON(item gjson.Result) (Blueprint, error) {
	if !item.IsObject() {
		return Blueprint{}, fmt.Errorf("%w: blueprint entry must be an object, got %s", ErrSyntax, item.Type)
	}
	idField := item.Get("id")
	if !isInteger(idField) {
		return Blueprint{}, fmt.Errorf("%w: id must be an integer, got %s", ErrInvalidID, idField.Raw)
	}
	id := int(idField.Int())

	costsField := item.Get("costs")
	if !costsField.IsObject() {
		return Blueprint{}, fmt.Errorf("%w: blueprint %d has no costs object", ErrSyntax, id)
	}
	costs := make(map[string]map[string]int)
	var err error
	costsField.ForEach(func(producer, amounts gjson.Result) bool {
		if !amounts.IsObject() {
			err = fmt.Errorf("%w: blueprint %d, %s cost must be an object", ErrSyntax, id, producer.String())
			return false
		}
		entry := make(map[string]int)
		amounts.ForEach(func(res, amount gjson.Result) bool {
			if !isInteger(amount) {
				err = fmt.Errorf("%w: blueprint %d, %s.%s must be an integer, got %s",
					ErrSyntax, id, producer.String(), res.String(), amount.Raw)
				return false
			}
			entry[res.String()] = int(amount.Int())

			return true
		})
		if err != nil {
			return false
		}
		if _, dup := costs[producer.String()]; dup {
			err = fmt.Errorf("%w: blueprint %d, %s", ErrDuplicateProducer, id, producer.String())
			return false
		}
		costs[producer.String()] = entry

		return true
	})
	if err != nil {
		return Blueprint{}, err
	}

	return fromCostMap(id, costs)
}

// isInteger reports whether r is a JSON number with no fractional part.
func isInteger(r gjson.Result) bool {
	return r.Type == gjson.Number && r.Num == math.Trunc(r.Num)
}
