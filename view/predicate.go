package view

import (
	"strings"

	"tablo/entity"
)

// MatchAny returns a predicate passing lines in which any field's string
// representation contains term, case-insensitively.
func MatchAny(term string) entity.Predicate {

	needle := strings.ToLower(term)

	return func(line entity.Line) bool {
		for _, val := range line {
			if strings.Contains(strings.ToLower(val.String()), needle) {
				return true
			}
		}
		return false
	}
}
