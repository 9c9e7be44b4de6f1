package tax

// ValidateBrackets checks that the brackets, ordered by MinIncome, are
// contiguous and non-overlapping and that only the last one is
// unbounded.
func ValidateBrackets(brackets []Bracket) error {
	for i, b := range brackets {
		last := i == len(brackets)-1
		if b.MaxIncome == nil {
			if !last {
				return ErrTaxBracketGap
			}
			continue
		}
		if b.MaxIncome.LessThanOrEqual(b.MinIncome) {
			return ErrTaxBracketGap
		}
		if !last && !brackets[i+1].MinIncome.Equal(*b.MaxIncome) {
			return ErrTaxBracketGap
		}
	}
	return nil
}
