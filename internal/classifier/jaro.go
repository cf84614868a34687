package classifier

import "slices"

// jaro returns the Jaro similarity of a and b. Half the transposition count
// is rounded down, so a single out-of-order pair costs nothing; go-edlib keeps
// the fraction and scores such pairs lower.
func jaro(a, b string) float64 {
	s1 := []rune(a)
	s2 := []rune(b)

	bound := max(len(s1), len(s2))/2 - 1

	var matched1, matched2 []int

	taken := make([]bool, len(s2))

	for i, r := range s1 {
		lo := max(0, i-bound)
		hi := min(i+bound, len(s2)-1)

		for j := lo; j <= hi; j++ {
			if !taken[j] && s2[j] == r {
				taken[j] = true
				matched1 = append(matched1, i)
				matched2 = append(matched2, j)

				break
			}
		}
	}

	matches := len(matched1)
	if matches == 0 {
		return 0
	}

	slices.Sort(matched2)

	transpositions := 0

	for k, i := range matched1 {
		if s1[i] != s2[matched2[k]] {
			transpositions++
		}
	}

	m := float64(matches)

	return (m/float64(len(s1)) + m/float64(len(s2)) + float64(matches-transpositions/2)/m) / 3
}
