package vigenere

// Deviation measures how far the letter distribution of letters is from
// English: the sum over A-Z of the squared difference between observed and
// reference percentages. Lower is better. An empty sequence scores 0.
//
// letters must already be filtered to 'A'..'Z'.
func Deviation(letters string) float64 {
	if len(letters) == 0 {
		return 0
	}

	var counts [alphabetSize]int
	for i := 0; i < len(letters); i++ {
		counts[letters[i]-'A']++
	}

	total := float64(len(letters))
	var deviation float64
	for i := range counts {
		observed := float64(counts[i]) / total * 100
		diff := observed - expectedFreq[i]
		deviation += diff * diff
	}
	return deviation
}
