package vigenere

// English letter frequencies in percent, A through Z.
var expectedFreq = [alphabetSize]float64{
	8.12, 1.49, 2.71, 4.32, 12.02, 2.30, 2.03, // A-G
	5.92, 7.31, 0.10, 0.69, 3.98, 2.61, 6.95, // H-N
	7.68, 1.82, 0.11, 6.02, 6.28, 9.10, 2.88, // O-U
	1.11, 2.09, 0.17, 2.11, 0.07, // V-Z
}

// ReferenceFrequencies returns a copy of the English reference table, in
// percent, indexed by letter offset from 'A'.
func ReferenceFrequencies() [alphabetSize]float64 {
	return expectedFreq
}
