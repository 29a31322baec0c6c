package domain

// Zero overwrites decoded key bytes once they are no longer needed.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
