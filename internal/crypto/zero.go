package crypto

// Zero overwrites b with zeros. Used to wipe derived keys once a seal or
// unlock finishes.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
