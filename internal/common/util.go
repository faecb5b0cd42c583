// Package common holds small helpers shared across client packages.
package common

// WipeByteArray zeroes the buffer in place. Used for passwords and other
// secrets once they have been handed off.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
