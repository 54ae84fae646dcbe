// Package badge builds printable participant badges carrying a QR code of the
// participant code, and resolves scanned badges back to participants.
package badge
