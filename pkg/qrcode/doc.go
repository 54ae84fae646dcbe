// Package qrcode renders participant badge QR codes as PNG images using
// github.com/skip2/go-qrcode.
//
//	uri, err := qrcode.DataURI(qrcode.BadgeContent("CMP-0042"), qrcode.WithSize(320))
//	// <img src="data:image/png;base64,...">
//
// Badges encode "campkit:participant:<code>"; ParseBadgeContent reverses it
// when a badge is scanned at the camp entrance.
package qrcode
