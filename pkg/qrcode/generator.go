package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerateQRCode is returned when the QR code generation fails.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
	// ErrInvalidBadgeContent is returned by ParseBadgeContent for foreign QR payloads.
	ErrInvalidBadgeContent = errors.New("not a participant badge")
)

const (
	defaultSize = 256
	badgePrefix = "campkit:participant:"
)

// Config controls badge QR rendering.
type Config struct {
	Size     int    `env:"BADGE_QR_SIZE" envDefault:"256"`       // Size of the PNG in pixels.
	Recovery string `env:"BADGE_QR_RECOVERY" envDefault:"medium"` // low, medium, high or highest.
}

// Options returns the generator options described by the config.
func (c Config) Options() []Option {
	return []Option{WithSize(c.Size), WithRecovery(c.Recovery)}
}

type options struct {
	size  int
	level skipqrcode.RecoveryLevel
}

type Option func(*options)

// WithSize sets the image width and height in pixels. Non-positive sizes keep the default.
func WithSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.size = px
		}
	}
}

// WithRecovery sets the error correction level by name. Printed badges get
// scratched, so callers may raise it to "high". Unknown names are ignored.
func WithRecovery(level string) Option {
	return func(o *options) {
		switch strings.ToLower(level) {
		case "low":
			o.level = skipqrcode.Low
		case "medium":
			o.level = skipqrcode.Medium
		case "high":
			o.level = skipqrcode.High
		case "highest":
			o.level = skipqrcode.Highest
		}
	}
}

// Generate creates a QR code image in PNG format with the given content.
func Generate(content string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	o := options{size: defaultSize, level: skipqrcode.Medium}
	for _, opt := range opts {
		opt(&o)
	}

	png, err := skipqrcode.Encode(content, o.level, o.size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// DataURI renders content as a PNG data URI for direct use in an <img> tag.
func DataURI(content string, opts ...Option) (string, error) {
	png, err := Generate(content, opts...)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// BadgeContent is the payload encoded on a participant badge.
func BadgeContent(code string) string {
	return badgePrefix + strings.TrimSpace(code)
}

// ParseBadgeContent extracts the participant code from a scanned badge.
func ParseBadgeContent(content string) (string, error) {
	code, ok := strings.CutPrefix(strings.TrimSpace(content), badgePrefix)
	if !ok || code == "" {
		return "", ErrInvalidBadgeContent
	}
	return code, nil
}
