// Package dashboard aggregates backend statistics with camp prices into the
// treasurer summary: participants per camp and country, and collected versus
// expected amounts.
package dashboard
