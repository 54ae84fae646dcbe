// Package payment records participant payments for treasurers and lists a
// participant's payment history page by page.
//
// Recording a payment bumps a broadcast.Notifier so that every open payment
// list and the dashboard re-fetch their data.
package payment
