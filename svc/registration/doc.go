// Package registration implements the participant sign-up flow: field
// validation against the camp age range, the cascading country/city/delegation
// selection and the final submission with ids resolved at submit time.
package registration
