// Package utils provides small helpers shared by the transport layers:
// JSON and plain-text response writing and trace id generation.
package utils
