package id

import (
	"crypto/rand"
	"fmt"
	"sync/atomic"
)

// GenerateID creates a unique 16-character alphanumeric ID.
func GenerateID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}

var generatedSeq atomic.Uint64

// GeneratedQuestionID creates an ID for a dynamically generated question.
// The monotonic counter keeps IDs distinct within a process lifetime even
// when many questions are minted in the same instant.
func GeneratedQuestionID() string {
	return fmt.Sprintf("gen-%d-%s", generatedSeq.Add(1), GenerateID()[:8])
}
