// Package util contains small helpers used across the application that
// don't match any other package
package util

import (
	"math/rand"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var src = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandStr returns a random letter string of length n. Not for secrets,
// request IDs only
func RandStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[src.Intn(len(charset))]
	}

	return string(b)
}
