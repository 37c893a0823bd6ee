// Package client assembles the unlock and key-rotation services into a
// runnable command-line client.
package client
