//go:build anymapdebug

package anymap

// debug enables type assertions in the unchecked downcasts.
const debug = true
