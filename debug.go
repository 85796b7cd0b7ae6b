//go:build !anymapdebug

package anymap

const debug = false
