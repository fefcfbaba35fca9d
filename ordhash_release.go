//go:build !ordhash_debug

package ordhash

const debugging = false

func assert(bool, string) {}
