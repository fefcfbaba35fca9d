//go:build ordhash_debug

package ordhash

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(inconsistent("%s", message))
	}
}
