package dbg

import (
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This turns arbitrary keys (usually an input path) into random readable names
// like "BraveOtter", for documents that don't carry a name of their own. Names
// are memoized, so the same key gets the same name for the life of the
// process, but not between runs.

var (
	mu    sync.Mutex
	memo  = make(map[string]string)
	title = cases.Title(language.English)
)

func init() {
	// Names are handed out in order of demand, so keep them nondeterministic to
	// remind the user that the same name doesn't refer to the same thing
	// between runs.
	petname.NonDeterministicMode()
}

func Name(key string) string {
	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := title.String(petname.Adjective()) + title.String(petname.Name())
	memo[key] = r
	return r
}
