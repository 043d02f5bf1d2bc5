package recorder

import "os"

// artifact is the assembled audio file of one stopped recording session.
type artifact struct {
	path     string
	released bool
}

func (a *artifact) Path() string {
	return a.path
}

// Release removes the backing file. Only the first call acts; repeated
// releases across re-record cycles must not double-remove.
func (a *artifact) Release() bool {
	if a.released {
		return false
	}
	a.released = true
	os.Remove(a.path)
	return true
}
