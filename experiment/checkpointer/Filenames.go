package checkpointer

import (
	"fmt"
	"strings"
)

// FilenameEnumerator returns a function which returns consecutive
// filenames of the form <filename><i><extension>, with i starting at
// start + 1. A leading "." is added to extension if it is missing.
func FilenameEnumerator(start int, filename, extension string) func() string {
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	i := start
	return func() string {
		i++
		return fmt.Sprintf("%v%v%v", filename, i, extension)
	}
}
