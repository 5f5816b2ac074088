package render

import "strings"

var filenameReplacer = strings.NewReplacer(" ", "_", "/", "_", "\\", "_")

// Filename is the download name for a flag: "<input>_flag.png" with spaces
// and path separators replaced by underscores.
func Filename(input string) string {
	return filenameReplacer.Replace(input) + "_flag.png"
}
