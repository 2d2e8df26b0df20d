// Command cxxdoc extracts Markdown API documentation from annotated C++
// source.
package main

import (
	"github.com/cxxdoc/cxxdoc/internal/cmd"
)

func main() {
	cmd.Execute()
}
