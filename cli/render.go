package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/exprlang/exprcheck"
)

const errorIndent = "        " // aligns the caret under "[ERROR] "

var (
	okLabel    = color.New(color.FgGreen, color.Bold)
	errorLabel = color.New(color.FgRed, color.Bold)
	caretStyle = color.New(color.FgYellow)
)

// renderResult writes one validation outcome. Invalid outcomes get a
// caret line pointing at the failing offset in the echoed expression.
func renderResult(w io.Writer, expr string, result exprcheck.Result) {
	if result.Valid {
		okLabel.Fprint(w, "[OK]")
		fmt.Fprintf(w, " %s\n", expr)

		return
	}

	errorLabel.Fprint(w, "[ERROR]")
	fmt.Fprintf(w, " %s\n", expr)

	caretStyle.Fprintf(w, "%s%s^ %s\n", errorIndent, strings.Repeat(" ", result.Position), result.Message)
}
