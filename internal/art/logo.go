package art

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/gnomegl/gitscore/internal/utils"
)

// PrintLogo writes the banner and version to w.
func PrintLogo(w io.Writer) {
	banner := figure.NewFigure("gitscore", "chunky", false)
	fmt.Fprintf(w, "\033[36m%s\033[0m", banner.String())
	fmt.Fprintf(w, "              \033[91mv%s by gnomegl\033[0m\n\n", utils.GetVersion())
}
