package art

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/gnomegl/gitfill/internal/utils"
)

// PrintLogo writes the banner shown before every run.
func PrintLogo(w io.Writer) {
	logo := figure.NewFigure("gitfill", "standard", false)
	fmt.Fprintf(w, "\033[32m%s\033[0m", logo.String())
	fmt.Fprintf(w, "        \033[93mv%s by gnomegl\033[0m\n\n", utils.GetVersion())
}
