package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var supportedShells = []string{"bash", "zsh", "fish", "powershell"}

func writeCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("%w: %q (want one of %v)", ErrUnsupportedShell, shell, supportedShells)
	}
}
