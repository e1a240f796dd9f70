package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"terrafinance/internal/app"
)

var (
	renderOut  string
	renderLang string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the landing page HTML to stdout or a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, closeSource, err := openMessageSource(appConfig)
		if err != nil {
			return err
		}
		defer closeSource()

		var w io.Writer = cmd.OutOrStdout()
		if renderOut != "" {
			f, err := os.Create(renderOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", renderOut, err)
			}
			defer f.Close()
			w = f
		}

		return renderHome(cmd, app.NewLoader(src), w)
	},
}

func renderHome(cmd *cobra.Command, loader *app.Loader, w io.Writer) error {
	result, err := loader.Load(cmd.Context())
	if err != nil {
		return err
	}
	result.Now = result.Now.In(appConfig.Location())

	page, err := app.NewPage(app.TerraFinance, result, renderLang)
	if err != nil {
		return err
	}

	renderer, err := app.NewRenderer()
	if err != nil {
		return err
	}
	return renderer.Render(w, page)
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&renderLang, "lang", "en-US", "locale used for the last updated date")
	rootCmd.AddCommand(renderCmd)
}
