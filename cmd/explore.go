package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-escala/explorer"
	"github.com/RyanBlaney/sonido-escala/logging"
	"github.com/RyanBlaney/sonido-escala/render"
	"github.com/RyanBlaney/sonido-escala/theory"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Step through transpositions interactively",
	Long: `Reads commands from stdin, one per line:

  up, k, +        transpose up a semitone
  down, j, -      transpose down a semitone
  index N         jump to index N
  click Y H       click at height Y of an H-tall staff (upper half goes up)
  scale NAME      switch scale
  quit            leave

Every change is printed and, with --state-file, persisted.`,
	Args: cobra.NoArgs,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	state, err := initialState()
	if err != nil {
		return err
	}
	r, err := render.New(settings.Format)
	if err != nil {
		return err
	}

	logger := commandLogger(cmd)
	ex := explorer.New(state,
		explorer.WithResolveOptions(settings.ResolveOptions()...),
		explorer.WithLogger(logger),
	)
	out := cmd.OutOrStdout()

	ex.OnChange(func(explorer.State) {
		if err := draw(out, ex, r); err != nil {
			logger.Error(err, "render failed")
		}
	})
	if settings.StateFile != "" {
		ex.OnChange(func(s explorer.State) {
			if err := explorer.SaveStateFile(settings.StateFile, s); err != nil {
				logger.Error(err, "persist state failed", logging.Fields{"path": settings.StateFile})
			}
		})
	}

	if err := draw(out, ex, r); err != nil {
		return err
	}
	return exploreLoop(cmd.InOrStdin(), out, ex)
}

func draw(w io.Writer, ex *explorer.Explorer, r render.Renderer) error {
	res, err := ex.Resolve()
	if err != nil {
		return checkResolveErr(err, ex.State())
	}
	return r.Render(w, res)
}

func exploreLoop(in io.Reader, out io.Writer, ex *explorer.Explorer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		verb, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch verb {
		case "":
			continue
		case "quit", "q", "exit":
			return nil
		case "+":
			ex.Step(1)
		case "-":
			ex.Step(-1)
		case "index":
			index, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(out, "index needs an integer, got %q\n", arg)
				continue
			}
			ex.SetIndex(index)
		case "click":
			y, height, ok := parseClick(arg)
			if !ok {
				fmt.Fprintf(out, "click needs a position and a height, got %q\n", arg)
				continue
			}
			ex.Click(y, height)
		case "scale":
			if err := ex.SetScale(arg); err != nil {
				fmt.Fprintf(out, "%v (known: %s)\n", err, strings.Join(theory.Scales(), ", "))
			}
		default:
			if !ex.KeyPress(verb) {
				fmt.Fprintf(out, "unknown command %q\n", verb)
			}
		}
	}
	return scanner.Err()
}

func parseClick(arg string) (y, height float64, ok bool) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return 0, 0, false
	}
	y, errY := strconv.ParseFloat(fields[0], 64)
	height, errH := strconv.ParseFloat(fields[1], 64)
	if errY != nil || errH != nil || height <= 0 {
		return 0, 0, false
	}
	return y, height, true
}
