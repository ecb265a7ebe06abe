package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-escala/explorer"
	"github.com/RyanBlaney/sonido-escala/render"
	"github.com/RyanBlaney/sonido-escala/theory"
)

var showCmd = &cobra.Command{
	Use:   "show [scale]",
	Short: "Print the key signature and spelled notes of a scale",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Int("index", 0, "transposition index in semitones")
	showCmd.Flags().String("state", "", "query string such as index=3&scale=Minor")
	showCmd.Flags().String("from", "", "start on this note, e.g. Eb4 (sets the index and the base octave)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	state, opts, err := showState(cmd, args)
	if err != nil {
		return err
	}

	res, err := theory.Resolve(state.ScaleID, state.Index, append(settings.ResolveOptions(), opts...)...)
	if err != nil {
		return checkResolveErr(err, state)
	}

	r, err := render.New(settings.Format)
	if err != nil {
		return err
	}
	return r.Render(cmd.OutOrStdout(), res)
}

// showState layers the --state query, the positional scale and --index or
// --from over the configured state. --from also yields the base octave.
func showState(cmd *cobra.Command, args []string) (explorer.State, []theory.Option, error) {
	state, err := initialState()
	if err != nil {
		return explorer.State{}, nil, err
	}

	if q, _ := cmd.Flags().GetString("state"); q != "" {
		state = explorer.ParseState(q)
	}
	if len(args) == 1 {
		if _, err := theory.LookupScale(args[0]); err != nil {
			return explorer.State{}, nil, err
		}
		state.ScaleID = args[0]
	}

	from, _ := cmd.Flags().GetString("from")
	if from == "" {
		if cmd.Flags().Changed("index") {
			state.Index, _ = cmd.Flags().GetInt("index")
		}
		return state, nil, nil
	}

	if cmd.Flags().Changed("index") {
		return explorer.State{}, nil, errors.New("use either --index or --from")
	}
	first, err := theory.ParseScientific(from)
	if err != nil {
		return explorer.State{}, nil, err
	}
	if state.Index, err = theory.IndexFor(state.ScaleID, first); err != nil {
		return explorer.State{}, nil, err
	}
	return state, []theory.Option{theory.WithBaseOctave(first.Octave)}, nil
}
