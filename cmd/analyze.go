package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/sonido-escala/algorithms/chroma"
	"github.com/RyanBlaney/sonido-escala/algorithms/tonal"
	"github.com/RyanBlaney/sonido-escala/render"
	"github.com/RyanBlaney/sonido-escala/theory"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [scale]",
	Short: "Profile a resolved scale and estimate its key",
	Long: "Builds the pitch-class profile of the resolved notes, its interval vector and " +
		"DFT magnitudes, and correlates the profile with key templates as a cross-check " +
		"of the key signature.",
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Int("index", 0, "transposition index in semitones")
	analyzeCmd.Flags().String("state", "", "query string such as index=3&scale=Minor")
	analyzeCmd.Flags().String("from", "", "start on this note, e.g. Eb4 (sets the index and the base octave)")
	analyzeCmd.Flags().String("profile", "krumhansl", "key profile: "+strings.Join(tonal.GetSupportedProfiles(), ", "))
	_ = viper.BindPFlag("profile", analyzeCmd.Flags().Lookup("profile"))
	rootCmd.AddCommand(analyzeCmd)
}

// Analysis is everything analyze reports about one resolution.
type Analysis struct {
	Resolution      theory.Resolution         `json:"resolution" toml:"resolution"`
	PitchClasses    []chroma.PitchClass       `json:"pitch_classes" toml:"pitch_classes"`
	Entropy         float64                   `json:"entropy" toml:"entropy"`
	IntervalVector  [6]int                    `json:"interval_vector" toml:"interval_vector"`
	Fourier         []float64                 `json:"fourier" toml:"fourier"`
	Estimate        tonal.KeyEstimationResult `json:"estimate" toml:"estimate"`
	Related         map[string]string         `json:"related" toml:"related"`
	// SignatureAgrees is true when the estimated key is the signature's
	// major key or a close relative of it.
	SignatureAgrees bool                      `json:"signature_agrees" toml:"signature_agrees"`
	TemplateFit     map[string]float64        `json:"template_fit" toml:"template_fit"`
	Relationships   map[string]float64        `json:"relationships" toml:"relationships"`
	Chords          tonal.DiatonicHarmony     `json:"chords" toml:"chords"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	state, fromOpts, err := showState(cmd, args)
	if err != nil {
		return err
	}

	// Chords need both octaves regardless of --notes.
	opts := append(settings.ResolveOptions(), fromOpts...)
	opts = append(opts, theory.WithNoteCount(theory.SequenceLength))
	res, err := theory.Resolve(state.ScaleID, state.Index, opts...)
	if err != nil {
		return checkResolveErr(err, state)
	}

	profile, err := tonal.ParseKeyProfile(settings.Profile)
	if err != nil {
		return err
	}
	a, err := analyze(res, profile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(settings.Format) {
	case render.FormatJSON:
		return render.JSON{Indent: "  "}.Encode(out, a)
	case render.FormatTOML:
		return render.TOML{}.Encode(out, a)
	default:
		return writeAnalysis(out, a)
	}
}

func analyze(res theory.Resolution, profile tonal.KeyProfile) (Analysis, error) {
	pca := chroma.NewPitchClassAnalyzer()
	p := pca.CreateProfile(res.Notes)
	set := chroma.PitchClassSet(res.Notes)

	fourier, err := chroma.FourierMagnitudes(chroma.SetVector(set))
	if err != nil {
		return Analysis{}, err
	}

	chords, err := tonal.DiatonicChords(res.Notes)
	if err != nil {
		return Analysis{}, err
	}

	ke := tonal.NewKeyEstimatorWithParams(tonal.KeyEstimationParams{Profile: profile, MaxCandidates: 3})
	est, err := ke.EstimateKeyFromNotes(res.Notes)
	if err != nil {
		return Analysis{}, err
	}

	signature, err := theory.LookupKey(res.KeyName)
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{
		Resolution:      res,
		PitchClasses:    pca.ExtractPitchClasses(p, 0),
		Entropy:         p.Entropy,
		IntervalVector:  chroma.IntervalVector(set),
		Fourier:         fourier,
		Estimate:        est,
		Related:         tonal.Related(est.Key, est.Mode),
		SignatureAgrees: tonal.IsKeyCompatible(signature.ChromaticValue, tonal.KeyModeMajor, est.Key, est.Mode),
		TemplateFit:     pca.ComparePitchClassProfiles(p.Profile, ke.Template(est.Key, est.Mode)),
		Relationships:   pca.AnalyzeKeyRelationships(p.Profile),
		Chords:          chords,
	}, nil
}

func writeAnalysis(w io.Writer, a Analysis) error {
	if err := (render.Text{}).Render(w, a.Resolution); err != nil {
		return err
	}

	classes := make([]string, len(a.PitchClasses))
	for i, pc := range a.PitchClasses {
		classes[i] = fmt.Sprintf("%s:%.2f", pc.Name, pc.Weight)
	}
	triads := make([]string, len(a.Chords.Triads))
	for i, c := range a.Chords.Triads {
		triads[i] = c.Roman + "=" + c.Symbol
	}
	sevenths := make([]string, len(a.Chords.Sevenths))
	for i, c := range a.Chords.Sevenths {
		sevenths[i] = c.Symbol
	}
	fourier := make([]string, len(a.Fourier))
	for i, m := range a.Fourier {
		fourier[i] = fmt.Sprintf("%.3f", m)
	}

	_, err := fmt.Fprintf(w,
		"pitch classes: %s\nentropy: %.3f bits\ninterval vector: %v\nfourier: %s\nestimated key: %s (r=%.3f, %s)\nrelative: %s, dominant: %s, subdominant: %s\nsignature agrees: %t\ntemplate fit: cosine=%.3f euclidean=%.3f\ntriad strength: major=%.4f minor=%.4f\ntriads: %s\nsevenths: %s\n",
		strings.Join(classes, " "),
		a.Entropy,
		a.IntervalVector,
		strings.Join(fourier, " "),
		a.Estimate.KeyName, a.Estimate.Confidence, a.Estimate.KeyProfile,
		a.Related["relative"], a.Related["dominant"], a.Related["subdominant"],
		a.SignatureAgrees,
		a.TemplateFit["cosine_similarity"], a.TemplateFit["euclidean_distance"],
		a.Relationships["major_triad_strength"], a.Relationships["minor_triad_strength"],
		strings.Join(triads, " "),
		strings.Join(sevenths, " "),
	)
	return err
}
