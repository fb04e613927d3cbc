package root

import (
	"log"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/sift/internal/constants"
	"github.com/Paintersrp/sift/internal/parser"
	"github.com/Paintersrp/sift/internal/state"
	"github.com/Paintersrp/sift/internal/tui/browse"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "sift [notes-file]",
		Short:   "Search and read a file of short notes from the terminal.",
		Version: constants.Version,
		Long: heredoc.Doc(`
			Type keywords to narrow the list of notes, use the arrow keys to move
			the highlight and press enter to read the highlighted note.
			Escape goes back to the list, or quits when already on the list.

			Notes are read from a plain text file where each note is a header
			line followed by body lines and closed by a line holding only "%".
			Blank lines and lines starting with "#" are ignored.

			The notes file defaults to the notes_file setting in
			~/.sift/cfg.yaml and may be overridden with SIFT_NOTES_FILE or by
			passing a path.
		`),
		Example: heredoc.Doc(`
			sift
			sift ~/notes/recipes
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, args)
		},
	}

	return cmd, nil
}

func run(s *state.State, args []string) error {
	if len(args) == 1 {
		s.Config.SetNotesFile(args[0])
	}

	path := s.Config.NotesPath()
	store, err := parser.ParseFile(path)
	if err != nil {
		log.Printf("setup failed: %v", err)
		return err
	}
	log.Printf("loaded %d notes from %s", store.Len(), path)

	opts := browse.OptionsFromConfig(s.Config)
	opts.Watcher = s.WatchNotes()
	if err := browse.Run(store, opts); err != nil {
		log.Printf("session failed: %v", err)
		return err
	}

	log.Printf("session ended")
	return nil
}
