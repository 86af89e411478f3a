package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/postpager/internal/config"
	"github.com/rshade/postpager/internal/logging"
	"github.com/rshade/postpager/internal/posts"
	"github.com/rshade/postpager/internal/tui"
)

// runPosts builds the loader for the configured endpoint and routes it to the
// renderer selected by the output mode.
func runPosts(cmd *cobra.Command, forcePlain bool) error {
	ctx := cmd.Context()
	src := config.GetSourceConfig()

	client := posts.NewClient(src.Endpoint, src.Timeout)
	loader := posts.NewLoader(client.Fetch)
	loader.Subscribe(logTransitions(ctx))

	mode := tui.DetectOutputMode(forcePlain, stdoutFile(cmd))
	logger.Debug().Ctx(ctx).
		Str("endpoint", src.Endpoint).
		Str("mode", mode.String()).
		Msg("showing posts")

	switch mode {
	case tui.OutputModeInteractive:
		return runInteractive(ctx, loader)
	default:
		return tui.RenderPlain(cmd.OutOrStdout(), loader.Load(ctx))
	}
}

func runInteractive(ctx context.Context, loader *posts.Loader) error {
	m := tui.NewPostsViewModel(ctx, loader.Load)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}

// logTransitions returns a listener that logs every LoadState change. A
// failed fetch is logged once at warn level and never returned as an error.
func logTransitions(ctx context.Context) posts.Listener {
	log := logging.FromContext(ctx)
	return func(state posts.LoadState) {
		switch state.Phase {
		case posts.PhaseLoaded:
			log.Info().Int("records", len(state.Records)).Msg("posts loaded")
		case posts.PhaseFailed:
			log.Warn().Str("error", state.Message).Msg("posts fetch failed")
		default:
			log.Debug().Stringer("phase", state.Phase).Msg("load state changed")
		}
	}
}

// stdoutFile returns the command's stdout when it is a file, for terminal
// detection. Writers that are not files are never interactive.
func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}
