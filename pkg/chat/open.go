package chat

import (
	"context"

	"github.com/ccollicutt/chatlog/pkg/config"
	"github.com/ccollicutt/chatlog/pkg/parser"
)

// OpenConfigured reads every export named by the configuration, using
// its header pattern and timestamp layout, and merges multiple exports
// into one chronological collection.
func OpenConfigured(ctx context.Context, cfg *config.Config) (*Chat, error) {
	pattern := cfg.HeaderFormat.CompiledPattern()
	if pattern == nil {
		// Config was built by hand rather than loaded
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
		pattern = cfg.HeaderFormat.CompiledPattern()
	}

	sources := make([]parser.EntrySource, 0, len(cfg.Sources))
	for _, path := range cfg.Sources {
		sources = append(sources, parser.NewFileSourceWithPattern(path, pattern))
	}

	if len(sources) == 1 {
		src := sources[0]
		defer src.Close()
		return OpenSource(ctx, src)
	}

	merged := parser.NewMergedSourceWithLayout(cfg.HeaderFormat.Layout, sources...)
	defer merged.Close()
	return OpenSource(ctx, merged)
}
