package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/models"
	"github.com/tandem-ai/tandem-engine/pkg/repositories"
)

// defaultWineStyle describes a pairing whose record carries no style.
const defaultWineStyle = "a smooth red"

// ToolDispatcher executes model-requested function calls.
type ToolDispatcher interface {
	// Dispatch runs the named tool with its raw JSON arguments and returns
	// the rendered reply text. ok is false for unknown tools or unusable
	// arguments; the caller substitutes a generic apology. A store failure
	// is returned as an apperrors.ErrUpstream error.
	Dispatch(ctx context.Context, name, arguments string) (text string, ok bool, err error)
}

type toolDispatcher struct {
	pairingRepo repositories.WinePairingRepository
	logger      *zap.Logger
}

// NewToolDispatcher creates a dispatcher over the wine pairing store.
func NewToolDispatcher(pairingRepo repositories.WinePairingRepository, logger *zap.Logger) ToolDispatcher {
	return &toolDispatcher{
		pairingRepo: pairingRepo,
		logger:      logger.Named("dispatcher"),
	}
}

var _ ToolDispatcher = (*toolDispatcher)(nil)

func (d *toolDispatcher) Dispatch(ctx context.Context, name, arguments string) (string, bool, error) {
	switch name {
	case "lookup_wine_pairing":
		return d.lookupWinePairing(ctx, arguments)
	default:
		d.logger.Warn("unknown tool requested", zap.String("tool", name))
		return "", false, nil
	}
}

func (d *toolDispatcher) lookupWinePairing(ctx context.Context, arguments string) (string, bool, error) {
	var args struct {
		Dish string `json:"dish"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		d.logger.Warn("unparseable tool arguments", zap.Error(err))
		return "", false, nil
	}
	if strings.TrimSpace(args.Dish) == "" {
		return "", false, nil
	}

	pairing, err := d.pairingRepo.Lookup(ctx, args.Dish)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Sprintf(`I couldn't find a pairing for "%s".`, args.Dish), true, nil
		}
		return "", false, fmt.Errorf("%w: pairing lookup: %v", apperrors.ErrUpstream, err)
	}

	return RenderPairing(pairing), true, nil
}

// RenderPairing produces the natural-language pairing sentence. Notes are
// truncated to the first two comma-separated clauses.
func RenderPairing(pairing *models.WinePairing) string {
	style := pairing.Style
	if style == "" {
		style = defaultWineStyle
	}

	text := fmt.Sprintf("%s pairs well with our %s — %s", pairing.Dish, pairing.Wine, style)
	if notes := truncateNotes(pairing.Notes); notes != "" {
		text += fmt.Sprintf(" with %s notes.", notes)
	}
	return text
}

func truncateNotes(notes string) string {
	clauses := strings.Split(notes, ",")
	if len(clauses) > 2 {
		clauses = clauses[:2]
	}
	var kept []string
	for _, c := range clauses {
		if c = strings.TrimSpace(c); c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, " and ")
}
