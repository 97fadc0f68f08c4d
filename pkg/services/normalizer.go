package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/models"
)

// Fixed replacement texts produced by the normalizer.
const (
	emptyReplyFallback = "I am here to help. Try asking about the menu, hours, or reservations."
	fullMenuOffer      = "I can show the full menu if you'd like — would you like to see the full menu?"
	reservationReply   = "You can visit our reservations page to book your next visit. Just click the button below."
	duplicateNotice    = "I already shared that — would you like more details or a different summary?"
)

var (
	emDashRe        = regexp.MustCompile(`—|--`)
	blankLinesRe    = regexp.MustCompile(`\n{3,}`)
	menuLikeRe      = regexp.MustCompile(`(?i)Appetizers|Entrees|Dessert|Wine list|Menu|Small Plates|Mains|Sides|Drinks|Ingredients`)
	explicitMenuRe  = regexp.MustCompile(`(?i)\b(full menu|show full menu|show menu|display menu|full list of|entire menu)\b`)
	reservationRe   = regexp.MustCompile(`(?i)reserv|book|reservation|reserve|reservations page`)
	repeatRequestRe = regexp.MustCompile(`(?i)repeat|again|say that|repeat that|restate`)
	faqEchoRe       = regexp.MustCompile(`(?is)^Q:\s*(.+?)\s*(?:A:\s*(.*))?$`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

// ReplyNormalizer applies the deterministic post-processing pipeline to a
// model reply before it reaches the widget.
type ReplyNormalizer interface {
	// Normalize runs the ordered transforms: punctuation cleanup, empty
	// fallback, menu-item card, FAQ echo, menu-dump suppression,
	// reservation standardization, and per-conversation deduplication.
	// The returned meta carries the side-channel flags; it is never nil.
	Normalize(ctx context.Context, conversationID, userMessage, reply string, knowledge *models.Knowledge) (string, *models.ReplyMeta)
}

type replyNormalizer struct {
	sessions SessionStore
	logger   *zap.Logger
}

// NewReplyNormalizer creates a normalizer with the given dedup store.
func NewReplyNormalizer(sessions SessionStore, logger *zap.Logger) ReplyNormalizer {
	return &replyNormalizer{
		sessions: sessions,
		logger:   logger.Named("normalizer"),
	}
}

var _ ReplyNormalizer = (*replyNormalizer)(nil)

func (n *replyNormalizer) Normalize(ctx context.Context, conversationID, userMessage, reply string, knowledge *models.Knowledge) (string, *models.ReplyMeta) {
	meta := &models.ReplyMeta{}

	text := formatReply(reply, knowledge)

	// Menu-dump and reservation checks look at the formatted reply, so a
	// later replacement never hides what the model tried to say.
	menuLike := looksLikeMenuDump(text)
	suggestsReservation := reservationRe.MatchString(text)

	if menuLike && !explicitMenuRe.MatchString(userMessage) {
		meta.FullMenu = text
		meta.OfferShowFullMenu = true
		text = fullMenuOffer
	}

	if suggestsReservation {
		meta.ShowReservationButton = true
		text = reservationReply
	}

	text = n.dedup(ctx, conversationID, userMessage, text, meta)

	return text, meta
}

// formatReply applies the content transforms that do not depend on
// conversation state.
func formatReply(reply string, knowledge *models.Knowledge) string {
	r := strings.TrimSpace(reply)
	r = emDashRe.ReplaceAllString(r, ":")
	r = blankLinesRe.ReplaceAllString(r, "\n\n")

	if r == "" {
		return emptyReplyFallback
	}

	if knowledge != nil {
		// Menu item exact match (case-insensitive) becomes an item card.
		for _, item := range knowledge.MenuItems() {
			if strings.EqualFold(item.Name, r) {
				return emDashRe.ReplaceAllString(formatMenuItem(item), ":")
			}
		}
	}

	// FAQ echo: an explicit "Q: ... A: ..." shape.
	if m := faqEchoRe.FindStringSubmatch(r); m != nil {
		question := strings.TrimSpace(m[1])
		answer := strings.TrimSpace(m[2])
		out := emDashRe.ReplaceAllString(fmt.Sprintf("**%s**\n%s", question, answer), ":")
		return blankLinesRe.ReplaceAllString(out, "\n\n")
	}

	// Or a reply that opens with a known FAQ question.
	if knowledge != nil {
		lower := strings.ToLower(r)
		for _, f := range knowledge.Faqs {
			if f.Question != "" && strings.HasPrefix(lower, strings.ToLower(f.Question)) {
				out := emDashRe.ReplaceAllString(fmt.Sprintf("**%s**\n%s", f.Question, f.Answer), ":")
				return blankLinesRe.ReplaceAllString(out, "\n\n")
			}
		}
	}

	return emDashRe.ReplaceAllString(trimLines(r), ":")
}

func (n *replyNormalizer) dedup(ctx context.Context, conversationID, userMessage, text string, meta *models.ReplyMeta) string {
	if n.sessions == nil || conversationID == "" {
		return text
	}

	normalized := normalizeForDedup(text)

	if !repeatRequestRe.MatchString(userMessage) {
		prior, err := n.sessions.Replies(ctx, conversationID)
		if err != nil {
			// Dedup is best-effort; a session-store failure never fails the chat.
			n.logger.Warn("session store read failed", zap.Error(err))
			return text
		}
		for _, prev := range prior {
			if prev == "" {
				continue
			}
			if prev == normalized || strings.Contains(prev, normalized) || strings.Contains(normalized, prev) {
				meta.DuplicateNotice = true
				return duplicateNotice
			}
		}
	}

	if err := n.sessions.Remember(ctx, conversationID, normalized); err != nil {
		n.logger.Warn("session store write failed", zap.Error(err))
	}
	return text
}

func looksLikeMenuDump(text string) bool {
	if menuLikeRe.MatchString(text) {
		return true
	}
	var nonEmpty int
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}
	return nonEmpty >= 6
}

func formatMenuItem(item models.MenuItem) string {
	lines := []string{fmt.Sprintf("**%s**", item.Name)}
	if item.Description != "" {
		lines = append(lines, fmt.Sprintf("• %s", item.Description))
	}
	if item.Price != nil {
		lines = append(lines, fmt.Sprintf("• Price: $%s", strconv.FormatFloat(*item.Price, 'f', -1, 64)))
	}
	if note := item.PairingNote(); note != "" {
		lines = append(lines, fmt.Sprintf("• Pairing: %s", note))
	}
	return strings.Join(lines, "\n")
}

// trimLines strips trailing whitespace per line and surrounding blank space.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func normalizeForDedup(s string) string {
	return strings.ToLower(strings.TrimSpace(whitespaceRunRe.ReplaceAllString(s, " ")))
}
