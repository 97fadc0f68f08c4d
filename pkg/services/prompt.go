package services

import (
	"fmt"
	"strings"

	"github.com/tandem-ai/tandem-engine/pkg/models"
)

// Fixed policy blocks appended to every system prompt. Kept verbatim so the
// assistant's tone and the reservation button markup stay stable.
const hostessInstructions = `
HOSTESS RESPONSE RULES:
- Short, friendly, hostess-on-the-phone tone for replies.
- Do NOT list the full menu unless the user explicitly asks to "see the menu" or requests the full menu.
- Prefer short summaries or highlights rather than item-by-item lists.
- If asked "What else do you have besides wine?", ask whether they mean "food" or "drinks". If the user clarifies:
  - food: reply: "Our menu leans into comfort-driven, seasonal cooking that feels warm and familiar but elevated. It brings together farm-style plates, handmade pastas, flatbreads, and coastal classics."
  - drinks: reply with a short 1-2 sentence description of the craft beers and cocktails offered.
  - both: combine the two responses into one short, smooth reply.
- When recommending a reservation, include the exact reservation button HTML:
  <a href="https://windmillcreekvineyard.com/mariner-house-dining-reservations-2/" target="_blank"><button>Make a reservation</button></a>
`

const winePairingInstructions = `
Only use wine-pairing logic when the restaurant's data includes pairings. Use pairing lookups ONLY when the user asks for a pairing for a specific dish. When returning a pairing, say "our <Wine Name>".
`

const winePairingResponseStyle = `
When returning a wine pairing, always prefix with "our" (example: "our Chambourcin").
`

// PromptAssembler builds the system prompt from fetched knowledge.
type PromptAssembler interface {
	// Assemble is pure: identical knowledge yields a byte-identical prompt.
	Assemble(knowledge *models.Knowledge) string
}

type promptAssembler struct{}

// NewPromptAssembler creates the assembler.
func NewPromptAssembler() PromptAssembler {
	return &promptAssembler{}
}

var _ PromptAssembler = (*promptAssembler)(nil)

func (a *promptAssembler) Assemble(knowledge *models.Knowledge) string {
	var b strings.Builder

	if knowledge != nil && knowledge.Restaurant != nil {
		r := knowledge.Restaurant
		fmt.Fprintf(&b, "You are an assistant for %s (%s). ", r.Name, r.DisplayShortName())

		if len(knowledge.Menus) > 0 {
			b.WriteString("\nMenus available:\n")
			for _, menu := range knowledge.Menus {
				fmt.Fprintf(&b, "-- %s: %d items\n", menu.Title, len(menu.Items))
			}
		}

		if len(knowledge.Faqs) > 0 {
			b.WriteString("\nFAQs:\n")
			for _, f := range knowledge.Faqs {
				fmt.Fprintf(&b, "Q: %s A: %s\n", f.Question, f.Answer)
			}
		}

		if s := knowledge.ContactSettings; s != nil && s.Enabled && s.Message != "" {
			fmt.Fprintf(&b, "\nIf asked for contact information you do not have, say: %s\n", s.Message)
		}
	}

	b.WriteString(hostessInstructions)
	b.WriteString(winePairingInstructions)
	b.WriteString(winePairingResponseStyle)

	return b.String()
}
