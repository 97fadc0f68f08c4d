package models

// Knowledge bundles everything fetched for one restaurant before prompt
// assembly. Every field is independently optional; partial data is valid.
type Knowledge struct {
	Restaurant      *Restaurant
	Menus           []Menu
	Faqs            []Faq
	ContactSettings *ContactSettings
}

// MenuItems flattens every item across all menus.
func (k *Knowledge) MenuItems() []MenuItem {
	var items []MenuItem
	for _, m := range k.Menus {
		items = append(items, m.Items...)
	}
	return items
}

// ReplyMeta carries side-channel instructions for the widget alongside the
// normalized reply text.
type ReplyMeta struct {
	// FullMenu retains a suppressed menu dump for later on-demand reveal.
	FullMenu string `json:"full_menu,omitempty"`
	// OfferShowFullMenu is set when the reply was replaced with the
	// show-full-menu offer sentence.
	OfferShowFullMenu bool `json:"offer_show_full_menu,omitempty"`
	// ShowReservationButton instructs the widget to render the canonical
	// reservation button.
	ShowReservationButton bool `json:"show_reservation_button,omitempty"`
	// DuplicateNotice is set when the reply collapsed to the
	// already-shared acknowledgement.
	DuplicateNotice bool `json:"duplicate_notice,omitempty"`
}

// HasFlags reports whether any side-channel field is set.
func (m *ReplyMeta) HasFlags() bool {
	return m.FullMenu != "" || m.OfferShowFullMenu || m.ShowReservationButton || m.DuplicateNotice
}

// ChatReply is the pipeline's final result for one message.
type ChatReply struct {
	Reply          string     `json:"reply"`
	ConversationID string     `json:"conversation_id,omitempty"`
	Meta           *ReplyMeta `json:"meta,omitempty"`
}
