package session

// Session holds the card list, the cursor into it and the answer history of
// one study session. It is owned by a single Controller.
type Session struct {
	cards   []Card
	cursor  int
	history []Answer
}

// NewSession creates a session over a copy of cards.
func NewSession(cards []Card) *Session {
	return &Session{
		cards: append([]Card(nil), cards...),
	}
}

// Len returns the number of cards in the list, repetitions included.
func (s *Session) Len() int {
	return len(s.cards)
}

// At returns the card at index i.
func (s *Session) At(i int) Card {
	return s.cards[i]
}

// Cursor returns the index of the current card.
func (s *Session) Cursor() int {
	return s.cursor
}

// MoveTo points the cursor at index i. An index at or past the end of the
// list means the session is over.
func (s *Session) MoveTo(i int) {
	s.cursor = i
}

// Done reports whether the cursor has moved past the last card.
func (s *Session) Done() bool {
	return s.cursor >= len(s.cards)
}

// Append adds a card at the end of the list.
func (s *Session) Append(card Card) {
	s.cards = append(s.cards, card)
}

// Replace swaps the card at index i.
func (s *Session) Replace(i int, card Card) {
	s.cards[i] = card
}

// LastIndexOf returns the index of the last card when it shares key, or -1.
func (s *Session) LastIndexOf(key CardKey) int {
	last := len(s.cards) - 1
	if last < 0 || s.cards[last].Key() != key {
		return -1
	}
	return last
}

// SpliceLast removes the last card of the list.
func (s *Session) SpliceLast() {
	if len(s.cards) == 0 {
		return
	}
	s.cards = s.cards[:len(s.cards)-1]
}

// Record appends an answer to the history.
func (s *Session) Record(answer Answer) {
	s.history = append(s.history, answer)
}

// Cards returns a copy of the card list.
func (s *Session) Cards() []Card {
	return append([]Card(nil), s.cards...)
}

// History returns a copy of the answers recorded so far.
func (s *Session) History() []Answer {
	return append([]Answer(nil), s.history...)
}
