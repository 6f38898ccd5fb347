package tmuxtest

import (
	"fmt"

	"github.com/golang/mock/gomock"
	"github.com/scribe-sh/tmux-scribe/internal/tmux"
)

// ListPanesRequestMatcher is a gomock matcher that matches
// tmux.ListPanesRequest objects by target, ignoring the format string.
type ListPanesRequestMatcher struct {
	Target string
}

var _ gomock.Matcher = ListPanesRequestMatcher{}

func (m ListPanesRequestMatcher) String() string {
	return fmt.Sprintf("ListPanesRequest{Target: %q}", m.Target)
}

// Matches reports whether the provided ListPanesRequest matches.
func (m ListPanesRequestMatcher) Matches(x interface{}) bool {
	req, ok := x.(tmux.ListPanesRequest)
	if !ok {
		return false
	}

	return req.Target == m.Target
}

// SendKeysRequestMatcher is a gomock matcher that matches
// tmux.SendKeysRequest objects by literal text.
type SendKeysRequestMatcher struct {
	Text string
}

var _ gomock.Matcher = SendKeysRequestMatcher{}

func (m SendKeysRequestMatcher) String() string {
	return fmt.Sprintf("SendKeysRequest{Text: %q}", m.Text)
}

// Matches reports whether the provided SendKeysRequest matches.
func (m SendKeysRequestMatcher) Matches(x interface{}) bool {
	req, ok := x.(tmux.SendKeysRequest)
	if !ok {
		return false
	}

	return req.Text == m.Text
}
