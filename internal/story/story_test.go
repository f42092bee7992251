package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want UserStory
	}{
		{
			name: "full story",
			in:   "As a user, I want X\nSome detail\nAcceptance Criteria:\n- Given A\n- When B",
			want: UserStory{Title: "As a user, I want X", Description: "Some detail", AcceptanceCriteria: []string{"Given A", "When B"}},
		},
		{
			name: "title only",
			in:   "Title only",
			want: UserStory{Title: "Title only", AcceptanceCriteria: []string{}},
		},
		{
			name: "empty",
			in:   "",
			want: UserStory{AcceptanceCriteria: []string{}},
		},
		{
			name: "blank lines dropped",
			in:   "T\n\n  \nLine one\n\nLine two",
			want: UserStory{Title: "T", Description: "Line one\nLine two", AcceptanceCriteria: []string{}},
		},
		{
			name: "marker case insensitive with star bullets",
			in:   "T\nD\nACCEPTANCE CRITERIA:\n*   first \n* second",
			want: UserStory{Title: "T", Description: "D", AcceptanceCriteria: []string{"first", "second"}},
		},
		{
			name: "marker on title line is ignored",
			in:   "Acceptance criteria: none\nmore",
			want: UserStory{Title: "Acceptance criteria: none", Description: "more", AcceptanceCriteria: []string{}},
		},
		{
			name: "criteria without bullets",
			in:   "T\nAcceptance Criteria:\nplain line",
			want: UserStory{Title: "T", AcceptanceCriteria: []string{"plain line"}},
		},
		{
			name: "title kept untrimmed",
			in:   "  Indented title\nD",
			want: UserStory{Title: "  Indented title", Description: "D", AcceptanceCriteria: []string{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestFormat(t *testing.T) {
	s := UserStory{Title: "T", Description: "D", AcceptanceCriteria: []string{"A", "B"}}
	assert.Equal(t, "T\nD\n\nAcceptance Criteria:\n- A\n- B", Format(s))

	assert.Equal(t, "T\n\n\nAcceptance Criteria:\n", Format(UserStory{Title: "T"}))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"As a user, I want X\nSome detail\n\nAcceptance Criteria:\n- Given A\n- When B",
		"As an admin, I want reports\nWeekly\nExported as CSV\n\nAcceptance Criteria:\n- Report lists users",
		"Just a title\n\n\nAcceptance Criteria:\n",
	}
	for _, in := range inputs {
		assert.Equal(t, in, Format(Parse(in)))
	}
}

func TestParseOfFormatIsIdentity(t *testing.T) {
	s := UserStory{Title: "T", Description: "one\ntwo", AcceptanceCriteria: []string{"x", "y"}}
	assert.Equal(t, s, Parse(Format(s)))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Untitled story", Summary(UserStory{}))
	assert.Equal(t, "Login", Summary(UserStory{Title: " Login "}))
}

func TestParseAll(t *testing.T) {
	got := ParseAll([]string{"", "A\nB", "  ", "C"})
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, "A", got[0].Story.Title)
	assert.Equal(t, 3, got[1].Index)
}

func TestCriteria(t *testing.T) {
	assert.Equal(t, []string{"Given A", "When B", "Then C"}, Criteria("- Given A\n\n  * When B  \nThen C\n-"))
	assert.Equal(t, []string{}, Criteria(""))
}
