package project

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{in: "static", want: Static},
		{in: "fullstack", want: Fullstack},
		{in: "backend", want: Backend},
		{in: "mobile", want: Mobile},
		{in: " Mobile ", want: Mobile},
		{in: "", wantErr: true},
		{in: "desktop", wantErr: true},
		{in: "full-stack", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypesIsACopy(t *testing.T) {
	types := Types()
	types[0] = "mutated"
	assert.Equal(t, Static, Types()[0])
}

func TestUnionDropsPlaceholdersAndDuplicates(t *testing.T) {
	got := Union([]string{"A", "", "B"}, []string{"  ", "A", "C"})
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestUnionOfNothingIsEmptyNotNil(t *testing.T) {
	got := Union(nil, []string{""})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilled(t *testing.T) {
	assert.Equal(t, []string{"x", "y"}, Filled([]string{"", "x", " ", "y"}))
}

func TestCollectionItemsRoundTrip(t *testing.T) {
	var d Details
	for _, c := range []Collection{Features, TechStack, UserStories} {
		d.SetItems(c, []string{string(c)})
		assert.Equal(t, []string{string(c)}, d.Items(c))
	}
	assert.Equal(t, []string{"features"}, d.Features)
	assert.Equal(t, []string{"techStack"}, d.TechStack)
	assert.Equal(t, []string{"userStories"}, d.UserStories)
}

func TestParseCollection(t *testing.T) {
	for _, c := range []Collection{Features, TechStack, UserStories} {
		got, err := ParseCollection(c.Slug())
		require.NoError(t, err)
		assert.Equal(t, c, got)

		got, err = ParseCollection(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCollection("stories")
	assert.Error(t, err)
}

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "project_type_fullstack", SnapshotKey(Fullstack))
}
