package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Pranama Lakshan", c.Profile.Name)
	assert.Equal(t, []string{"AI Engineer", "Frontend Developer"}, c.Profile.Titles)
	assert.Equal(t, "pranamalakshan360@gmail.com", c.Profile.Email)
	assert.Equal(t, "/profile.jpg", c.Profile.Photo)
	assert.Equal(t, "/cv.pdf", c.Profile.CV)

	var anchors []string
	for _, n := range c.Nav {
		anchors = append(anchors, n.Anchor)
	}
	assert.Equal(t, []string{"#about", "#projects", "#experience", "#skills", "#connect"}, anchors)

	assert.Len(t, c.Projects, 6)
	assert.Len(t, c.Skills, 4)
	assert.Len(t, c.Socials, 6)
	require.Len(t, c.Experience, 1)
	assert.Equal(t, "LOLC Holdings PLC", c.Experience[0].Company)
}

func TestProjectLinks(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	inv := c.Projects[0]
	assert.False(t, inv.HasLink())
	assert.False(t, inv.HasSource())

	clubs := c.Projects[1]
	assert.False(t, clubs.HasLink())
	assert.True(t, clubs.HasSource())
}

func TestSection(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.True(t, c.Section("#connect"))
	assert.False(t, c.Section("#blog"))
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "no titles",
			doc:  "profile:\n  email: a@b.com\n",
			want: "profile.titles",
		},
		{
			name: "no email",
			doc:  "profile:\n  titles: [x]\n",
			want: "profile.email",
		},
		{
			name: "bad anchor",
			doc:  "profile:\n  email: a@b.com\n  titles: [x]\nnav:\n  - name: About\n    anchor: about\n",
			want: "must look like #section",
		},
		{
			name: "duplicate anchor",
			doc:  "profile:\n  email: a@b.com\n  titles: [x]\nnav:\n  - {name: A, anchor: \"#a\"}\n  - {name: B, anchor: \"#a\"}\n",
			want: "duplicate anchor",
		},
		{
			name: "not yaml",
			doc:  "profile: [",
			want: "decode content",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
