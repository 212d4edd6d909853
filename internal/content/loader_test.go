package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Loads(t *testing.T) {
	t.Parallel()

	m, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Ishaan Parekh", m.Profile.Name)
	assert.Len(t, m.Experience, 2)
	assert.Len(t, m.Projects, 5)
	assert.Len(t, m.Certifications, 3)
	assert.Len(t, m.Education, 2)
	assert.Len(t, m.About, 3)
}

func TestDefault_KeepsFileOrder(t *testing.T) {
	t.Parallel()

	m, err := Default()
	require.NoError(t, err)

	terms := make([]string, 0, len(m.Coursework))
	for _, term := range m.Coursework {
		terms = append(terms, term.Name)
	}
	assert.Equal(t, []string{"Spring 2026 (Current)", "Fall 2025", "Spring 2025", "Fall 2024"}, terms)

	cats := make([]string, 0, len(m.Skills))
	for _, c := range m.Skills {
		cats = append(cats, c.Name)
	}
	assert.Equal(t, []string{"Languages", "Frontend", "Backend", "Cloud & DevOps", "AI/ML", "Databases", "Tools & APIs"}, cats)

	assert.Equal(t, "CS 5003", m.Coursework[2].Courses[0].Code)
	assert.Equal(t, "C++", m.Skills[0].Skills[5])
}

func TestDefault_OptionalFields(t *testing.T) {
	t.Parallel()

	m, err := Default()
	require.NoError(t, err)

	codecraft := m.Projects[0]
	require.NotNil(t, codecraft.GitHub)
	require.NotNil(t, codecraft.Demo)
	assert.Nil(t, codecraft.Team)

	askYourMail := m.Projects[1]
	assert.Nil(t, askYourMail.GitHub)
	require.NotNil(t, askYourMail.Demo)
	assert.Equal(t, "https://sites.google.com/view/askyourmail", *askYourMail.Demo)

	dineEasy := m.Projects[2]
	assert.Nil(t, dineEasy.GitHub)
	assert.Nil(t, dineEasy.Demo)
	require.NotNil(t, dineEasy.Team)

	require.NotNil(t, m.Certifications[0].Link)
	assert.Nil(t, m.Certifications[1].Link)
}

func TestModel_HasSkill(t *testing.T) {
	t.Parallel()

	m, err := Default()
	require.NoError(t, err)

	assert.True(t, m.HasSkill("Languages", 0))
	assert.True(t, m.HasSkill("AI/ML", 8))
	assert.False(t, m.HasSkill("AI/ML", 9))
	assert.False(t, m.HasSkill("Languages", -1))
	assert.False(t, m.HasSkill("Cooking", 0))
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "profile: [",
			wantErr: "failed to parse portfolio yaml",
		},
		{
			name:    "missing name",
			yaml:    "profile:\n  bio: hi\nabout: [x]\n",
			wantErr: "invalid portfolio",
		},
		{
			name: "bad project link",
			yaml: `profile: {name: A, bio: B}
about: [x]
projects:
  - title: T
    description: D
    demo: "not a url"
`,
			wantErr: "invalid portfolio",
		},
		{
			name: "duplicate skill category",
			yaml: `profile: {name: A, bio: B}
about: [x]
skills:
  - {name: Go, skills: [a]}
  - {name: Go, skills: [b]}
`,
			wantErr: "duplicate skill category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	err := os.WriteFile(path, []byte(`profile: {name: Jane Doe, bio: Builds things.}
about: [Hello]
projects:
  - title: Tool
    description: A tool.
    github: null
    demo: "https://example.com"
`), 0o600)
	require.NoError(t, err)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", m.Profile.Name)
	require.Len(t, m.Projects, 1)
	assert.Nil(t, m.Projects[0].GitHub)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read content file")
}
