package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/changomango/portfolio/internal/apperr"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefault_IsValid(t *testing.T) {
	site := Default()
	require.NoError(t, site.Validate())
	assert.Equal(t, "ml", site.Categories[0].ID)
	assert.NotEmpty(t, site.Projects)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a, b := Default(), Default()
	a.Projects[0].Title = "changed"
	assert.Equal(t, "Neural Style Transfer", b.Projects[0].Title)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Site)
		want   string
	}{
		{
			name:   "duplicate project id",
			mutate: func(s *Site) { s.Projects[1].ID = s.Projects[0].ID },
			want:   "duplicate project id",
		},
		{
			name:   "unknown category",
			mutate: func(s *Site) { s.Projects[0].Category = "cooking" },
			want:   "category",
		},
		{
			name:   "unknown status",
			mutate: func(s *Site) { s.Projects[0].Status = "abandoned" },
			want:   "status",
		},
		{
			name:   "bad date",
			mutate: func(s *Site) { s.Projects[0].Date = "15/03/2024" },
			want:   "ISO date",
		},
		{
			name:   "duplicate category",
			mutate: func(s *Site) { s.Categories[1].ID = s.Categories[0].ID },
			want:   "duplicate category id",
		},
		{
			name:   "no categories",
			mutate: func(s *Site) { s.Categories = nil },
			want:   "categories",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := Default()
			tt.mutate(site)
			err := site.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrInvalidContent)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLookups(t *testing.T) {
	site := Default()

	c, ok := site.Category("fintech")
	require.True(t, ok)
	assert.Equal(t, "Fintech & Data", c.Name)
	assert.Equal(t, "💰", site.CategoryIcon("fintech"))
	assert.Empty(t, site.CategoryIcon("nope"))

	p, ok := site.Project("4")
	require.True(t, ok)
	assert.Equal(t, "Full-stack E-commerce Platform", p.Title)
	_, ok = site.Project("404")
	assert.False(t, ok)
}

func TestFeaturedProjects_MostRecentFirst(t *testing.T) {
	var ids []string
	for _, p := range Default().FeaturedProjects() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"4", "1", "5"}, ids)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "In Progress", StatusLabel(StatusInProgress))
	assert.Equal(t, "Completed", StatusLabel(StatusCompleted))
	assert.Equal(t, "Archived", StatusLabel("archived"))
}

func writeContent(t *testing.T, path string, site *Site) {
	t.Helper()
	data, err := yaml.Marshal(site)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestLoadFile_RoundTripsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	want := Default()
	want.Projects[4].Description = "Backtested on $2M of tick data, cost $USD 40/month"
	want.Projects[4].Metrics = append(want.Projects[4].Metrics, Metric{Label: "Capital", Value: "$1.5M"})
	writeContent(t, path, want)

	got, err := LoadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadFile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_SampleContent(t *testing.T) {
	site, err := LoadFile(filepath.Join("..", "..", "content", "site.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Changomango", site.Author.Name)
	ml, ok := site.Category("ml")
	require.True(t, ok)
	assert.Equal(t, "Machine Learning & AI", ml.Name)
	assert.Len(t, site.FeaturedProjects(), 2)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	site := Default()
	site.Projects[0].Category = "cooking"
	writeContent(t, path, site)

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, apperr.ErrInvalidContent)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeContent(t, path, Default())

	store := NewStore(Default())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, store, zap.NewNop()) }()

	updated := Default()
	updated.Name = "Updated Portfolio"

	// The watcher may not be registered yet on the first write.
	require.Eventually(t, func() bool {
		writeContent(t, path, updated)
		return store.Current().Name == "Updated Portfolio"
	}, 5*time.Second, 400*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_KeepsPreviousOnInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeContent(t, path, Default())

	store := NewStore(Default())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, store, zap.NewNop()) }()

	require.NoError(t, os.WriteFile(path, []byte("projects: [not: valid"), 0o644))
	time.Sleep(2 * ReloadDelay)
	assert.Equal(t, "Changomango Portfolio", store.Current().Name)

	cancel()
	require.NoError(t, <-done)
	// Let any in-flight reload finish before goleak checks.
	time.Sleep(ReloadDelay)
}
