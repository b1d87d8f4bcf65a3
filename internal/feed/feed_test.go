package feed

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapi/internal/models"
)

func post(id int64, title, subtitle, content, tags string) models.Post {
	return models.Post{
		ID:       id,
		Title:    title,
		Subtitle: models.StringPtr(subtitle),
		Content:  content,
		Tags:     models.StringPtr(tags),
	}
}

var samplePosts = []models.Post{
	post(3, "Go Concurrency", "Channels and you", "<p>Goroutines are cheap</p>", "go, concurrency"),
	post(2, "React Hooks", "", "<p>useEffect explained</p>", "javascript, React"),
	post(1, "Postgres Tips", "Indexes", "VACUUM often", ""),
}

func ids(posts []models.Post) []int64 {
	out := make([]int64, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		tag   string
		want  []int64
	}{
		{"No criteria", "", "", []int64{3, 2, 1}},
		{"Title match is case-insensitive", "go CONC", "", []int64{3}},
		{"Subtitle match", "indexes", "", []int64{1}},
		{"Content match includes markup", "<p>", "", []int64{3, 2}},
		{"Tag substring", "", "react", []int64{2}},
		{"Tag substring of another tag", "", "script", []int64{2}},
		{"Post without tags never matches a tag", "", "vacuum", []int64{}},
		{"Both criteria", "hooks", "go", []int64{}},
		{"Both criteria match", "explained", "JAVA", []int64{2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Filter(samplePosts, tc.query, tc.tag)))
		})
	}
}

func TestFilter_SubsetProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []string{"go", "Go", "rust", "SQL", "blog", "", "tips", "Ünïcode"}
	pick := func() string { return words[rng.Intn(len(words))] }

	for i := 0; i < 200; i++ {
		posts := make([]models.Post, rng.Intn(8))
		for j := range posts {
			posts[j] = post(int64(j+1), pick()+" "+pick(), pick(), pick(), pick()+", "+pick())
		}
		query := pick()

		got := Filter(posts, query, "")

		require.LessOrEqual(t, len(got), len(posts))
		q := strings.ToLower(query)
		for _, p := range got {
			assert.Contains(t, ids(posts), p.ID)
			hit := strings.Contains(strings.ToLower(p.Title), q) ||
				strings.Contains(strings.ToLower(p.SubtitleText()), q) ||
				strings.Contains(strings.ToLower(p.Content), q)
			assert.True(t, hit, "post %d does not contain %q", p.ID, query)
		}
	}
}

func TestUniqueTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, UniqueTags([]models.Post{post(1, "t", "", "c", "a, b ,a")}))

	assert.Equal(t,
		[]string{"go", "concurrency", "javascript", "React"},
		UniqueTags(samplePosts))

	assert.Equal(t, []string{}, UniqueTags(nil))
	assert.Equal(t, []string{"x"}, UniqueTags([]models.Post{post(1, "t", "", "c", " , x,, ")}))
}

func TestTopTags(t *testing.T) {
	p := post(1, "t", "", "c", "a, b, c, d")
	assert.Equal(t, []string{"a", "b", "c"}, TopTags(p, 3))
	assert.Equal(t, []string{"a", "b", "c", "d"}, TopTags(p, 10))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Hello World & more", Excerpt("<p>Hello</p><p>World &amp; more</p>", 120))
	assert.Equal(t, "Hello...", Excerpt("<h1>Hello</h1> world", 5))
	assert.Equal(t, "héllo...", Excerpt("héllo wörld", 5))
	assert.Equal(t, "", Excerpt("<img src=x>", 10))
	assert.Equal(t, "alert", PlainText("<b>alert</b><script>evil()</script>"))
}

type MockSource struct {
	mock.Mock
}

func (m *MockSource) ListPosts(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockSource) DeletePost(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func TestView(t *testing.T) {
	ctx := context.Background()
	source := new(MockSource)
	source.On("ListPosts", mock.Anything).Return(samplePosts, nil).Once()
	source.On("ListPosts", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	source.On("DeletePost", mock.Anything, int64(2)).Return("", errors.New("500")).Once()
	source.On("DeletePost", mock.Anything, int64(2)).Return("Post deleted successfully", nil).Once()

	view := NewView(source)
	assert.Empty(t, view.Visible())

	require.NoError(t, view.Refresh(ctx))
	assert.Equal(t, []int64{3, 2, 1}, ids(view.Visible()))
	assert.False(t, view.Filtering())

	view.SetTag("react")
	assert.Equal(t, []int64{2}, ids(view.Visible()))
	assert.True(t, view.Filtering())
	view.SetTag("")

	// failed refresh keeps the last good collection
	require.Error(t, view.Refresh(ctx))
	assert.Error(t, view.Err())
	assert.Len(t, view.Posts(), 3)

	// failed delete leaves the post in place
	require.Error(t, view.Delete(ctx, 2))
	assert.Equal(t, []int64{3, 2, 1}, ids(view.Posts()))

	require.NoError(t, view.Delete(ctx, 2))
	assert.Equal(t, []int64{3, 1}, ids(view.Posts()))
	assert.NoError(t, view.Err())
	assert.Equal(t, []string{"go", "concurrency"}, view.Tags())

	source.AssertExpectations(t)
}
