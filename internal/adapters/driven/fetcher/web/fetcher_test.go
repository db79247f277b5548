package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsdex/internal/core/domain"
)

const testPage = `<!DOCTYPE html>
<html>
<head><title>An Article</title><style>p { color: red }</style></head>
<body>
  <script>var tracking = "ignore me";</script>
  <nav>Home | Politics | Sport</nav>
  <p>First paragraph of the article.</p>
  <p>Second paragraph with <a href="/x">a link</a> and <em>emphasis</em>.</p>
  <p>   </p>
  <p>Final &amp; closing thoughts.</p>
  <!-- <p>commented out</p> -->
  <footer>Copyright</footer>
</body>
</html>`

func TestFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testPage))
	}))
	defer srv.Close()

	fetcher := NewFetcher(WithRequestRate(1000))
	body, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t,
		"First paragraph of the article. "+
			"Second paragraph with a link and emphasis. "+
			"Final & closing thoughts.",
		body)
}

func TestFetcher_Fetch_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fetcher := NewFetcher(WithRequestRate(1000))
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetcher_Fetch_Unreachable(t *testing.T) {
	fetcher := NewFetcher(
		WithRequestRate(1000),
		WithHTTPClient(&http.Client{Timeout: time.Second}),
	)

	_, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/article")
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetcher_Fetch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewFetcher()
	_, err := fetcher.Fetch(ctx, "http://127.0.0.1:1/article")
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestExtractParagraphs(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{
			name: "no paragraphs",
			page: "<html><body><div>only divs here</div></body></html>",
			want: "",
		},
		{
			name: "inline markup stripped",
			page: "<p>alpha <b>beta</b> <i>gamma</i></p>",
			want: "alpha beta gamma",
		},
		{
			name: "whitespace collapsed",
			page: "<p>alpha\n\n   beta\tgamma</p>",
			want: "alpha beta gamma",
		},
		{
			name: "entities unescaped",
			page: "<p>fish &amp; chips &lt;now&gt;</p>",
			want: "fish & chips <now>",
		},
		{
			name: "uppercase tags",
			page: "<P>shouting paragraph</P>",
			want: "shouting paragraph",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractParagraphs(tt.page))
		})
	}
}
