package cdn

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func seed(t *testing.T, baseURL string, files ...string) {
	t.Helper()
	fs := afs.New()
	for _, file := range files {
		require.NoError(t, fs.Upload(context.Background(), baseURL+"/"+file, 0644, strings.NewReader(file)))
	}
}

func TestSplitPath(t *testing.T) {
	var testCases = []struct {
		in        string
		container string
		blob      string
	}{
		{"images", "images", ""},
		{"images/logo.png", "images", "logo.png"},
		{"images/a/b.png", "images", "a/b.png"},
		{"/images", "/images", ""},
	}
	for _, tc := range testCases {
		container, blob := SplitPath(tc.in)
		assert.Equal(t, tc.container, container, tc.in)
		assert.Equal(t, tc.blob, blob, tc.in)
	}
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	baseURL := "mem://localhost/cdn-list"
	seed(t, baseURL, "images/logo.png", "images/icons/a.svg", "images/icons/b.svg", "docs/readme.txt")

	srv, err := New(baseURL)
	require.NoError(t, err)

	var testCases = []struct {
		description string
		path        string
		all         bool
		expect      []string
	}{
		{description: "containers", expect: []string{"docs", "images"}},
		{description: "everything", all: true, expect: []string{"docs/readme.txt", "images/icons/a.svg", "images/icons/b.svg", "images/logo.png"}},
		{description: "container recursive", path: "images", all: true, expect: []string{"images/icons/a.svg", "images/icons/b.svg", "images/logo.png"}},
		{description: "container level", path: "images", expect: []string{"images/icons/", "images/logo.png"}},
		{description: "prefix", path: "images/lo", expect: []string{"images/logo.png"}},
		{description: "nested folder", path: "images/icons/", expect: []string{"images/icons/a.svg", "images/icons/b.svg"}},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := srv.List(ctx, tc.path, tc.all)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestService_Upload(t *testing.T) {
	ctx := context.Background()
	baseURL := "mem://localhost/cdn-upload"
	srv, err := New(baseURL)
	require.NoError(t, err)

	local := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(local, []byte("quarterly"), 0644))

	written, err := srv.Upload(ctx, local, "docs", nil)
	require.NoError(t, err)
	assert.Equal(t, "docs/report.txt", written)

	written, err = srv.Upload(ctx, "-", "docs/stdin.txt", strings.NewReader("piped"))
	require.NoError(t, err)
	assert.Equal(t, "docs/stdin.txt", written)

	_, err = srv.Upload(ctx, "-", "docs", strings.NewReader("piped"))
	assert.ErrorIs(t, err, ErrBlobNameRequired)

	_, err = srv.Upload(ctx, filepath.Join(t.TempDir(), "missing"), "docs", nil)
	assert.Error(t, err)

	data, err := afs.New().DownloadWithURL(ctx, baseURL+"/docs/stdin.txt")
	require.NoError(t, err)
	assert.Equal(t, "piped", string(data))

	entries, err := srv.List(ctx, "docs", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/report.txt", "docs/stdin.txt"}, entries)
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New(" ")
	assert.Error(t, err)
}
