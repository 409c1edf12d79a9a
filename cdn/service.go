package cdn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// ErrBlobNameRequired is returned when uploading stdin without a blob name.
var ErrBlobNameRequired = errors.New("the remote path must include a name for the blob, as it cannot be derived from the local file name")

// Service provides storage operations relative to a base URL.
type Service struct {
	fs      afs.Service
	baseURL string
}

// New creates a service rooted at baseURL.
func New(baseURL string) (*Service, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("cdn storage url is not configured")
	}
	return &Service{fs: afs.New(), baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// SplitPath splits "container/blob/path" at the first slash.
func SplitPath(p string) (container, blob string) {
	if idx := strings.Index(p, "/"); idx > 0 {
		return p[:idx], p[idx+1:]
	}
	return p, ""
}

// List enumerates storage the way `cdn ls` prints it.  Without a path it
// returns container names, or every blob of every container when all is
// set.  With all, path names a container whose blobs are listed
// recursively; otherwise path is a container/prefix and one hierarchy level
// is returned, folders suffixed with "/".
func (s *Service) List(ctx context.Context, p string, all bool) ([]string, error) {
	switch {
	case p == "" && !all:
		return s.containers(ctx)
	case p == "":
		containers, err := s.containers(ctx)
		if err != nil {
			return nil, err
		}
		var out []string
		for _, container := range containers {
			blobs, err := s.blobs(ctx, container)
			if err != nil {
				return nil, err
			}
			out = append(out, blobs...)
		}
		return out, nil
	case all:
		return s.blobs(ctx, strings.Trim(p, "/"))
	default:
		return s.hierarchy(ctx, p)
	}
}

func (s *Service) containers(ctx context.Context) ([]string, error) {
	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	var out []string
	for _, object := range objects {
		if !object.IsDir() || samePath(object.URL(), s.baseURL) {
			continue
		}
		out = append(out, object.Name())
	}
	sort.Strings(out)
	return out, nil
}

func (s *Service) blobs(ctx context.Context, container string) ([]string, error) {
	var out []string
	location := url.Join(s.baseURL, container)
	err := s.fs.Walk(ctx, location, func(ctx context.Context, baseURL string, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		out = append(out, path.Join(container, parent, info.Name()))
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list container %q: %w", container, err)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Service) hierarchy(ctx context.Context, p string) ([]string, error) {
	container, prefix := SplitPath(p)
	dir, namePrefix := "", prefix
	if idx := strings.LastIndex(prefix, "/"); idx >= 0 {
		dir, namePrefix = prefix[:idx], prefix[idx+1:]
	}
	location := url.Join(s.baseURL, container)
	if dir != "" {
		location = url.Join(location, dir)
	}
	objects, err := s.fs.List(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", p, err)
	}
	var out []string
	for _, object := range objects {
		if samePath(object.URL(), location) || !strings.HasPrefix(object.Name(), namePrefix) {
			continue
		}
		entry := path.Join(container, dir, object.Name())
		if object.IsDir() {
			entry += "/"
		}
		out = append(out, entry)
	}
	sort.Strings(out)
	return out, nil
}

// Upload copies localPath ("-" for stdin) to remotePath and returns the
// blob path written.
func (s *Service) Upload(ctx context.Context, localPath, remotePath string, stdin io.Reader) (string, error) {
	container, blob := SplitPath(strings.Trim(remotePath, "/"))
	fromStdin := localPath == "-"
	if blob == "" {
		if fromStdin {
			return "", ErrBlobNameRequired
		}
		blob = path.Base(localPath)
	}
	var reader io.Reader = stdin
	if !fromStdin {
		file, err := os.Open(localPath)
		if err != nil {
			return "", fmt.Errorf("open local file: %w", err)
		}
		defer file.Close()
		reader = file
	}
	target := url.Join(s.baseURL, container, blob)
	if err := s.fs.Upload(ctx, target, 0644, reader); err != nil {
		return "", fmt.Errorf("upload %s: %w", target, err)
	}
	return path.Join(container, blob), nil
}

func samePath(a, b string) bool {
	return strings.TrimRight(url.Path(a), "/") == strings.TrimRight(url.Path(b), "/")
}
