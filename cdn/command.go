package cdn

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/shamir/command"
	"github.com/viant/shamir/config"
	"github.com/viant/shamir/tree"
)

// StorageOptions is shared by every cdn command.
type StorageOptions struct {
	StorageURL string `long:"storage-url" description:"Storage base URL backing the CDN (overrides config and SHAMIR_CDN_URL)"`
}

func (o *StorageOptions) service(cfg *config.CDN) (*Service, error) {
	baseURL := cfg.URL
	if o.StorageURL != "" {
		baseURL = o.StorageURL
	}
	return New(baseURL)
}

// LsOptions are the options of cdn ls.
type LsOptions struct {
	StorageOptions
	All  bool `short:"a" long:"all" description:"List all blobs in the container"`
	Args struct {
		Path string `positional-arg-name:"path" description:"Path to enumerate, starting with the container name"`
	} `positional-args:"yes"`
}

// CpOptions are the options of cdn cp.
type CpOptions struct {
	StorageOptions
	Args struct {
		LocalPath  string `positional-arg-name:"local-path" description:"The local path to the file to copy (- for stdin)"`
		RemotePath string `positional-arg-name:"remote-path" description:"The destination path in storage"`
	} `positional-args:"yes" required:"yes"`
}

// URLOptions are shared by cdn get-url and cdn sas.
type URLOptions struct {
	StorageOptions
	Host string `short:"H" long:"host" description:"Hostname to generate the URL for"`
	Days int    `short:"d" long:"days" description:"Number of days that the signature should remain valid for"`
	Args struct {
		Path string `positional-arg-name:"path" description:"Path of the file, starting with the container name"`
	} `positional-args:"yes" required:"yes"`
}

// NewGroup assembles the cdn command group.
func NewGroup(cfg *config.CDN) *tree.Group {
	return tree.MustGroup("cdn", "Browse and add new data to a CDN backed by object storage", nil, []tree.Command{
		NewLs(cfg),
		NewCp(cfg),
		NewGetURL(cfg, time.Now),
		NewSas(cfg, time.Now),
	})
}

// NewLs lists containers and blobs.
func NewLs(cfg *config.CDN) tree.Command {
	return command.New("ls", "List files in a CDN storage account.", func(ctx context.Context, env *tree.Env, options *LsOptions) int {
		srv, err := options.service(cfg)
		if err != nil {
			return command.Fail(env, err)
		}
		entries, err := srv.List(ctx, options.Args.Path, options.All)
		if err != nil {
			return command.Fail(env, err)
		}
		for _, entry := range entries {
			fmt.Fprintln(env.Stdout, entry)
		}
		return tree.ExitOK
	})
}

// NewCp uploads a local file or stdin.
func NewCp(cfg *config.CDN) tree.Command {
	return command.New("cp", "Copy a file to a CDN storage account.", func(ctx context.Context, env *tree.Env, options *CpOptions) int {
		srv, err := options.service(cfg)
		if err != nil {
			return command.Fail(env, err)
		}
		written, err := srv.Upload(ctx, options.Args.LocalPath, options.Args.RemotePath, env.Stdin)
		if err != nil {
			return command.Fail(env, err)
		}
		env.Logger.WithField("blob", written).Info("uploaded")
		return tree.ExitOK
	})
}

// NewGetURL prints the URL of a file, signed unless its container is public.
func NewGetURL(cfg *config.CDN, now func() time.Time) tree.Command {
	return command.New("get-url", "Get the URL for a file in Storage, with a signature if required.", func(ctx context.Context, env *tree.Env, options *URLOptions) int {
		container, _ := SplitPath(options.Args.Path)
		return printURL(env, cfg, options, !cfg.IsPublic(container), now())
	})
}

// NewSas prints a signed URL for a file.
func NewSas(cfg *config.CDN, now func() time.Time) tree.Command {
	return command.New("sas", "Generate a shared access signature URL for a file in Storage.", func(ctx context.Context, env *tree.Env, options *URLOptions) int {
		return printURL(env, cfg, options, true, now())
	})
}

func printURL(env *tree.Env, cfg *config.CDN, options *URLOptions, sign bool, now time.Time) int {
	host := cfg.Host
	if options.Host != "" {
		host = options.Host
	}
	days := cfg.ValidityDays
	if options.Days != 0 {
		days = options.Days
	}
	container, blob := SplitPath(options.Args.Path)
	var signer *Signer
	if sign {
		key, err := cfg.Key()
		if err != nil {
			return command.Fail(env, err)
		}
		if signer, err = NewSigner(cfg.Account, key); err != nil {
			return command.Fail(env, err)
		}
	}
	link, err := URL(host, container, blob, signer, now.AddDate(0, 0, days))
	if err != nil {
		return command.Fail(env, err)
	}
	fmt.Fprintln(env.Stdout, link)
	return tree.ExitOK
}
