package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unitykit-labs/unitykit/internal/branding"
	"github.com/unitykit-labs/unitykit/internal/config"
	"github.com/unitykit-labs/unitykit/internal/fetch"
	"github.com/unitykit-labs/unitykit/internal/folders"
	"github.com/unitykit-labs/unitykit/internal/gitboot"
	"github.com/unitykit-labs/unitykit/internal/gitignore"
	"github.com/unitykit-labs/unitykit/internal/proc"
	"github.com/unitykit-labs/unitykit/internal/project"
	"github.com/unitykit-labs/unitykit/internal/upm"
)

// session binds the workflows to one located project and an output stream.
// Commands and the panel both drive the workflows through it.
type session struct {
	paths      project.Paths
	out        io.Writer
	runner     proc.Runner
	downloader fetch.Downloader
	httpClient *http.Client
}

func newSession(cmd *cobra.Command) (*session, error) {
	start := projectDir
	if start == "" {
		start = "."
	}
	paths, err := project.Locate(start)
	if err != nil {
		return nil, fmt.Errorf("locating Unity project: %w", err)
	}

	client := &http.Client{Timeout: config.GetDuration(config.KeyHTTPTimeout)}
	return &session{
		paths:      paths,
		out:        cmd.OutOrStdout(),
		runner:     proc.ExecRunner{},
		downloader: fetch.NewHTTPDownloader(fetch.WithHTTPClient(client), fetch.WithUserAgent(userAgent())),
		httpClient: client,
	}, nil
}

func userAgent() string {
	if buildVersion == "" {
		return branding.CLIName()
	}
	return branding.CLIName() + "/" + buildVersion
}

func (s *session) createFolders(sel folders.Selection) error {
	creator := folders.OSCreator{Perm: project.DirPerm}
	refresher := folders.NoticeRefresher{W: s.out}
	_, err := folders.NewScaffolder(s.paths.ScaffoldRoot(), creator, refresher, s.out).Create(sel)
	return err
}

func (s *session) downloadGitignore(ctx context.Context) error {
	job := fetch.GitignoreJob(config.Get(config.KeyTemplateBaseURL), s.paths.GitignorePath())
	report, err := fetch.NewFetcher(s.downloader, s.out).Run(ctx, []fetch.Job{job})
	if err != nil {
		return err
	}
	if len(report.Failed()) > 0 {
		return nil
	}
	fmt.Fprintln(s.out, "Downloaded .gitignore file.")

	extra := config.GetStringSlice(config.KeyGitignoreExtra)
	if len(extra) == 0 {
		return nil
	}
	added, err := gitignore.Append(job.Dest, extra)
	if err != nil {
		fmt.Fprintf(s.out, "  [WARN] Could not append extra patterns: %v\n", err)
		return nil
	}
	if len(added) > 0 {
		fmt.Fprintf(s.out, "  [ OK ] Appended %s to %s\n", strings.Join(added, ", "), job.Dest)
	}
	return nil
}

func (s *session) downloadScripts(ctx context.Context) error {
	jobs := fetch.TemplateJobs(config.Get(config.KeyTemplateBaseURL), s.paths.TemplateDir())
	report, err := fetch.NewFetcher(s.downloader, s.out).Run(ctx, jobs)
	if err != nil {
		return err
	}
	if failed := len(report.Failed()); failed > 0 {
		fmt.Fprintf(s.out, "Downloaded %d of %d scripts.\n", len(jobs)-failed, len(jobs))
		return nil
	}
	fmt.Fprintln(s.out, "All scripts downloaded successfully.")
	return nil
}

// initGit runs the git bootstrap. remote overrides the remote_url config key.
func (s *session) initGit(ctx context.Context, remote string) error {
	if err := proc.EnsureGit(); err != nil {
		return err
	}
	if remote == "" {
		remote = config.Get(config.KeyRemoteURL)
	}
	opts := gitboot.Options{
		RemoteURL:  strings.TrimSpace(remote),
		Branch:     config.Get(config.KeyGitBranch),
		PushBranch: config.Get(config.KeyGitPushBranch),
		Message:    config.Get(config.KeyGitMessage),
	}
	_, err := gitboot.New(s.runner, s.paths.Root, s.out).Init(ctx, opts)
	return err
}

func (s *session) packageAdapter() *upm.Adapter {
	opts := []upm.ClientOption{
		upm.WithRegistry(upm.NewRegistry(config.Get(config.KeyRegistryURL), s.httpClient)),
		upm.WithOutput(s.out),
	}
	if editor := config.Get(config.KeyUnityEditor); editor != "" {
		opts = append(opts, upm.WithEditor(editor, s.runner))
	}
	return upm.NewAdapter(upm.NewManifestClient(s.paths, opts...), s.out)
}

func (s *session) syncPackages(ctx context.Context) error {
	_, err := s.packageAdapter().Sync(ctx, upm.DefaultAdds(), upm.DefaultRemoves())
	return err
}

// resolvePackages logs resolve failures instead of returning them, like the
// other per-item failures.
func (s *session) resolvePackages(ctx context.Context) error {
	_ = s.packageAdapter().Resolve(ctx)
	return ctx.Err()
}
