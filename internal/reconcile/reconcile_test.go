package reconcile_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	griterrors "grit.dev/grit/internal/errors"
	"grit.dev/grit/internal/git"
	"grit.dev/grit/internal/output"
	"grit.dev/grit/internal/reconcile"
	"grit.dev/grit/testhelpers"
)

func newReconciler(t *testing.T, scene *testhelpers.Scene) (*reconcile.Reconciler, *git.Repo) {
	t.Helper()
	repo, err := git.Open(scene.Dir)
	require.NoError(t, err)
	var buf bytes.Buffer
	return reconcile.New(repo, output.NewSplogTo(&buf, &buf)), repo
}

// seedRemote populates the bare repository at bareDir with commits made in
// an independent working repo, so its history shares no ancestor with the
// scene's.
func seedRemote(t *testing.T, bareDir string, files map[string]string) {
	t.Helper()

	seed, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, seed.RunGitCommand("remote", "add", "target", bareDir))
	for name, content := range files {
		require.NoError(t, seed.CreateChangeAndCommit(name, content, "add "+name))
	}
	require.NoError(t, seed.PushBranch("target", "main"))
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("empty remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		reconciler, repo := newReconciler(t, scene)

		outcome, err := reconciler.Reconcile(ctx, "origin")
		require.NoError(t, err)
		require.Equal(t, reconcile.RemoteEmpty, outcome)

		_, tracked := repo.Upstream("main")
		require.False(t, tracked)
	})

	t.Run("already up to date", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))
		reconciler, repo := newReconciler(t, scene)

		before, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)

		outcome, err := reconciler.Reconcile(ctx, "origin")
		require.NoError(t, err)
		require.Equal(t, reconcile.AlreadyUpToDate, outcome)

		after, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.Equal(t, before, after)

		upstream, tracked := repo.Upstream("main")
		require.True(t, tracked)
		require.Equal(t, "origin/main", upstream)
	})

	t.Run("fast-forwards a branch that is behind", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.CreateChangeAndCommit("b.txt", "b", "second"))
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))

		remoteSHA, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.NoError(t, scene.Repo.RunGitCommand("reset", "--hard", "HEAD~1"))
		reconciler, repo := newReconciler(t, scene)

		outcome, err := reconciler.Reconcile(ctx, "origin")
		require.NoError(t, err)
		require.Equal(t, reconcile.FastForwarded, outcome)

		sha, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.Equal(t, remoteSHA, sha)

		_, tracked := repo.Upstream("main")
		require.True(t, tracked)
	})

	t.Run("rebases diverged but related histories", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.CreateChangeAndCommit("remote.txt", "remote", "remote work"))
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))
		require.NoError(t, scene.Repo.RunGitCommand("reset", "--hard", "HEAD~1"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("local.txt", "local", "local work"))
		reconciler, repo := newReconciler(t, scene)

		outcome, err := reconciler.Reconcile(ctx, "origin")
		require.NoError(t, err)
		require.Equal(t, reconcile.RebasedOntoRemote, outcome)

		messages, err := scene.Repo.ListCurrentBranchCommitMessages()
		require.NoError(t, err)
		require.Equal(t, []string{"local work", "remote work", "initial commit"}, messages)

		_, tracked := repo.Upstream("main")
		require.True(t, tracked)
	})

	t.Run("rebases local work onto an unrelated remote history", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(scene *testhelpers.Scene) error {
			if err := scene.Repo.CreateChangeAndCommit("local1.txt", "one", "local one"); err != nil {
				return err
			}
			return scene.Repo.CreateChangeAndCommit("local2.txt", "two", "local two")
		})
		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		seedRemote(t, bareDir, map[string]string{
			"remote1.txt": "r1",
			"remote2.txt": "r2",
			"remote3.txt": "r3",
		})
		reconciler, repo := newReconciler(t, scene)

		outcome, err := reconciler.Reconcile(ctx, "origin")
		require.NoError(t, err)
		require.Equal(t, reconcile.RebasedUnrelatedHistories, outcome)

		count, err := scene.Repo.GetCommitCount()
		require.NoError(t, err)
		require.Equal(t, 5, count)

		// Remote history forms the base, local commits sit on top.
		messages, err := scene.Repo.ListCurrentBranchCommitMessages()
		require.NoError(t, err)
		require.Len(t, messages, 5)
		require.Equal(t, "local two", messages[0])
		require.Equal(t, "local one", messages[1])

		onRemote, err := repo.IsAncestor("refs/remotes/origin/main", "HEAD")
		require.NoError(t, err)
		require.True(t, onRemote)

		upstream, tracked := repo.Upstream("main")
		require.True(t, tracked)
		require.Equal(t, "origin/main", upstream)
	})

	t.Run("a second run is a no-op", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		seedRemote(t, bareDir, map[string]string{"remote.txt": "r"})
		reconciler, _ := newReconciler(t, scene)

		first, err := reconciler.Reconcile(ctx, "origin")
		require.NoError(t, err)
		require.Equal(t, reconcile.RebasedUnrelatedHistories, first)

		afterFirst, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)

		second, err := reconciler.Reconcile(ctx, "origin")
		require.NoError(t, err)
		require.Equal(t, reconcile.AlreadyUpToDate, second)

		afterSecond, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.Equal(t, afterFirst, afterSecond)
	})

	t.Run("conflicting rebase restores the branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(scene *testhelpers.Scene) error {
			return scene.Repo.CreateChangeAndCommit("shared.txt", "local version\n", "local work")
		})
		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		seedRemote(t, bareDir, map[string]string{"shared.txt": "remote version\n"})
		reconciler, repo := newReconciler(t, scene)

		before, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)

		_, err = reconciler.Reconcile(ctx, "origin")
		require.ErrorIs(t, err, griterrors.ErrRebaseConflict)

		after, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		require.Equal(t, before, after)

		dirty, err := repo.IsDirty(ctx)
		require.NoError(t, err)
		require.False(t, dirty)

		_, tracked := repo.Upstream("main")
		require.False(t, tracked)
	})

	t.Run("initializes an unborn branch from the remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		reconcilerRepo, err := git.Open(scene.Dir)
		require.NoError(t, err)
		require.True(t, reconcilerRepo.HeadIsUnborn())

		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		seedRemote(t, bareDir, map[string]string{"remote.txt": "r"})

		var buf bytes.Buffer
		reconciler := reconcile.New(reconcilerRepo, output.NewSplogTo(&buf, &buf))

		outcome, err := reconciler.Reconcile(ctx, "origin")
		require.NoError(t, err)
		require.Equal(t, reconcile.InitializedFromRemote, outcome)

		sha, err := scene.Repo.GetCurrentSHA()
		require.NoError(t, err)
		remoteSHA, exists, err := reconcilerRepo.RemoteBranchSHA("origin", "main")
		require.NoError(t, err)
		require.True(t, exists)
		require.Equal(t, remoteSHA, sha)

		upstream, tracked := reconcilerRepo.Upstream("main")
		require.True(t, tracked)
		require.Equal(t, "origin/main", upstream)
	})
}
